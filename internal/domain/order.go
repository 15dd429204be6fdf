package domain

import "time"

const (
	// StatusNew — начальный статус только что созданного заказа.
	StatusNew = "новый"
	// DateLayout — формат календарной даты заказа.
	DateLayout = "2006-01-02"
)

// Order агрегирует клиента и список товаров. Список может содержать дубликаты:
// каждая позиция считается в стоимости отдельно. Суммарная стоимость не хранится,
// а вычисляется по требованию.
type Order struct {
	Client    Client
	Products  []Product
	OrderDate string
	Status    string
}

// NewOrder собирает заказ. Пустая дата заменяется сегодняшней, пустой статус — начальным.
func NewOrder(client Client, products []Product, orderDate, status string) Order {
	if orderDate == "" {
		orderDate = time.Now().Format(DateLayout)
	}
	if status == "" {
		status = StatusNew
	}
	return Order{
		Client:    client,
		Products:  products,
		OrderDate: orderDate,
		Status:    status,
	}
}

// TotalCost возвращает суммарную стоимость всех позиций заказа.
func (o Order) TotalCost() float64 {
	var total float64
	for _, p := range o.Products {
		total += p.Price
	}
	return total
}
