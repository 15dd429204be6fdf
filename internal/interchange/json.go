package interchange

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vadimdragunov/shoporders/internal/domain"
)

// DTO-структуры перечисляют поля выгрузки явно, чтобы формат файла
// не зависел от внутренних имён доменных типов.

type clientJSON struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

type productJSON struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type orderJSON struct {
	Client    clientJSON    `json:"client"`
	Products  []productJSON `json:"products"`
	OrderDate string        `json:"order_date"`
	Status    string        `json:"status"`
	Total     float64       `json:"total"`
}

func newOrderJSON(order domain.Order) orderJSON {
	products := make([]productJSON, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, productJSON{Name: p.Name, Price: p.Price, Category: p.Category})
	}
	return orderJSON{
		Client: clientJSON{
			Name:  order.Client.Name,
			Email: order.Client.Email,
			Phone: order.Client.Phone,
			City:  order.Client.City,
		},
		Products:  products,
		OrderDate: order.OrderDate,
		Status:    order.Status,
		Total:     order.TotalCost(),
	}
}

// ExportOrdersJSON пишет в w денормализованный массив заказов: полные поля клиента
// и товаров, дата, статус и вычисленная стоимость. Формат односторонний, только
// для выгрузки — обратного импорта нет.
func (s *Service) ExportOrdersJSON(w io.Writer) error {
	orders, err := s.repo.ListOrders()
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	out := make([]orderJSON, 0, len(orders))
	for _, order := range orders {
		out = append(out, newOrderJSON(order))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode orders json: %w", err)
	}
	return nil
}

// ExportOrdersFile экспортирует заказы в JSON-файл по указанному пути.
func (s *Service) ExportOrdersFile(path string) error {
	return s.writeFile(path, s.ExportOrdersJSON)
}
