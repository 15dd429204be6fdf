package domain

// CategoryGeneral — категория по умолчанию для товаров без явной категории.
const CategoryGeneral = "Общее"

// Product — товар каталога. Уникальность имени не проверяется при создании:
// дедупликация по имени выполняется хранилищем при привязке товара к заказу.
type Product struct {
	Name     string
	Price    float64
	Category string
}

// NewProduct валидирует цену и возвращает готовый товар.
// Имя — свободный текст, пустая категория заменяется общей.
func NewProduct(name string, price float64, category string) (Product, error) {
	if price <= 0 {
		return Product{}, &ValidationError{Field: "price", Reason: "must be greater than zero"}
	}
	if category == "" {
		category = CategoryGeneral
	}
	return Product{Name: name, Price: price, Category: category}, nil
}
