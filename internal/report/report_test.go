package report_test

import (
	"testing"

	"github.com/vadimdragunov/shoporders/internal/domain"
	"github.com/vadimdragunov/shoporders/internal/report"
)

func order(t *testing.T, name, phone, date string, productNames []string, price float64) domain.Order {
	t.Helper()
	client, err := domain.NewClient(name, "a@b.ru", phone, "")
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	products := make([]domain.Product, 0, len(productNames))
	for _, pn := range productNames {
		p, err := domain.NewProduct(pn, price, "")
		if err != nil {
			t.Fatalf("product: %v", err)
		}
		products = append(products, p)
	}
	return domain.NewOrder(client, products, date, "")
}

func TestTopClients(t *testing.T) {
	orders := []domain.Order{
		order(t, "Иван", "+79991111111", "2024-01-01", []string{"Книга"}, 300),
		order(t, "Иван", "+79991111111", "2024-01-02", []string{"Ручка"}, 50),
		order(t, "Пётр", "+79992222222", "2024-01-01", []string{"Книга"}, 300),
	}

	top := report.TopClients(orders, 1)
	if len(top) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(top))
	}
	if top[0].Client.Name != "Иван" || top[0].Orders != 2 {
		t.Fatalf("unexpected top client: %+v", top[0])
	}

	all := report.TopClients(orders, 0)
	if len(all) != 2 {
		t.Fatalf("n<=0 must return all clients, got %d", len(all))
	}
}

func TestTopClients_Empty(t *testing.T) {
	if top := report.TopClients(nil, 5); len(top) != 0 {
		t.Fatalf("expected empty result, got %v", top)
	}
}

func TestSalesByDay(t *testing.T) {
	orders := []domain.Order{
		order(t, "Иван", "+79991111111", "2024-01-02", []string{"Книга"}, 300),
		order(t, "Пётр", "+79992222222", "2024-01-01", []string{"Ручка"}, 50),
		order(t, "Иван", "+79991111111", "2024-01-02", []string{"Ручка"}, 50),
	}

	sales := report.SalesByDay(orders)
	if len(sales) != 2 {
		t.Fatalf("expected 2 days, got %d", len(sales))
	}
	if sales[0].Date != "2024-01-01" || sales[0].Total != 50 {
		t.Fatalf("unexpected first day: %+v", sales[0])
	}
	if sales[1].Date != "2024-01-02" || sales[1].Total != 350 {
		t.Fatalf("unexpected second day: %+v", sales[1])
	}
}

func TestClientProductLinks(t *testing.T) {
	orders := []domain.Order{
		order(t, "Иван", "+79991111111", "2024-01-01", []string{"Книга", "Книга"}, 300),
		order(t, "Иван", "+79991111111", "2024-01-02", []string{"Книга"}, 300),
	}

	links := report.ClientProductLinks(orders)
	if len(links) != 1 {
		t.Fatalf("duplicate edges must collapse, got %v", links)
	}
	if links[0].ClientName != "Иван" || links[0].ProductName != "Книга" {
		t.Fatalf("unexpected link: %+v", links[0])
	}
}
