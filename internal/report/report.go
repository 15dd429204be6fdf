// Package report агрегирует коллекции заказов для отчётов и визуализации.
// Пакет — чистый потребитель: только чтение, никаких знаний о схеме хранения.
package report

import (
	"sort"

	"github.com/vadimdragunov/shoporders/internal/domain"
)

// ClientActivity — клиент и число его заказов.
type ClientActivity struct {
	Client domain.Client
	Orders int
}

// DailySales — суммарная стоимость заказов за календарную дату.
type DailySales struct {
	Date  string
	Total float64
}

// Link — ребро двудольного графа "клиент — товар".
type Link struct {
	ClientName  string
	ProductName string
}

// TopClients возвращает n клиентов с наибольшим числом заказов, по убыванию.
// Клиенты считаются по натуральному ключу (телефону); n<=0 возвращает всех.
func TopClients(orders []domain.Order, n int) []ClientActivity {
	counts := make(map[string]*ClientActivity)
	for _, order := range orders {
		activity, ok := counts[order.Client.Phone]
		if !ok {
			activity = &ClientActivity{Client: order.Client}
			counts[order.Client.Phone] = activity
		}
		activity.Orders++
	}

	result := make([]ClientActivity, 0, len(counts))
	for _, activity := range counts {
		result = append(result, *activity)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Orders != result[j].Orders {
			return result[i].Orders > result[j].Orders
		}
		return result[i].Client.Phone < result[j].Client.Phone
	})

	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}

// SalesByDay суммирует стоимость заказов по датам, результат отсортирован по дате.
func SalesByDay(orders []domain.Order) []DailySales {
	totals := make(map[string]float64)
	for _, order := range orders {
		totals[order.OrderDate] += order.TotalCost()
	}

	result := make([]DailySales, 0, len(totals))
	for date, total := range totals {
		result = append(result, DailySales{Date: date, Total: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

// ClientProductLinks возвращает уникальные рёбра "клиент — товар" по всем заказам,
// отсортированные для стабильного вывода.
func ClientProductLinks(orders []domain.Order) []Link {
	seen := make(map[Link]struct{})
	for _, order := range orders {
		for _, product := range order.Products {
			seen[Link{ClientName: order.Client.Name, ProductName: product.Name}] = struct{}{}
		}
	}

	result := make([]Link, 0, len(seen))
	for link := range seen {
		result = append(result, link)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ClientName != result[j].ClientName {
			return result[i].ClientName < result[j].ClientName
		}
		return result[i].ProductName < result[j].ProductName
	})
	return result
}
