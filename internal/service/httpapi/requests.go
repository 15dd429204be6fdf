package httpapi

import (
	"github.com/vadimdragunov/shoporders/internal/domain"
	"github.com/vadimdragunov/shoporders/internal/report"
)

type clientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

type productRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// orderRequest ссылается на клиента по натуральному ключу — телефону.
type orderRequest struct {
	ClientPhone string           `json:"client_phone"`
	Products    []productRequest `json:"products"`
	OrderDate   string           `json:"order_date"`
	Status      string           `json:"status"`
}

func (req orderRequest) toDomain() (domain.Order, error) {
	ref, err := domain.ClientRef(req.ClientPhone)
	if err != nil {
		return domain.Order{}, err
	}
	products := make([]domain.Product, 0, len(req.Products))
	for _, p := range req.Products {
		product, err := domain.NewProduct(p.Name, p.Price, p.Category)
		if err != nil {
			return domain.Order{}, err
		}
		products = append(products, product)
	}
	return domain.NewOrder(ref, products, req.OrderDate, req.Status), nil
}

type statusResponse struct {
	Status string `json:"status"`
}

type orderCreatedResponse struct {
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type clientResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

func newClientResponses(clients []domain.Client) []clientResponse {
	out := make([]clientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientResponse{Name: c.Name, Email: c.Email, Phone: c.Phone, City: c.City})
	}
	return out
}

type productResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

func newProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{Name: p.Name, Price: p.Price, Category: p.Category})
	}
	return out
}

type orderResponse struct {
	Client    clientResponse    `json:"client"`
	Products  []productResponse `json:"products"`
	OrderDate string            `json:"order_date"`
	Status    string            `json:"status"`
	Total     float64           `json:"total"`
}

func newOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse{
			Client:    clientResponse{Name: o.Client.Name, Email: o.Client.Email, Phone: o.Client.Phone, City: o.Client.City},
			Products:  newProductResponses(o.Products),
			OrderDate: o.OrderDate,
			Status:    o.Status,
			Total:     o.TotalCost(),
		})
	}
	return out
}

type topClientResponse struct {
	Client clientResponse `json:"client"`
	Orders int            `json:"orders"`
}

func newTopClientsResponse(top []report.ClientActivity) []topClientResponse {
	out := make([]topClientResponse, 0, len(top))
	for _, entry := range top {
		out = append(out, topClientResponse{
			Client: clientResponse{
				Name:  entry.Client.Name,
				Email: entry.Client.Email,
				Phone: entry.Client.Phone,
				City:  entry.Client.City,
			},
			Orders: entry.Orders,
		})
	}
	return out
}

type dailySalesResponse struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

func newSalesResponse(sales []report.DailySales) []dailySalesResponse {
	out := make([]dailySalesResponse, 0, len(sales))
	for _, day := range sales {
		out = append(out, dailySalesResponse{Date: day.Date, Total: day.Total})
	}
	return out
}

type linkResponse struct {
	Client  string `json:"client"`
	Product string `json:"product"`
}

func newLinkResponses(links []report.Link) []linkResponse {
	out := make([]linkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, linkResponse{Client: link.ClientName, Product: link.ProductName})
	}
	return out
}
