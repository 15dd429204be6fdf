package metrics

import (
	"time"

	"github.com/vadimdragunov/shoporders/internal/domain"
)

// instrumentedRepository прозрачно оборачивает domain.Repository сбором метрик.
type instrumentedRepository struct {
	repo    domain.Repository
	metrics *RepositoryMetrics
}

// InstrumentRepository возвращает репозиторий, считающий каждую операцию.
func InstrumentRepository(repo domain.Repository, m *RepositoryMetrics) domain.Repository {
	return &instrumentedRepository{repo: repo, metrics: m}
}

func (r *instrumentedRepository) AddClient(client domain.Client) error {
	start := time.Now()
	err := r.repo.AddClient(client)
	r.metrics.observe("add_client", start, err)
	return err
}

func (r *instrumentedRepository) ListClients() ([]domain.Client, error) {
	start := time.Now()
	clients, err := r.repo.ListClients()
	r.metrics.observe("list_clients", start, err)
	return clients, err
}

func (r *instrumentedRepository) AddProduct(product domain.Product) error {
	start := time.Now()
	err := r.repo.AddProduct(product)
	r.metrics.observe("add_product", start, err)
	return err
}

func (r *instrumentedRepository) ListProducts() ([]domain.Product, error) {
	start := time.Now()
	products, err := r.repo.ListProducts()
	r.metrics.observe("list_products", start, err)
	return products, err
}

func (r *instrumentedRepository) AddOrder(order domain.Order) error {
	start := time.Now()
	err := r.repo.AddOrder(order)
	r.metrics.observe("add_order", start, err)
	return err
}

func (r *instrumentedRepository) ListOrders() ([]domain.Order, error) {
	start := time.Now()
	orders, err := r.repo.ListOrders()
	r.metrics.observe("list_orders", start, err)
	return orders, err
}

var _ domain.Repository = (*instrumentedRepository)(nil)
