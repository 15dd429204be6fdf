package memory

import (
	"sync"

	"github.com/vadimdragunov/shoporders/internal/domain"
)

type productRow struct {
	id      int64
	product domain.Product
}

type orderRow struct {
	clientPhone string
	productIDs  []int64
	orderDate   string
	status      string
}

// repositoryInMemory — in-memory реализация domain.Repository с той же семантикой,
// что у PostgreSQL-хранилища: уникальный телефон клиента, жадная дедупликация
// товаров по имени при привязке к заказу, восстановление заказов из текущего каталога.
type repositoryInMemory struct {
	mu            sync.RWMutex
	clients       []domain.Client
	products      []productRow
	orders        []orderRow
	nextProductID int64
}

// NewRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewRepository() domain.Repository {
	return &repositoryInMemory{nextProductID: 1}
}

func (r *repositoryInMemory) AddClient(client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.clients {
		if existing.Phone == client.Phone {
			return domain.ErrClientExists
		}
	}
	r.clients = append(r.clients, client)
	return nil
}

func (r *repositoryInMemory) ListClients() ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Client, len(r.clients))
	copy(result, r.clients)
	return result, nil
}

func (r *repositoryInMemory) AddProduct(product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appendProduct(product)
	return nil
}

func (r *repositoryInMemory) ListProducts() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.products))
	for _, row := range r.products {
		result = append(result, row.product)
	}
	return result, nil
}

func (r *repositoryInMemory) AddOrder(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.clientKnown(order.Client.Phone) {
		return domain.ErrClientNotFound
	}

	ids := make([]int64, 0, len(order.Products))
	for _, product := range order.Products {
		ids = append(ids, r.resolveProductID(product))
	}

	r.orders = append(r.orders, orderRow{
		clientPhone: order.Client.Phone,
		productIDs:  ids,
		orderDate:   order.OrderDate,
		status:      order.Status,
	})
	return nil
}

func (r *repositoryInMemory) ListOrders() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catalog := make(map[int64]domain.Product, len(r.products))
	for _, row := range r.products {
		catalog[row.id] = row.product
	}

	orders := make([]domain.Order, 0, len(r.orders))
	for _, row := range r.orders {
		client, ok := r.clientByPhone(row.clientPhone)
		if !ok {
			// Хранилище append-only, клиент не может исчезнуть.
			continue
		}
		products := make([]domain.Product, 0, len(row.productIDs))
		for _, id := range row.productIDs {
			if product, exists := catalog[id]; exists {
				products = append(products, product)
			}
		}
		orders = append(orders, domain.Order{
			Client:    client,
			Products:  products,
			OrderDate: row.orderDate,
			Status:    row.status,
		})
	}
	return orders, nil
}

func (r *repositoryInMemory) clientKnown(phone string) bool {
	_, ok := r.clientByPhone(phone)
	return ok
}

func (r *repositoryInMemory) clientByPhone(phone string) (domain.Client, bool) {
	for _, client := range r.clients {
		if client.Phone == phone {
			return client, true
		}
	}
	return domain.Client{}, false
}

// resolveProductID ищет товар по точному имени, создавая недостающую запись каталога.
func (r *repositoryInMemory) resolveProductID(product domain.Product) int64 {
	for _, row := range r.products {
		if row.product.Name == product.Name {
			return row.id
		}
	}
	return r.appendProduct(product)
}

func (r *repositoryInMemory) appendProduct(product domain.Product) int64 {
	id := r.nextProductID
	r.nextProductID++
	r.products = append(r.products, productRow{id: id, product: product})
	return id
}

var _ domain.Repository = (*repositoryInMemory)(nil)
