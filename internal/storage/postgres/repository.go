package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vadimdragunov/shoporders/internal/domain"
)

const opTimeout = 5 * time.Second

type repository struct {
	db *sql.DB
}

// NewRepository создаёт PostgreSQL-реализацию domain.Repository.
// Репозиторий — единственный владелец идентификаторов строк: наружу они не выходят,
// ссылки разрешаются по телефону клиента и имени товара.
func NewRepository(store *Store) domain.Repository {
	return &repository{db: store.DB()}
}

func (r *repository) AddClient(client domain.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (name, email, phone, city) VALUES ($1, $2, $3, $4)
	`, client.Name, client.Email, client.Phone, client.City)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrClientExists
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *repository) ListClients() ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT name, email, phone, city FROM clients ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		var city sql.NullString
		if err := rows.Scan(&c.Name, &c.Email, &c.Phone, &city); err != nil {
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		c.City = city.String
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate client rows: %w", err)
	}
	return clients, nil
}

func (r *repository) AddProduct(product domain.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (name, price, category) VALUES ($1, $2, $3)
	`, product.Name, product.Price, product.Category)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *repository) ListProducts() ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	products, _, err := r.loadCatalog(ctx)
	return products, err
}

// AddOrder разрешает ссылку на клиента по телефону, раскладывает товары заказа
// на идентификаторы каталога (создавая недостающие по имени) и пишет одну строку
// заказа. Строка заказа появляется только после успешного разрешения всех товаров;
// товары, созданные по ходу, не откатываются — каталог растёт жадно.
func (r *repository) AddOrder(order domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	clientID, err := r.clientIDByPhone(ctx, order.Client.Phone)
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(order.Products))
	for _, product := range order.Products {
		id, err := r.resolveProductID(ctx, product)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (client_id, product_refs, order_date, status)
		VALUES ($1, $2, $3, $4)
	`, clientID, encodeProductRefs(ids), order.OrderDate, order.Status)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListOrders соединяет заказы с клиентами и восстанавливает список товаров,
// декодируя product_refs и разрешая каждый идентификатор в текущем каталоге.
// Возвращаются актуальные значения товаров, а не снимки на момент заказа.
func (r *repository) ListOrders() ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, catalog, err := r.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.name, c.email, c.phone, c.city, o.product_refs, o.order_date, o.status
		FROM orders o
		JOIN clients c ON o.client_id = c.id
		ORDER BY o.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var (
			order domain.Order
			city  sql.NullString
			refs  string
		)
		if err := rows.Scan(
			&order.Client.Name, &order.Client.Email, &order.Client.Phone, &city,
			&refs, &order.OrderDate, &order.Status,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		order.Client.City = city.String

		ids, err := decodeProductRefs(refs)
		if err != nil {
			return nil, fmt.Errorf("decode product refs: %w", err)
		}
		order.Products = make([]domain.Product, 0, len(ids))
		for _, id := range ids {
			if product, ok := catalog[id]; ok {
				order.Products = append(order.Products, product)
			}
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}

func (r *repository) clientIDByPhone(ctx context.Context, phone string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM clients WHERE phone = $1`, phone).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrClientNotFound
		}
		return 0, fmt.Errorf("select client by phone: %w", err)
	}
	return id, nil
}

// resolveProductID ищет товар по точному имени и возвращает его идентификатор,
// создавая запись каталога, если имя ещё не встречалось.
func (r *repository) resolveProductID(ctx context.Context, product domain.Product) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		SELECT id FROM products WHERE name = $1 ORDER BY id LIMIT 1
	`, product.Name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("select product by name: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, price, category) VALUES ($1, $2, $3) RETURNING id
	`, product.Name, product.Price, product.Category).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product for order: %w", err)
	}
	return id, nil
}

// loadCatalog читает каталог целиком: срез в порядке хранения и карту по id.
func (r *repository) loadCatalog(ctx context.Context) ([]domain.Product, map[int64]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, category FROM products ORDER BY id
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	catalog := make(map[int64]domain.Product)
	for rows.Next() {
		var (
			id       int64
			p        domain.Product
			category sql.NullString
		)
		if err := rows.Scan(&id, &p.Name, &p.Price, &category); err != nil {
			return nil, nil, fmt.Errorf("scan product row: %w", err)
		}
		p.Category = category.String
		products = append(products, p)
		catalog[id] = p
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, catalog, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

var _ domain.Repository = (*repository)(nil)
