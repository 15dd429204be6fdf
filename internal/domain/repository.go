package domain

// Repository описывает слой хранения клиентов, товаров и заказов.
// Идентификаторы строк — внутреннее дело реализации: доменные значения их не несут,
// разрешение ссылок выполняется по натуральным ключам (телефон клиента, имя товара).
// Хранилище — append-only: операций обновления и удаления нет.
type Repository interface {
	// AddClient сохраняет клиента. Возвращает ErrClientExists, если телефон уже занят.
	AddClient(client Client) error
	// ListClients возвращает всех клиентов в порядке хранения.
	ListClients() ([]Client, error)
	// AddProduct добавляет товар в каталог без дедупликации.
	AddProduct(product Product) error
	// ListProducts возвращает каталог товаров.
	ListProducts() ([]Product, error)
	// AddOrder сохраняет заказ. Клиент ищется по телефону и не создаётся неявно
	// (ErrClientNotFound, если его нет); отсутствующие в каталоге товары создаются
	// по имени, уже известные переиспользуются. Строка заказа пишется только после
	// успешного разрешения всех товаров, но товары, созданные по ходу разрешения,
	// не откатываются — каталог растёт жадно.
	AddOrder(order Order) error
	// ListOrders восстанавливает заказы вместе с клиентом и товарами.
	// Товары берутся из текущего каталога, а не из снимка на момент заказа.
	ListOrders() ([]Order, error)
}
