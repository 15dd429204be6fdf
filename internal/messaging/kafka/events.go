package kafka

import (
	"time"

	"github.com/vadimdragunov/shoporders/internal/domain"
)

// TopicOrderEvents — топик доменных событий заказов.
const TopicOrderEvents = "shop.order.events"

// EventTypeOrderCreated — тип события успешно сохранённого заказа.
const EventTypeOrderCreated = "order.created"

// OrderCreatedEvent — сериализуемое представление события создания заказа.
// Клиент идентифицируется натуральным ключом, внутренние id наружу не выходят.
type OrderCreatedEvent struct {
	EventType   string    `json:"event_type"`
	ClientPhone string    `json:"client_phone"`
	Products    []string  `json:"products"`
	OrderDate   string    `json:"order_date"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOrderCreatedEvent собирает событие из доменного заказа.
func NewOrderCreatedEvent(order domain.Order) OrderCreatedEvent {
	names := make([]string, 0, len(order.Products))
	for _, p := range order.Products {
		names = append(names, p.Name)
	}
	return OrderCreatedEvent{
		EventType:   EventTypeOrderCreated,
		ClientPhone: order.Client.Phone,
		Products:    names,
		OrderDate:   order.OrderDate,
		Status:      order.Status,
		Total:       order.TotalCost(),
		Timestamp:   time.Now(),
	}
}
