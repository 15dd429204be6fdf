package domain

// EventPublisher публикует доменные события во внешнюю шину.
type EventPublisher interface {
	// OrderCreated сообщает об успешно сохранённом заказе.
	OrderCreated(order Order) error
}

// NopPublisher — заглушка издателя событий, когда внешняя шина не настроена.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(Order) error { return nil }

var _ EventPublisher = NopPublisher{}
