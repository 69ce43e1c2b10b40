package port

type Handler func(payload any)

type Publisher interface {
	Publish(topic string, payload any)
}

type Subscriber interface {
	Subscribe(topic string, handler Handler) (unsubscribe func())
}

type EventBus interface {
	Publisher
	Subscriber
}
