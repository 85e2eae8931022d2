package domain

// Event is a fact about a state change inside one of the domain services.
type Event interface {
	Type() string
}

// EventDispatcher delivers domain events to interested subscribers.
type EventDispatcher interface {
	Dispatch(event Event) error
}
