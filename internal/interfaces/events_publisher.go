package interfaces

// EventPublisher receives domain events (transfers, loans, session
// lifecycle). Implementations decide where they go.
type EventPublisher interface {
	Publish(topic string, event any) error
}
