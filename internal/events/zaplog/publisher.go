package zaplog

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/okanv/bankist-ledger/internal/interfaces"
)

// Publisher writes domain events to the structured log. The demo has
// no broker to hand them to, but keeping events flowing through the
// EventPublisher seam means a real transport can slot in later.
type Publisher struct {
	log *zap.Logger
}

func NewPublisher(log *zap.Logger) *Publisher {
	return &Publisher{log: log}
}

func (p *Publisher) Publish(topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.log.Info("event",
		zap.String("topic", topic),
		zap.ByteString("payload", data),
	)
	return nil
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
