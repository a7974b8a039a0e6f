package infrastructure

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const (
	SubjectSessionCreated = "session.created"
	SubjectSessionUpdated = "session.updated"
	SubjectSessionDeleted = "session.deleted"
)

// EventPublisher emits session lifecycle events over NATS for downstream
// consumers (notifications, analytics). Publishing is best effort:
// failures are logged and never surfaced to the request, and with no URL
// configured the publisher stays disconnected and silent.
type EventPublisher struct {
	nc  *nats.Conn
	log zerolog.Logger
}

func NewEventPublisher(url string, log zerolog.Logger) (*EventPublisher, error) {
	if url == "" {
		return &EventPublisher{log: log}, nil
	}

	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", url).Msg("connected to NATS")
	return &EventPublisher{nc: nc, log: log}, nil
}

func (p *EventPublisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
	}
}

func (p *EventPublisher) Publish(subject string, payload interface{}) {
	if p.nc == nil || !p.nc.IsConnected() {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.log.Error().Err(err).Str("subject", subject).Msg("failed to marshal event")
		return
	}

	if err := p.nc.Publish(subject, data); err != nil {
		p.log.Error().Err(err).Str("subject", subject).Msg("failed to publish event")
	}
}
