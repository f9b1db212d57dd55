package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"catalog-service/domain/ports"
	"catalog-service/pkg/logger"
)

const (
	streamName    = "CATALOG"
	subjectPrefix = "catalog.events"
)

type eventPublisher struct {
	js nats.JetStreamContext
}

// NewEventPublisher ensures the catalog stream exists and returns a
// publisher bound to it. A nil client yields a no-op publisher.
func NewEventPublisher(client *Client) (ports.EventPublisher, error) {
	if client == nil {
		return noopPublisher{}, nil
	}

	_, err := client.js.AddStream(&nats.StreamConfig{
		Name:     streamName,
		Subjects: []string{subjectPrefix + ".>"},
		Storage:  nats.FileStorage,
	})
	if err != nil && err != nats.ErrStreamNameAlreadyInUse {
		return nil, err
	}

	return &eventPublisher{js: client.js}, nil
}

func (p *eventPublisher) Publish(ctx context.Context, event ports.CatalogEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("%s.%s", subjectPrefix, event.Type)
	if _, err := p.js.Publish(subject, data, nats.Context(ctx)); err != nil {
		logger.WarnContext(ctx, "Failed to publish catalog event",
			"subject", subject, "entity_id", event.EntityID, "error", err)
		return err
	}
	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ports.CatalogEvent) error {
	return nil
}
