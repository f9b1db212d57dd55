package ports

import (
	"context"
	"time"
)

// Event types emitted after committed catalog writes.
const (
	EventProductCreated  = "product.created"
	EventProductUpdated  = "product.updated"
	EventProductDeleted  = "product.deleted"
	EventCategoryChanged = "category.changed"
)

type CatalogEvent struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	Slug       string    `json:"slug,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher pushes catalog change events to interested consumers
// (search indexers, cache warmers). Publishing is best-effort and never
// blocks or fails a write that already committed.
type EventPublisher interface {
	Publish(ctx context.Context, event CatalogEvent) error
}
