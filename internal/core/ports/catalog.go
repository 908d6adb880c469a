package ports

import (
	"context"
	"time"

	"github.com/riverstore/commerce-api/internal/core/domain"
)

// CatalogEventQueue accepts product change events for asynchronous handling.
type CatalogEventQueue interface {
	Enqueue(event domain.CatalogEvent)
}

// CatalogEventService processes a single catalog change: cache invalidation
// plus the audit trail write.
type CatalogEventService interface {
	Process(ctx context.Context, event domain.CatalogEvent) error
}

// CatalogAuditRepository persists catalog change records.
type CatalogAuditRepository interface {
	Insert(ctx context.Context, event domain.CatalogEvent, at time.Time) error
}

// ProductCache is a read-through cache for products by id. Get returns
// (nil, nil) on a miss; cache failures are soft and never fail a read path.
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	Set(ctx context.Context, p *domain.Product) error
	Invalidate(ctx context.Context, id string) error
}
