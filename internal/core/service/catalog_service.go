package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/riverstore/commerce-api/internal/api/metrics"
	"github.com/riverstore/commerce-api/internal/core/domain"
	"github.com/riverstore/commerce-api/internal/core/ports"
)

type catalogEventService struct {
	cache ports.ProductCache
	audit ports.CatalogAuditRepository
	log   zerolog.Logger
}

// NewCatalogEventService returns the processor behind the catalog event
// queue: it drops the cached product entry and records the change in the
// audit trail.
func NewCatalogEventService(cache ports.ProductCache, audit ports.CatalogAuditRepository, log zerolog.Logger) ports.CatalogEventService {
	return &catalogEventService{cache: cache, audit: audit, log: log}
}

func (s *catalogEventService) Process(ctx context.Context, event domain.CatalogEvent) error {
	if err := s.cache.Invalidate(ctx, event.ProductID); err != nil {
		s.log.Warn().Err(err).Str("product_id", event.ProductID).Msg("cache invalidation failed")
	}

	if err := s.audit.Insert(ctx, event, time.Now().UTC()); err != nil {
		metrics.CatalogEventsTotal.WithLabelValues(string(event.Action), "error").Inc()
		return fmt.Errorf("catalog event audit: %w", err)
	}

	metrics.CatalogEventsTotal.WithLabelValues(string(event.Action), "ok").Inc()
	s.log.Debug().
		Str("product_id", event.ProductID).
		Str("action", string(event.Action)).
		Msg("catalog event processed")
	return nil
}
