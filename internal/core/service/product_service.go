package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/riverstore/commerce-api/internal/api/metrics"
	"github.com/riverstore/commerce-api/internal/core/domain"
	"github.com/riverstore/commerce-api/internal/core/ports"
)

// ProductService implements catalog CRUD and the paginated listing. Reads by
// id go through the product cache; every mutation publishes a catalog event
// so the cache entry is invalidated and the change is audited.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.ProductCache
	events ports.CatalogEventQueue
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ports.ProductCache, events ports.CatalogEventQueue, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, events: events, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	status := true
	if in.Status != nil {
		status = *in.Status
	}
	thumbnails := in.Thumbnails
	if thumbnails == nil {
		thumbnails = []string{}
	}

	product := &domain.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Code:        in.Code,
		Stock:       in.Stock,
		Status:      status,
		Category:    in.Category,
		Thumbnails:  thumbnails,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.publish(domain.CatalogEvent{Action: domain.CatalogCreated, ProductID: created.ID, Code: created.Code})
	s.logger.Info().Str("product_id", created.ID).Str("code", created.Code).Msg("product created")
	return created, nil
}

// Get reads a product by id, consulting the cache first. Cache failures are
// logged and ignored; the store stays authoritative.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if cached, err := s.cache.Get(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("product cache read failed")
	} else if cached != nil {
		metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.ProductCacheTotal.WithLabelValues("miss").Inc()

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, product); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("product cache write failed")
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, upd ports.ProductUpdate) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.publish(domain.CatalogEvent{Action: domain.CatalogUpdated, ProductID: updated.ID, Code: updated.Code})
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(domain.CatalogEvent{Action: domain.CatalogDeleted, ProductID: id, Code: product.Code})
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) List(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 10
	}

	page, err := s.repo.List(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return page, nil
}

func (s *ProductService) publish(event domain.CatalogEvent) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(event)
}
