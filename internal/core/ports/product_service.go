package ports

import (
	"context"

	"github.com/riverstore/commerce-api/internal/core/domain"
)

// CreateProductInput carries the fields of a new catalog entry.
type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	Code        string
	Stock       int
	Status      *bool
	Category    string
	Thumbnails  []string
}

// ProductService owns catalog CRUD and the paginated listing.
type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, in ListProductsInput) (*ProductPage, error)
}
