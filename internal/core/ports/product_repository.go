package ports

import (
	"context"

	"github.com/riverstore/commerce-api/internal/core/domain"
)

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Code        *string
	Stock       *int
	Status      *bool
	Category    *string
	Thumbnails  *[]string
}

// ListProductsInput selects one page of the catalog.
// Query matches the category, or availability when it is "true"/"false".
// Sort orders by price: "asc" or "desc"; empty leaves natural order.
type ListProductsInput struct {
	Page  int
	Limit int
	Sort  string
	Query string
}

// ProductPage is one page of catalog results plus pagination metadata.
type ProductPage struct {
	Docs       []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// ProductReader is the read-only slice of catalog persistence; it is all the
// cart engine needs to resolve line items.
type ProductReader interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Product, error)
}

// ProductRepository defines catalog persistence.
type ProductRepository interface {
	ProductReader
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, in ListProductsInput) (*ProductPage, error)
}
