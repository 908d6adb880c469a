package ports

import (
	"context"

	"github.com/riverstore/commerce-api/internal/core/domain"
)

// CartService owns the cart line-item protocol.
type CartService interface {
	Create(ctx context.Context) (*domain.Cart, error)
	Get(ctx context.Context, cartID string) (*domain.ResolvedCart, error)
	AddProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error)
	ReplaceItems(ctx context.Context, cartID string, items []domain.LineItem) (*domain.Cart, error)
	SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)
	RemoveProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, cartID string) (*domain.Cart, error)
}
