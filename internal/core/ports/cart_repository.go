package ports

import (
	"context"

	"github.com/riverstore/commerce-api/internal/core/domain"
)

// CartRepository defines cart persistence. Every mutation is a single
// conditional update on the store side and returns the post-mutation cart;
// callers never read-modify-write cart documents in application code.
type CartRepository interface {
	Create(ctx context.Context) (*domain.Cart, error)
	FindByID(ctx context.Context, id string) (*domain.Cart, error)

	// IncrementQuantity adds 1 to the line item matching productID.
	// Returns domain.ErrCartNotFound when no cart holds that line item.
	IncrementQuantity(ctx context.Context, cartID, productID string) (*domain.Cart, error)

	// PushItem appends a new line item, guarded so it only matches carts
	// that do not already contain productID.
	PushItem(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)

	// SetQuantity overwrites the quantity of the matching line item.
	// A missing cart and a missing line item both report ErrCartNotFound.
	SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)

	// PullItem removes the line item matching productID, if present.
	PullItem(ctx context.Context, cartID, productID string) (*domain.Cart, error)

	// ReplaceItems swaps the entire line-item sequence.
	ReplaceItems(ctx context.Context, cartID string, items []domain.LineItem) (*domain.Cart, error)
}
