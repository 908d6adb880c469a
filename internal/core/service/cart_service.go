package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/riverstore/commerce-api/internal/api/metrics"
	"github.com/riverstore/commerce-api/internal/core/domain"
	"github.com/riverstore/commerce-api/internal/core/ports"
)

// CartService implements the cart line-item protocol on top of atomic
// store-side updates.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductReader
	logger   zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductReader, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// Create produces a new empty cart.
func (s *CartService) Create(ctx context.Context) (*domain.Cart, error) {
	cart, err := s.carts.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	metrics.CartMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("cart_id", cart.ID).Msg("cart created")
	return cart, nil
}

// Get returns the cart with every line item resolved against the live
// catalog. Deleted products resolve to a nil product on their line item.
func (s *CartService) Get(ctx context.Context, cartID string) (*domain.ResolvedCart, error) {
	cart, err := s.carts.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}

	byID := map[string]*domain.Product{}
	if len(ids) > 0 {
		byID, err = s.products.FindByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("resolve cart products: %w", err)
		}
	}

	resolved := &domain.ResolvedCart{ID: cart.ID, Items: make([]domain.ResolvedItem, 0, len(cart.Items))}
	for _, it := range cart.Items {
		resolved.Items = append(resolved.Items, domain.ResolvedItem{
			Product:  byID[it.ProductID],
			Quantity: it.Quantity,
		})
	}
	return resolved, nil
}

// AddProduct merges a product into the cart: increment the existing line
// item's quantity by 1, or append a new line item with quantity 1. Both
// branches are single conditional updates on the store; the increment is
// retried once to cover a concurrent insert between the two branches.
// The cart is checked before the product, so a request with both missing
// reports the missing cart.
func (s *CartService) AddProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	if _, err := s.carts.FindByID(ctx, cartID); err != nil {
		return nil, err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := s.carts.IncrementQuantity(ctx, cartID, productID)
	if err == nil {
		metrics.CartMutationsTotal.WithLabelValues("add").Inc()
		return cart, nil
	}
	if !errors.Is(err, domain.ErrCartNotFound) {
		return nil, fmt.Errorf("add product: %w", err)
	}

	cart, err = s.carts.PushItem(ctx, cartID, productID, 1)
	if errors.Is(err, domain.ErrCartNotFound) {
		// Either the cart is gone or another request pushed the line item
		// after our increment missed. One more increment settles which.
		cart, err = s.carts.IncrementQuantity(ctx, cartID, productID)
	}
	if err != nil {
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	s.logger.Debug().Str("cart_id", cartID).Str("product_id", productID).Msg("product added to cart")
	return cart, nil
}

// ReplaceItems swaps the whole line-item sequence after structural
// validation. Product existence is not verified per item.
func (s *CartService) ReplaceItems(ctx context.Context, cartID string, items []domain.LineItem) (*domain.Cart, error) {
	if err := domain.ValidateItems(items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.LineItem{}
	}

	cart, err := s.carts.ReplaceItems(ctx, cartID, items)
	if err != nil {
		return nil, err
	}
	metrics.CartMutationsTotal.WithLabelValues("replace").Inc()
	return cart, nil
}

// SetQuantity overwrites the quantity of one line item. The quantity must be
// at least 1; removal is a separate operation.
func (s *CartService) SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	cart, err := s.carts.SetQuantity(ctx, cartID, productID, quantity)
	if err != nil {
		return nil, err
	}
	metrics.CartMutationsTotal.WithLabelValues("set_quantity").Inc()
	return cart, nil
}

// RemoveProduct deletes the matching line item. Removing a product that is
// not in the cart is a no-op, not an error.
func (s *CartService) RemoveProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	cart, err := s.carts.PullItem(ctx, cartID, productID)
	if err != nil {
		return nil, err
	}
	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return cart, nil
}

// Clear empties the cart. Idempotent.
func (s *CartService) Clear(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, err := s.carts.ReplaceItems(ctx, cartID, []domain.LineItem{})
	if err != nil {
		return nil, err
	}
	metrics.CartMutationsTotal.WithLabelValues("clear").Inc()
	return cart, nil
}
