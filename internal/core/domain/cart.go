package domain

import "errors"

var ErrCartNotFound = errors.New("cart not found")
var ErrInvalidQuantity = errors.New("quantity must be at least 1")
var ErrInvalidItems = errors.New("invalid line items")

// LineItem is one (product reference, quantity) pair inside a cart. The
// product reference is an identifier only; the cart does not own the product.
type LineItem struct {
	ProductID string `json:"product" bson:"product"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// Cart holds an ordered sequence of line items. Each distinct product id
// appears in at most one line item; quantities are merged instead of
// duplicating entries. Insertion order of first-seen products is preserved.
type Cart struct {
	ID    string     `json:"id" bson:"_id,omitempty"`
	Items []LineItem `json:"products" bson:"products"`
}

// ResolvedItem pairs a line item with the live product it references.
// Product is nil when the referenced product no longer exists; the line item
// is kept so the quantity is not silently lost.
type ResolvedItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

// ResolvedCart is a cart with every product reference resolved against the
// current catalog. It is a read-only view, not a snapshot.
type ResolvedCart struct {
	ID    string         `json:"id"`
	Items []ResolvedItem `json:"products"`
}

// ValidateItems checks that a replacement line-item sequence is well formed:
// non-empty product references, quantities of at least 1, and no duplicate
// product ids. Product existence is not checked here.
func ValidateItems(items []LineItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.ProductID == "" {
			return ErrInvalidItems
		}
		if it.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if _, dup := seen[it.ProductID]; dup {
			return ErrInvalidItems
		}
		seen[it.ProductID] = struct{}{}
	}
	return nil
}
