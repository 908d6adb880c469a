package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateCode = errors.New("product code already exists")
var ErrInvalidProduct = errors.New("invalid product")

// Product is a catalog entry. Code is unique across the catalog.
type Product struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Price       float64  `json:"price" bson:"price"`
	Code        string   `json:"code" bson:"code"`
	Stock       int      `json:"stock" bson:"stock"`
	Status      bool     `json:"status" bson:"status"`
	Category    string   `json:"category" bson:"category"`
	Thumbnails  []string `json:"thumbnails" bson:"thumbnails"`
}

// Validate checks the field constraints that hold for every stored product.
func (p *Product) Validate() error {
	if p.Title == "" || p.Description == "" || p.Code == "" || p.Category == "" {
		return ErrInvalidProduct
	}
	if p.Price < 0 || p.Stock < 0 {
		return ErrInvalidProduct
	}
	return nil
}

// CatalogAction identifies the kind of change applied to the catalog.
type CatalogAction string

const (
	CatalogCreated CatalogAction = "created"
	CatalogUpdated CatalogAction = "updated"
	CatalogDeleted CatalogAction = "deleted"
)

// CatalogEvent describes a single product change. Events are consumed
// asynchronously to invalidate caches and keep the audit trail.
type CatalogEvent struct {
	Action    CatalogAction
	ProductID string
	Code      string
}
