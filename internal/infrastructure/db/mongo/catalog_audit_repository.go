package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/riverstore/commerce-api/internal/core/domain"
	"github.com/riverstore/commerce-api/internal/core/ports"
)

// CatalogAuditRepository appends catalog change records to the
// catalog_events audit collection.
type CatalogAuditRepository struct {
	db *mongo.Database
}

func NewCatalogAuditRepository(db *mongo.Database) ports.CatalogAuditRepository {
	return &CatalogAuditRepository{db: db}
}

func (r *CatalogAuditRepository) Insert(ctx context.Context, event domain.CatalogEvent, at time.Time) error {
	doc := bson.M{
		"action":       string(event.Action),
		"product_id":   event.ProductID,
		"code":         event.Code,
		"processed_at": at.UTC(),
	}

	_, err := r.db.Collection("catalog_events").InsertOne(ctx, doc)
	return err
}
