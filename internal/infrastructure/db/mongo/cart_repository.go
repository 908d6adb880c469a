package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/riverstore/commerce-api/internal/core/domain"
)

const collectionCarts = "carts"

// CartRepository persists carts. Every mutation is one conditional
// FindOneAndUpdate so concurrent requests cannot lose updates; the matching
// line item is addressed with the positional operator.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCarts)}
}

type mongoLineItem struct {
	Product  primitive.ObjectID `bson:"product"`
	Quantity int                `bson:"quantity"`
}

type mongoCart struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Products []mongoLineItem    `bson:"products"`
}

func (c mongoCart) toDomain() *domain.Cart {
	items := make([]domain.LineItem, 0, len(c.Products))
	for _, it := range c.Products {
		items = append(items, domain.LineItem{ProductID: it.Product.Hex(), Quantity: it.Quantity})
	}
	return &domain.Cart{ID: c.ID.Hex(), Items: items}
}

func (r *CartRepository) Create(ctx context.Context) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, bson.M{"products": bson.A{}})
	if err != nil {
		return nil, err
	}
	return &domain.Cart{ID: res.InsertedID.(primitive.ObjectID).Hex(), Items: []domain.LineItem{}}, nil
}

func (r *CartRepository) FindByID(ctx context.Context, id string) (*domain.Cart, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCartNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoCart
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// IncrementQuantity bumps the matching line item by 1 in a single update.
// No match (cart missing, or cart without that line item) reports
// domain.ErrCartNotFound; the caller decides whether to push instead.
func (r *CartRepository) IncrementQuantity(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	cid, pid, err := cartAndProductIDs(cartID, productID)
	if err != nil {
		return nil, err
	}

	return r.findOneAndUpdate(ctx,
		bson.M{"_id": cid, "products.product": pid},
		bson.M{"$inc": bson.M{"products.$.quantity": 1}},
	)
}

// PushItem appends a new line item, guarded against carts that already hold
// the product so a concurrent push cannot create a duplicate entry.
func (r *CartRepository) PushItem(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	cid, pid, err := cartAndProductIDs(cartID, productID)
	if err != nil {
		return nil, err
	}

	return r.findOneAndUpdate(ctx,
		bson.M{"_id": cid, "products.product": bson.M{"$ne": pid}},
		bson.M{"$push": bson.M{"products": mongoLineItem{Product: pid, Quantity: quantity}}},
	)
}

func (r *CartRepository) SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	cid, pid, err := cartAndProductIDs(cartID, productID)
	if err != nil {
		return nil, err
	}

	return r.findOneAndUpdate(ctx,
		bson.M{"_id": cid, "products.product": pid},
		bson.M{"$set": bson.M{"products.$.quantity": quantity}},
	)
}

// PullItem removes the matching line item. A product id that does not parse
// as an object id cannot be in any cart, so removal degrades to a plain read
// and stays idempotent.
func (r *CartRepository) PullItem(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	cid, err := primitive.ObjectIDFromHex(cartID)
	if err != nil {
		return nil, domain.ErrCartNotFound
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return r.FindByID(ctx, cartID)
	}

	return r.findOneAndUpdate(ctx,
		bson.M{"_id": cid},
		bson.M{"$pull": bson.M{"products": bson.M{"product": pid}}},
	)
}

func (r *CartRepository) ReplaceItems(ctx context.Context, cartID string, items []domain.LineItem) (*domain.Cart, error) {
	cid, err := primitive.ObjectIDFromHex(cartID)
	if err != nil {
		return nil, domain.ErrCartNotFound
	}

	docs := make([]mongoLineItem, 0, len(items))
	for _, it := range items {
		pid, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return nil, domain.ErrInvalidItems
		}
		docs = append(docs, mongoLineItem{Product: pid, Quantity: it.Quantity})
	}

	return r.findOneAndUpdate(ctx,
		bson.M{"_id": cid},
		bson.M{"$set": bson.M{"products": docs}},
	)
}

func (r *CartRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoCart
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func cartAndProductIDs(cartID, productID string) (primitive.ObjectID, primitive.ObjectID, error) {
	cid, err := primitive.ObjectIDFromHex(cartID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, domain.ErrCartNotFound
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, domain.ErrProductNotFound
	}
	return cid, pid, nil
}
