package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/riverstore/commerce-api/internal/core/domain"
	"github.com/riverstore/commerce-api/internal/core/ports"
)

const collectionProducts = "products"

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(collectionProducts)}
}

type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Code        string             `bson:"code"`
	Stock       int                `bson:"stock"`
	Status      bool               `bson:"status"`
	Category    string             `bson:"category"`
	Thumbnails  []string           `bson:"thumbnails"`
}

func (p mongoProduct) toDomain() *domain.Product {
	thumbnails := p.Thumbnails
	if thumbnails == nil {
		thumbnails = []string{}
	}
	return &domain.Product{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Code:        p.Code,
		Stock:       p.Stock,
		Status:      p.Status,
		Category:    p.Category,
		Thumbnails:  thumbnails,
	}
}

// Create inserts a new product document. A duplicate code violates the
// unique index and maps to domain.ErrDuplicateCode.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProduct{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Code:        p.Code,
		Stock:       p.Stock,
		Status:      p.Status,
		Category:    p.Category,
		Thumbnails:  p.Thumbnails,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, err
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoProduct
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// FindByIDs batch-fetches products, keyed by hex id. Unknown ids are simply
// absent from the result map.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Product, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	result := make(map[string]*domain.Product, len(oids))
	if len(oids) == 0 {
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc mongoProduct
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		result[doc.ID.Hex()] = doc.toDomain()
	}
	return result, cur.Err()
}

func (r *ProductRepository) Update(ctx context.Context, id string, upd ports.ProductUpdate) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Code != nil {
		set["code"] = *upd.Code
	}
	if upd.Stock != nil {
		set["stock"] = *upd.Stock
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Thumbnails != nil {
		set["thumbnails"] = *upd.Thumbnails
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoProduct
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// List returns one page of the catalog. The query filter matches category,
// or the availability flag when the query is the literal "true"/"false".
func (r *ProductRepository) List(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	filter := bson.M{}
	switch in.Query {
	case "":
	case "true":
		filter["status"] = true
	case "false":
		filter["status"] = false
	default:
		filter["category"] = in.Query
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(int64((in.Page - 1) * in.Limit)).
		SetLimit(int64(in.Limit))
	switch in.Sort {
	case "asc":
		opts.SetSort(bson.D{{Key: "price", Value: 1}})
	case "desc":
		opts.SetSort(bson.D{{Key: "price", Value: -1}})
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := make([]*domain.Product, 0, in.Limit)
	for cur.Next(ctx) {
		var doc mongoProduct
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(in.Limit) - 1) / int64(in.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	page := &ports.ProductPage{
		Docs:       docs,
		Total:      total,
		Page:       in.Page,
		Limit:      in.Limit,
		TotalPages: totalPages,
		HasPrev:    in.Page > 1,
		HasNext:    in.Page < totalPages,
	}
	if page.HasPrev {
		page.PrevPage = in.Page - 1
	}
	if page.HasNext {
		page.NextPage = in.Page + 1
	}
	return page, nil
}

// EnsureIndexes creates the unique code index on the products collection.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
