package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopper/models"
)

// ProductRepository is the persistence contract for the catalog. Controllers
// depend on this interface so tests can swap in mocks.
type ProductRepository interface {
	// MaxID returns the highest assigned product id, 0 when the
	// collection is empty.
	MaxID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, p *models.Product) error
	// DeleteByID removes the product with the given id and returns how
	// many documents matched. Zero is not an error.
	DeleteByID(ctx context.Context, id int64) (int64, error)
	// FindAll returns the whole catalog in insertion order.
	FindAll(ctx context.Context) ([]models.Product, error)
	// FindByCategory returns up to limit products in the category, in
	// insertion order. limit <= 0 means no limit.
	FindByCategory(ctx context.Context, category string, limit int64) ([]models.Product, error)
}

type mongoProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(coll *mongo.Collection) ProductRepository {
	return &mongoProductRepository{coll: coll}
}

func (r *mongoProductRepository) MaxID(ctx context.Context) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var last models.Product
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return last.ID, nil
}

func (r *mongoProductRepository) Insert(ctx context.Context, p *models.Product) error {
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *mongoProductRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepository) FindByCategory(ctx context.Context, category string, limit int64) ([]models.Product, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
