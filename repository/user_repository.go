package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shopper/models"
)

// UserRepository is the persistence contract for user accounts and their
// cart data.
type UserRepository interface {
	// FindByEmail returns (nil, nil) when no user has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// UpdateCart replaces the user's whole cart mapping. Cart mutation is
	// a read-modify-write sequence; concurrent edits on the same user can
	// lose updates, an accepted limitation of this model.
	UpdateCart(ctx context.Context, id primitive.ObjectID, cart map[string]int) error
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) UserRepository {
	return &mongoUserRepository{coll: coll}
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return u.ID, nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) UpdateCart(ctx context.Context, id primitive.ObjectID, cart map[string]int) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"cartData": cart}})
	return err
}
