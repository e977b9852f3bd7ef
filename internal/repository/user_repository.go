package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/mytask-service/internal/domain"
)

// UserRepository defines persistence access for profile records, keyed by email.
type UserRepository interface {
	// FindByEmail returns the profile document for the email, or nil when
	// no record exists. Absence is not an error.
	FindByEmail(ctx context.Context, email string) (domain.Document, error)
	// Upsert writes the payload under the email key, inserting when absent.
	Upsert(ctx context.Context, email string, payload domain.Document) (*mongo.UpdateResult, error)
}

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository returns a document-store backed implementation.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection(domain.UsersCollection)}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (domain.Document, error) {
	var doc domain.Document
	err := r.collection.FindOne(ctx, bson.M{domain.FieldEmail: email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *userRepository) Upsert(ctx context.Context, email string, payload domain.Document) (*mongo.UpdateResult, error) {
	filter := bson.M{domain.FieldEmail: email}
	update := bson.M{"$set": payload}
	return r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
}
