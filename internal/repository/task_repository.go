package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/mytask-service/internal/domain"
)

// TaskRepository defines persistence access for task records.
//
// By-id operations take the hex form of the generated identifier; a
// malformed id surfaces as a storage error, matching the behavior of
// looking up a key that cannot exist.
type TaskRepository interface {
	Insert(ctx context.Context, payload domain.Document) (*mongo.InsertOneResult, error)
	FindByOwner(ctx context.Context, filter domain.TaskFilter) ([]domain.Document, error)
	// FindByID returns the task document, or nil when no record exists.
	FindByID(ctx context.Context, id string) (domain.Document, error)
	// UpdateFields overwrites only the named fields; others are untouched.
	UpdateFields(ctx context.Context, id string, fields domain.Document) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type taskRepository struct {
	collection *mongo.Collection
}

// NewTaskRepository returns a document-store backed implementation.
func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &taskRepository{collection: db.Collection(domain.TasksCollection)}
}

func (r *taskRepository) Insert(ctx context.Context, payload domain.Document) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, payload)
}

func (r *taskRepository) FindByOwner(ctx context.Context, filter domain.TaskFilter) ([]domain.Document, error) {
	query := bson.M{domain.FieldOwnerEmail: filter.OwnerEmail}
	if filter.Status != "" {
		query[domain.FieldTaskStatus] = filter.Status
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := make([]domain.Document, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var doc domain.Document
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *taskRepository) UpdateFields(ctx context.Context, id string, fields domain.Document) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
}

func (r *taskRepository) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
}
