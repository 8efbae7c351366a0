package todos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/todo-api/internal/database"
	apperrors "github.com/xyz-asif/todo-api/pkg/errors"
)

// MongoRepository stores todos in the "todos" collection. It borrows the
// database from the handle on every call and holds no query results.
type MongoRepository struct {
	handle  database.Handle
	timeout time.Duration
}

var _ Repository = (*MongoRepository)(nil)

// NewMongoRepository builds a repository whose operations each get at most
// timeout to complete. A zero timeout leaves the request context untouched.
func NewMongoRepository(handle database.Handle, timeout time.Duration) *MongoRepository {
	return &MongoRepository{handle: handle, timeout: timeout}
}

func (r *MongoRepository) collection() (*mongo.Collection, error) {
	db, err := r.handle.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(CollectionName), nil
}

func (r *MongoRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// EnsureIndexes creates the index backing the newest-first listing
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return persistence("create indexes", err)
	}
	return nil
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]Todo, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, persistence("find todos", err)
	}
	defer cursor.Close(ctx)

	var docs []todoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, persistence("decode todos", err)
	}

	todos := make([]Todo, 0, len(docs))
	for i := range docs {
		todos = append(todos, *docs[i].toEntity())
	}
	return todos, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return findOne(ctx, coll, objectID)
}

func (r *MongoRepository) Create(ctx context.Context, req CreateTodoRequest) (*Todo, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	ts := now()
	doc := todoDocument{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return nil, persistence("insert todo", err)
	}

	// Read back what the store holds rather than echoing the input
	created, err := findOne(ctx, coll, doc.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("%w: todo %s missing after insert", apperrors.ErrPersistence, doc.ID.Hex())
	}
	return created, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, req UpdateTodoRequest) (*Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	set := bson.M{"updatedAt": now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Completed != nil {
		set["completed"] = *req.Completed
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc todoDocument
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, persistence("update todo", err)
	}

	return doc.toEntity(), nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	coll, err := r.collection()
	if err != nil {
		return false, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, persistence("delete todo", err)
	}

	return result.DeletedCount > 0, nil
}

func findOne(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*Todo, error) {
	var doc todoDocument
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, persistence("find todo", err)
	}
	return doc.toEntity(), nil
}

func persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", apperrors.ErrPersistence, op, err)
}
