package todos

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository keeps todos in process memory. Ids are ObjectID hex
// strings so malformed ids behave the same as with MongoRepository.
type MemoryRepository struct {
	mu    sync.RWMutex
	todos map[primitive.ObjectID]todoDocument
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{todos: make(map[primitive.ObjectID]todoDocument)}
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]Todo, error) {
	r.mu.RLock()
	docs := make([]todoDocument, 0, len(r.todos))
	for _, doc := range r.todos {
		docs = append(docs, doc)
	}
	r.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].CreatedAt.After(docs[j].CreatedAt)
		}
		return docs[i].ID.Hex() > docs[j].ID.Hex()
	})

	todos := make([]Todo, 0, len(docs))
	for i := range docs {
		todos = append(todos, *docs[i].toEntity())
	}
	return todos, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.todos[objectID]
	if !ok {
		return nil, nil
	}
	return doc.toEntity(), nil
}

func (r *MemoryRepository) Create(ctx context.Context, req CreateTodoRequest) (*Todo, error) {
	ts := now()
	doc := todoDocument{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	r.mu.Lock()
	r.todos[doc.ID] = doc
	r.mu.Unlock()

	return doc.toEntity(), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, req UpdateTodoRequest) (*Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.todos[objectID]
	if !ok {
		return nil, nil
	}

	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.Description != nil {
		doc.Description = *req.Description
	}
	if req.Completed != nil {
		doc.Completed = *req.Completed
	}
	doc.UpdatedAt = now()

	r.todos[objectID] = doc
	return doc.toEntity(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[objectID]; !ok {
		return false, nil
	}
	delete(r.todos, objectID)
	return true, nil
}
