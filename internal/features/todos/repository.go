package todos

import "context"

// Repository is the persistence contract for todos. "Not found" is reported
// as a nil todo (or false from Delete), never as an error; malformed ids are
// treated as not found.
type Repository interface {
	FindAll(ctx context.Context) ([]Todo, error)
	FindByID(ctx context.Context, id string) (*Todo, error)
	Create(ctx context.Context, req CreateTodoRequest) (*Todo, error)
	Update(ctx context.Context, id string, req UpdateTodoRequest) (*Todo, error)
	Delete(ctx context.Context, id string) (bool, error)
}
