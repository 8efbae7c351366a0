// ================== internal/features/todos/model.go ==================
package todos

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the MongoDB collection holding todos
const CollectionName = "todos"

// Todo represents a todo item as returned to API consumers
// @Description Todo item with all its properties
type Todo struct {
	ID          string    `json:"id" example:"507f1f77bcf86cd799439011"`
	Title       string    `json:"title" example:"Buy groceries"`
	Description string    `json:"description,omitempty" example:"Get milk, bread, and eggs"`
	Completed   bool      `json:"completed" example:"false"`
	CreatedAt   time.Time `json:"createdAt" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2023-01-01T00:00:00Z"`
}

// CreateTodoRequest represents todo creation data
// @Description Data required to create a new todo
type CreateTodoRequest struct {
	Title       string `json:"title" example:"Buy groceries"`
	Description string `json:"description" example:"Get milk, bread, and eggs"`
}

// UpdateTodoRequest represents a partial update. Nil fields are left as they are.
// @Description Data for updating an existing todo; omitted fields are unchanged
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty" example:"Buy groceries"`
	Description *string `json:"description,omitempty" example:"Get milk, bread, and eggs"`
	Completed   *bool   `json:"completed,omitempty" example:"true"`
}

// todoDocument is the stored shape in the todos collection
type todoDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Completed   bool               `bson:"completed"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *todoDocument) toEntity() *Todo {
	return &Todo{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

// now returns the current UTC time at the millisecond precision MongoDB stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
