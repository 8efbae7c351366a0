package todos

import (
	"fmt"
	"strings"

	apperrors "github.com/xyz-asif/todo-api/pkg/errors"
)

func ValidateCreateTodo(req *CreateTodoRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	if req.Title == "" {
		return fmt.Errorf("%w: Title is required", apperrors.ErrValidation)
	}

	return nil
}
