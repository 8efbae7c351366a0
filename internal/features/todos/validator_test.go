package todos

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/xyz-asif/todo-api/pkg/errors"
)

func TestValidateCreateTodo(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateTodoRequest
		wantErr bool
		title   string
	}{
		{name: "plain", req: CreateTodoRequest{Title: "buy milk"}, title: "buy milk"},
		{name: "trimmed", req: CreateTodoRequest{Title: "  buy milk \n"}, title: "buy milk"},
		{name: "empty", req: CreateTodoRequest{Title: ""}, wantErr: true},
		{name: "blank", req: CreateTodoRequest{Title: " \t "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateTodo(&tt.req)
			if tt.wantErr {
				require.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.title, tt.req.Title)
		})
	}
}
