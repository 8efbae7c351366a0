package todos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMemoryRepository_CreateThenFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, CreateTodoRequest{Title: "buy milk", Description: "2 litres"})
	require.NoError(t, err)
	require.Len(t, created.ID, 24)
	require.False(t, created.Completed)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, found)
}

func TestMemoryRepository_FindAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	empty, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	var ids []string
	for _, title := range []string{"first", "second", "third"} {
		todo, err := repo.Create(ctx, CreateTodoRequest{Title: title})
		require.NoError(t, err)
		ids = append(ids, todo.ID)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, ids[2], all[0].ID)
	require.Equal(t, ids[1], all[1].ID)
	require.Equal(t, ids[0], all[2].ID)
}

func TestMemoryRepository_UpdateAppliesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, CreateTodoRequest{Title: "buy milk", Description: "2 litres"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, UpdateTodoRequest{Completed: ptr(true)})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, created.Title, updated.Title)
	require.Equal(t, created.Description, updated.Description)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// Explicit empty values are applied, absent ones are not
	cleared, err := repo.Update(ctx, created.ID, UpdateTodoRequest{Description: ptr(""), Completed: ptr(false)})
	require.NoError(t, err)
	require.Empty(t, cleared.Description)
	require.False(t, cleared.Completed)
	require.Equal(t, "buy milk", cleared.Title)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	deleted, err := repo.Delete(ctx, "507f1f77bcf86cd799439011")
	require.NoError(t, err)
	require.False(t, deleted)

	created, err := repo.Create(ctx, CreateTodoRequest{Title: "buy milk"})
	require.NoError(t, err)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestMemoryRepository_MalformedIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for _, id := range []string{"", "abc", "not-an-object-id", "507f1f77bcf86cd79943901z"} {
		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.Nil(t, found)

		updated, err := repo.Update(ctx, id, UpdateTodoRequest{Completed: ptr(true)})
		require.NoError(t, err)
		require.Nil(t, updated)

		deleted, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		require.False(t, deleted)
	}
}
