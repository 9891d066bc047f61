package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-assistant/internal/domain/entities"
	"sales-assistant/internal/infra/logger"
)

func newTestRepo(t *testing.T, max int) *JSONFileRepository {
	t.Helper()
	return NewJSONFileRepository(filepath.Join(t.TempDir(), "data"), max, logger.Discard())
}

func TestJSONFileRepositoryCreatesFileLazily(t *testing.T) {
	repo := newTestRepo(t, 100)
	ctx := context.Background()

	_, err := os.Stat(repo.Path())
	assert.True(t, os.IsNotExist(err))

	records, err := repo.FindRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, repo.Append(ctx, entities.EditRecord{ID: "one"}))
	_, err = os.Stat(repo.Path())
	assert.NoError(t, err)
}

func TestJSONFileRepositoryEvictsOldestFirst(t *testing.T) {
	repo := newTestRepo(t, 100)
	ctx := context.Background()

	for i := 0; i < 105; i++ {
		require.NoError(t, repo.Append(ctx, entities.EditRecord{ID: fmt.Sprintf("edit-%d", i)}))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, count)

	records, err := repo.FindRecent(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "edit-5", records[0].ID)
	assert.Equal(t, "edit-104", records[len(records)-1].ID)
}

func TestJSONFileRepositoryFindRecent(t *testing.T) {
	repo := newTestRepo(t, 10)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		require.NoError(t, repo.Append(ctx, entities.EditRecord{ID: fmt.Sprintf("edit-%d", i)}))
	}

	records, err := repo.FindRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"edit-3", "edit-4", "edit-5"}, []string{records[0].ID, records[1].ID, records[2].ID})
}

func TestJSONFileRepositoryCorruptFileIsEmptyHistory(t *testing.T) {
	repo := newTestRepo(t, 100)
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(filepath.Dir(repo.Path()), 0o755))
	require.NoError(t, os.WriteFile(repo.Path(), []byte("{not json"), 0o644))

	records, err := repo.FindRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, repo.Append(ctx, entities.EditRecord{ID: "fresh"}))
	records, err = repo.FindRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fresh", records[0].ID)
}

func TestJSONFileRepositoryWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("a file, not a directory"), 0o644))

	repo := NewJSONFileRepository(blocker, 100, logger.Discard())
	assert.Error(t, repo.Append(context.Background(), entities.EditRecord{ID: "lost"}))
}
