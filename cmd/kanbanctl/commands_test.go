package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/repository"
)

const exportFixture = `[
  {
    "id": "b1",
    "title": "Sprint",
    "columns": [
      {"id": "todo", "title": "To Do", "cardIds": ["c1"]},
      {"id": "done", "title": "Done", "cardIds": []}
    ],
    "cards": {
      "c1": {"id": "c1", "title": "Write docs", "status": "Pending", "priority": "High", "createdAt": "2024-05-01T09:00:00Z"}
    }
  }
]`

type failingStore struct{ err error }

func (s failingStore) LoadStrict(context.Context) ([]domain.Board, error) { return nil, s.err }
func (s failingStore) Save(context.Context, []domain.Board) error         { return s.err }
func (s failingStore) Backend() string                                    { return "broken" }

func openerFor(store boardStore) storeOpener {
	return func(context.Context, string) (boardStore, func() error, error) {
		return store, func() error { return nil }, nil
	}
}

func execute(t *testing.T, open storeOpener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boards.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportThenExport(t *testing.T) {
	store := repository.NewMemoryBoardRepository()
	open := openerFor(store)

	out, err := execute(t, open, "import", writeFixture(t, exportFixture))
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 boards (2 columns, 1 cards) into memory")

	out, err = execute(t, open, "export")
	require.NoError(t, err)

	boards, err := repository.DecodeBoards([]byte(out))
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "Sprint", boards[0].Title)
	assert.Equal(t, []string{"c1"}, boards[0].Columns[0].CardIDs)
}

func TestExport_ToFile(t *testing.T) {
	store := repository.NewMemoryBoardRepository()
	boards, err := repository.DecodeBoards([]byte(exportFixture))
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), boards))

	path := filepath.Join(t.TempDir(), "out.json")
	out, err := execute(t, openerFor(store), "export", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 boards")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Write docs"`)
}

func TestImport_RefusesToOverwriteWithoutForce(t *testing.T) {
	store := repository.NewMemoryBoardRepository()
	open := openerFor(store)
	path := writeFixture(t, exportFixture)

	_, err := execute(t, open, "import", path)
	require.NoError(t, err)

	_, err = execute(t, open, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, open, "import", "--force", path)
	assert.NoError(t, err)
}

func TestImport_RejectsInvalidCollection(t *testing.T) {
	orphan := `[{"id":"b1","title":"x","columns":[],"cards":{"c9":{"id":"c9","title":"lost"}}}]`
	store := repository.NewMemoryBoardRepository()

	_, err := execute(t, openerFor(store), "import", writeFixture(t, orphan))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	assert.Empty(t, store.Load(context.Background()))
}

func TestValidate(t *testing.T) {
	store := repository.NewMemoryBoardRepository()
	out, err := execute(t, openerFor(store), "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ memory: 0 boards")

	out, err = execute(t, openerFor(failingStore{err: errors.New("checksum mismatch")}), "validate")
	require.Error(t, err)
	assert.Contains(t, out, "✗ broken: checksum mismatch")
}

func TestOpenFailureIsReported(t *testing.T) {
	open := func(context.Context, string) (boardStore, func() error, error) {
		return nil, nil, errors.New("no such backend")
	}
	_, err := execute(t, open, "validate")
	assert.EqualError(t, err, "no such backend")
}
