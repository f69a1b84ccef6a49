package database

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

type queryRecord struct {
	operation string
	table     string
	err       error
}

type mockMetricsRecorder struct {
	mu        sync.Mutex
	queries   []queryRecord
	statsCall int
}

func (m *mockMetricsRecorder) RecordDBQuery(operation, table string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, queryRecord{operation: operation, table: table, err: err})
}

func (m *mockMetricsRecorder) UpdateDBStats(stats interface{}) {
	if _, ok := stats.(sql.DBStats); !ok {
		return
	}
	m.mu.Lock()
	m.statsCall++
	m.mu.Unlock()
}

func (m *mockMetricsRecorder) reset() {
	m.mu.Lock()
	m.queries = nil
	m.mu.Unlock()
}

func (m *mockMetricsRecorder) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsCall
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := New(Config{Driver: DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db, zap.NewNop()))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func snapshotRow(slot string) domain.BoardSnapshot {
	return domain.BoardSnapshot{
		Slot:      slot,
		Payload:   datatypes.JSON(`[]`),
		UpdatedAt: time.Now(),
	}
}

func TestRegisterMetricsCallbacks_RecordsEachOperation(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	row := snapshotRow("kanban:boards")
	require.NoError(t, db.Create(&row).Error)

	var loaded domain.BoardSnapshot
	require.NoError(t, db.First(&loaded, "slot = ?", row.Slot).Error)
	require.NoError(t, db.Model(&row).Update("payload", datatypes.JSON(`[{"id":"b"}]`)).Error)
	require.NoError(t, db.Delete(&row).Error)

	require.Len(t, recorder.queries, 4)
	for i, op := range []string{"insert", "select", "update", "delete"} {
		assert.Equal(t, op, recorder.queries[i].operation)
		assert.Equal(t, "board_snapshots", recorder.queries[i].table)
		assert.NoError(t, recorder.queries[i].err)
	}
}

func TestRegisterMetricsCallbacks_RecordsQueryError(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	var loaded domain.BoardSnapshot
	err := db.First(&loaded, "slot = ?", "missing").Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "select", recorder.queries[0].operation)
	assert.Error(t, recorder.queries[0].err)
}

func TestRegisterMetricsCallbacks_RecordsDuplicateInsert(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	first := snapshotRow("dup")
	require.NoError(t, db.Create(&first).Error)
	recorder.reset()

	second := snapshotRow("dup")
	require.Error(t, db.Create(&second).Error)

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "insert", recorder.queries[0].operation)
	assert.Error(t, recorder.queries[0].err)
}

func TestRunDBStatsCollector_StopsOnCancel(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunDBStatsCollector(ctx, db, recorder, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return recorder.calls() > 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("collector did not stop after cancel")
	}
}
