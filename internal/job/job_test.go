package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
)

// MockBoardRepository is a mock implementation of repository.BoardRepository
type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Load(ctx context.Context) []domain.Board {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Board)
}

func (m *MockBoardRepository) Save(ctx context.Context, boards []domain.Board) error {
	args := m.Called(ctx, boards)
	return args.Error(0)
}

func (m *MockBoardRepository) Backend() string {
	return "mock"
}

type stubSource struct {
	boards   []domain.Board
	revision uint64
}

func (s *stubSource) Boards() []domain.Board { return s.boards }
func (s *stubSource) Revision() uint64       { return s.revision }

func backupRuns(m *metrics.Metrics, result string) float64 {
	return testutil.ToFloat64(m.BackupRunsTotal.WithLabelValues(result))
}

func TestBackupJob_CopiesCollection(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	source := &stubSource{
		boards:   []domain.Board{{ID: "b1", Title: "Sprint", Columns: []domain.Column{}, Cards: map[string]domain.Card{}}},
		revision: 4,
	}
	target := repository.NewMemoryBoardRepository()

	job := NewBackupJob(source, target, m, zap.NewNop())
	job.Run()

	saved := target.Load(context.Background())
	require.Len(t, saved, 1)
	assert.Equal(t, "Sprint", saved[0].Title)
	assert.Equal(t, float64(1), backupRuns(m, BackupSuccess))

	// unchanged revision is not copied again
	job.Run()
	assert.Equal(t, float64(1), backupRuns(m, BackupSkipped))

	source.revision = 5
	source.boards = append(source.boards, domain.Board{ID: "b2", Title: "Ops", Columns: []domain.Column{}, Cards: map[string]domain.Card{}})
	job.Run()
	assert.Len(t, target.Load(context.Background()), 2)
	assert.Equal(t, float64(2), backupRuns(m, BackupSuccess))
}

func TestBackupJob_FailureIsRetried(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	source := &stubSource{boards: []domain.Board{}, revision: 1}

	target := new(MockBoardRepository)
	target.On("Save", mock.Anything, mock.Anything).Return(errors.New("access denied")).Once()
	target.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	job := NewBackupJob(source, target, m, nil)
	job.Run()
	assert.Equal(t, float64(1), backupRuns(m, BackupFailure))

	// a failed run does not mark the revision as backed up
	job.Run()
	assert.Equal(t, float64(1), backupRuns(m, BackupSuccess))
	target.AssertNumberOfCalls(t, "Save", 2)
}

func TestScheduler_RunsJobsUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	var runs atomic.Int32
	s := NewScheduler(zap.NewNop())
	require.NoError(t, s.Add("count", "@every 1s", cron.FuncJob(func() { runs.Add(1) })))
	require.NoError(t, s.Add("disabled", "", cron.FuncJob(func() { t.Error("disabled job ran") })))
	assert.Equal(t, 1, s.Len())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_RecoversPanics(t *testing.T) {
	defer goleak.VerifyNone(t)

	var after atomic.Int32
	s := NewScheduler(nil)
	require.NoError(t, s.Add("panics", "@every 1s", cron.FuncJob(func() {
		after.Add(1)
		panic("boom")
	})))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return after.Load() > 0 }, 3*time.Second, 20*time.Millisecond)
	cancel()
	<-done
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := NewScheduler(nil)
	err := s.Add("broken", "not a schedule", cron.FuncJob(func() {}))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, 0, s.Len())
}
