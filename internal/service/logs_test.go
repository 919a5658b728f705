package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nutscript/helix-logs/internal/cache"
	"github.com/nutscript/helix-logs/internal/domain"
	"github.com/nutscript/helix-logs/internal/metrics"
	repository_mock "github.com/nutscript/helix-logs/internal/mocks/repository"
	"github.com/nutscript/helix-logs/internal/repo/repoerrs"
	"github.com/nutscript/helix-logs/internal/repo/repotypes"
	"github.com/nutscript/helix-logs/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// failingStore simulates an unreachable cache backend.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("cache down")
}

func (failingStore) Set(context.Context, string, string, time.Duration) error {
	return errors.New("cache down")
}

func strPtr(s string) *string { return &s }

func logAt(id, datetime int64) domain.LogEntry {
	return domain.LogEntry{
		ID:       id,
		SteamID:  testSteamID,
		LogType:  domain.LogTypeChat,
		Map:      "rp_wn_city27_v1b",
		Datetime: datetime,
		Text:     strPtr("line"),
	}
}

func TestLogService_GetContext(t *testing.T) {
	ctx := context.Background()
	const targetID = int64(46506098)
	const targetTime = int64(1732470527)

	t.Run("partitions strictly by datetime around the target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		target := logAt(targetID, targetTime)
		window := []domain.LogEntry{
			logAt(1, targetTime-10),
			logAt(2, targetTime), // shares the second, belongs to neither side
			target,
			logAt(3, targetTime+10),
		}

		mockRepo := repository_mock.NewMockLog(ctrl)
		mockRepo.EXPECT().GetLogByID(ctx, targetID).Return(target, nil)
		mockRepo.EXPECT().
			GetLogsByTimeRange(ctx, targetTime-300, targetTime+300).
			Return(window, nil)

		s := service.NewLogService(mockRepo, cache.NewMemory(), metrics.NewTestCounters())

		bundle, err := s.GetContext(ctx, targetID)
		require.NoError(t, err)

		assert.Equal(t, target, bundle.Target)
		require.Len(t, bundle.Before, 1)
		assert.Equal(t, int64(1), bundle.Before[0].ID)
		require.Len(t, bundle.After, 1)
		assert.Equal(t, int64(3), bundle.After[0].ID)
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		target := logAt(targetID, targetTime)

		mockRepo := repository_mock.NewMockLog(ctrl)
		mockRepo.EXPECT().GetLogByID(ctx, targetID).Return(target, nil).Times(1)
		mockRepo.EXPECT().
			GetLogsByTimeRange(ctx, targetTime-300, targetTime+300).
			Return([]domain.LogEntry{logAt(1, targetTime - 10), target}, nil).
			Times(1)

		s := service.NewLogService(mockRepo, cache.NewMemory(), metrics.NewTestCounters())

		first, err := s.GetContext(ctx, targetID)
		require.NoError(t, err)

		second, err := s.GetContext(ctx, targetID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("missing target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repository_mock.NewMockLog(ctrl)
		mockRepo.EXPECT().
			GetLogByID(ctx, int64(404)).
			Return(domain.LogEntry{}, repoerrs.ErrNotFound)

		s := service.NewLogService(mockRepo, cache.NewMemory(), metrics.NewTestCounters())

		_, err := s.GetContext(ctx, 404)
		assert.ErrorIs(t, err, service.ErrLogNotFound)
	})

	t.Run("cache store failure degrades to the log store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		target := logAt(targetID, targetTime)

		mockRepo := repository_mock.NewMockLog(ctrl)
		mockRepo.EXPECT().GetLogByID(ctx, targetID).Return(target, nil)
		mockRepo.EXPECT().
			GetLogsByTimeRange(ctx, targetTime-300, targetTime+300).
			Return([]domain.LogEntry{target}, nil)

		s := service.NewLogService(mockRepo, failingStore{}, metrics.NewTestCounters())

		bundle, err := s.GetContext(ctx, targetID)
		require.NoError(t, err)
		assert.Equal(t, target, bundle.Target)
	})
}

func TestLogService_GetLogs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := repotypes.ParseLogFilter(map[string]string{"log_type": "chat"})

	mockRepo := repository_mock.NewMockLog(ctrl)
	mockRepo.EXPECT().
		GetLogs(ctx, filter).
		Return(nil, errors.New("db error"))

	s := service.NewLogService(mockRepo, cache.NewMemory(), metrics.NewTestCounters())

	_, err := s.GetLogs(ctx, filter)
	assert.ErrorIs(t, err, service.ErrCannotGetLogs)
}

func TestLogService_GetTicketStats(t *testing.T) {
	ctx := context.Background()

	t.Run("month range is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		from, to := service.MonthDateRange(11, 2024)
		want := []domain.TicketStat{
			{SteamID: testSteamID, DisplayName: strPtr("Casey"), Count: 12},
		}

		mockRepo := repository_mock.NewMockLog(ctrl)
		mockRepo.EXPECT().GetTicketStats(ctx, from, to).Return(want, nil)

		s := service.NewLogService(mockRepo, cache.NewMemory(), metrics.NewTestCounters())

		got, err := s.GetTicketStats(ctx, 11, 2024)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("month out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := service.NewLogService(repository_mock.NewMockLog(ctrl), cache.NewMemory(), metrics.NewTestCounters())

		_, err := s.GetTicketStats(ctx, 13, 2024)
		assert.ErrorIs(t, err, service.ErrInvalidMonth)
	})
}

func TestLogService_ExportLogs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := repotypes.ParseLogFilter(nil)

	mockRepo := repository_mock.NewMockLog(ctrl)
	mockRepo.EXPECT().
		GetLogs(ctx, filter).
		Return([]domain.LogEntry{logAt(1, 1732470527)}, nil)

	s := service.NewLogService(mockRepo, cache.NewMemory(), metrics.NewTestCounters())

	file, err := s.ExportLogs(ctx, filter)
	require.NoError(t, err)
	assert.Regexp(t, `^logs-\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.txt$`, file.Name)
	assert.Contains(t, file.Content, "line")
}
