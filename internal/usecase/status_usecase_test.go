package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-resume-tracker/internal/domain"
	"go-resume-tracker/internal/usecase"
	"go-resume-tracker/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockResumeLogRepo struct {
	mock.Mock
}

func (m *MockResumeLogRepo) ChangeStatus(ctx context.Context, recruiterID, resumeID int64, newStatus, reason string) (*domain.ResumeLog, error) {
	args := m.Called(ctx, recruiterID, resumeID, newStatus, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeLog), args.Error(1)
}

func (m *MockResumeLogRepo) ListByResumeID(ctx context.Context, resumeID int64) ([]domain.ResumeLog, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResumeLog), args.Error(1)
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestChangeStatusValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a status outside the enumerated set before any store access", func(t *testing.T) {
		mockRepo := new(MockResumeLogRepo)
		uc := usecase.NewStatusUsecase(mockRepo)

		_, err := uc.ChangeStatus(ctx, 1, 10, "HIRED", "looks great")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "ChangeStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject an empty reason before any store access", func(t *testing.T) {
		mockRepo := new(MockResumeLogRepo)
		uc := usecase.NewStatusUsecase(mockRepo)

		_, err := uc.ChangeStatus(ctx, 1, 10, domain.ApplyStatusPass, "   ")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "ChangeStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should accept any enumerated status regardless of the previous one", func(t *testing.T) {
		// No transition graph: FINAL_PASS back to APPLY is legal
		mockRepo := new(MockResumeLogRepo)
		uc := usecase.NewStatusUsecase(mockRepo)

		expected := &domain.ResumeLog{
			ID:             7,
			RecruiterID:    1,
			ResumeID:       10,
			PreviousStatus: domain.ApplyStatusFinalPass,
			NewStatus:      domain.ApplyStatusApply,
			Reason:         "reopening pipeline",
			CreatedAt:      time.Now(),
		}
		mockRepo.On("ChangeStatus", ctx, int64(1), int64(10), domain.ApplyStatusApply, "reopening pipeline").
			Return(expected, nil)

		log, err := uc.ChangeStatus(ctx, 1, 10, domain.ApplyStatusApply, "reopening pipeline")
		assert.NoError(t, err)
		assert.Equal(t, expected, log)
	})
}

func TestChangeStatusOutcomes(t *testing.T) {
	ctx := context.Background()

	t.Run("Should map a missing resume to 404 with zero writes", func(t *testing.T) {
		mockRepo := new(MockResumeLogRepo)
		uc := usecase.NewStatusUsecase(mockRepo)

		mockRepo.On("ChangeStatus", ctx, int64(1), int64(99), domain.ApplyStatusDrop, "withdrawn").
			Return(nil, domain.ErrNotFound)

		log, err := uc.ChangeStatus(ctx, 1, 99, domain.ApplyStatusDrop, "withdrawn")
		assert.Nil(t, log)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})

	t.Run("Should surface a store failure as a generic 500 without a partial log", func(t *testing.T) {
		mockRepo := new(MockResumeLogRepo)
		uc := usecase.NewStatusUsecase(mockRepo)

		mockRepo.On("ChangeStatus", ctx, int64(1), int64(10), domain.ApplyStatusPass, "ok").
			Return(nil, errors.New("tx commit failed"))

		log, err := uc.ChangeStatus(ctx, 1, 10, domain.ApplyStatusPass, "ok")
		assert.Nil(t, log)
		assert.Equal(t, http.StatusInternalServerError, appErrCode(t, err))
	})

	t.Run("Should return the created log for a valid change", func(t *testing.T) {
		mockRepo := new(MockResumeLogRepo)
		uc := usecase.NewStatusUsecase(mockRepo)

		expected := &domain.ResumeLog{
			ID:             1,
			RecruiterID:    3,
			ResumeID:       10,
			PreviousStatus: domain.ApplyStatusApply,
			NewStatus:      domain.ApplyStatusInterview1,
			Reason:         "moved to interview",
			CreatedAt:      time.Now(),
		}
		mockRepo.On("ChangeStatus", ctx, int64(3), int64(10), domain.ApplyStatusInterview1, "moved to interview").
			Return(expected, nil)

		log, err := uc.ChangeStatus(ctx, 3, 10, domain.ApplyStatusInterview1, "moved to interview")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplyStatusApply, log.PreviousStatus)
		assert.Equal(t, domain.ApplyStatusInterview1, log.NewStatus)
		assert.Equal(t, "moved to interview", log.Reason)
		assert.NotZero(t, log.ID)
	})
}

func TestListLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("Should preserve newest-first ordering from the store", func(t *testing.T) {
		mockRepo := new(MockResumeLogRepo)
		uc := usecase.NewStatusUsecase(mockRepo)

		now := time.Now()
		history := []domain.ResumeLog{
			{ID: 3, ResumeID: 10, PreviousStatus: domain.ApplyStatusInterview2, NewStatus: domain.ApplyStatusFinalPass, CreatedAt: now},
			{ID: 2, ResumeID: 10, PreviousStatus: domain.ApplyStatusInterview1, NewStatus: domain.ApplyStatusInterview2, CreatedAt: now.Add(-time.Minute)},
			{ID: 1, ResumeID: 10, PreviousStatus: domain.ApplyStatusApply, NewStatus: domain.ApplyStatusInterview1, CreatedAt: now.Add(-2 * time.Minute)},
		}
		mockRepo.On("ListByResumeID", ctx, int64(10)).Return(history, nil)

		logs, err := uc.ListLogs(ctx, 10)
		assert.NoError(t, err)
		assert.Len(t, logs, 3)
		for i := 1; i < len(logs); i++ {
			assert.True(t, !logs[i-1].CreatedAt.Before(logs[i].CreatedAt),
				"logs must be ordered by creation time descending")
			// Under serialized writes each entry chains to the previous one
			assert.Equal(t, logs[i].NewStatus, logs[i-1].PreviousStatus)
		}
	})

	t.Run("Should return identical results across repeated reads", func(t *testing.T) {
		mockRepo := new(MockResumeLogRepo)
		uc := usecase.NewStatusUsecase(mockRepo)

		history := []domain.ResumeLog{
			{ID: 1, ResumeID: 10, PreviousStatus: domain.ApplyStatusApply, NewStatus: domain.ApplyStatusDrop, CreatedAt: time.Now()},
		}
		mockRepo.On("ListByResumeID", ctx, int64(10)).Return(history, nil).Twice()

		first, err := uc.ListLogs(ctx, 10)
		assert.NoError(t, err)
		second, err := uc.ListLogs(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Should return an empty list, not an error, when no changes happened", func(t *testing.T) {
		mockRepo := new(MockResumeLogRepo)
		uc := usecase.NewStatusUsecase(mockRepo)

		mockRepo.On("ListByResumeID", ctx, int64(10)).Return(nil, nil)

		logs, err := uc.ListLogs(ctx, 10)
		assert.NoError(t, err)
		assert.NotNil(t, logs)
		assert.Empty(t, logs)
	})
}
