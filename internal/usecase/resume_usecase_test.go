package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"go-resume-tracker/internal/domain"
	"go-resume-tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) List(ctx context.Context, opts domain.ResumeListOptions) ([]domain.Resume, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var longIntro = strings.Repeat("My background in distributed systems. ", 5) // > 150 chars

func TestCreateResume(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an introduction under 150 characters", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		_, err := uc.CreateResume(ctx, 1, "Backend engineer", "too short")
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should create with APPLY status and the caller as owner", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(nil).
			Run(func(args mock.Arguments) {
				r := args.Get(1).(*domain.Resume)
				assert.Equal(t, int64(1), r.UserID)
				assert.Equal(t, domain.ApplyStatusApply, r.ApplyStatus)
			})

		resume, err := uc.CreateResume(ctx, 1, "Backend engineer", longIntro)
		assert.NoError(t, err)
		assert.Equal(t, "Backend engineer", resume.Title)
	})
}

func TestListResumes(t *testing.T) {
	ctx := context.Background()

	t.Run("Should scope applicants to their own resumes", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		mockRepo.On("List", ctx, domain.ResumeListOptions{OwnerID: 7}).Return([]domain.Resume{}, nil)

		_, err := uc.ListResumes(ctx, 7, domain.RoleApplicant, "", "")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should let recruiters list all resumes with a status filter", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		mockRepo.On("List", ctx, domain.ResumeListOptions{OwnerID: 0, Status: domain.ApplyStatusInterview1}).
			Return([]domain.Resume{{ID: 1}}, nil)

		resumes, err := uc.ListResumes(ctx, 7, domain.RoleRecruiter, "", domain.ApplyStatusInterview1)
		assert.NoError(t, err)
		assert.Len(t, resumes, 1)
	})

	t.Run("Should treat sort as case-insensitive", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		mockRepo.On("List", ctx, domain.ResumeListOptions{OwnerID: 7, Ascending: true}).
			Return([]domain.Resume{}, nil)

		_, err := uc.ListResumes(ctx, 7, domain.RoleApplicant, "ASC", "")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject an invalid status filter", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		_, err := uc.ListResumes(ctx, 7, domain.RoleRecruiter, "", "HIRED")
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestGetResume(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Resume{ID: 10, UserID: 7, Title: "Mine"}

	t.Run("Should hide other applicants' resumes as not found", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(owned, nil)

		_, err := uc.GetResume(ctx, 99, domain.RoleApplicant, 10)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})

	t.Run("Should let recruiters view any resume", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(owned, nil)

		resume, err := uc.GetResume(ctx, 99, domain.RoleRecruiter, 10)
		assert.NoError(t, err)
		assert.Equal(t, owned, resume)
	})
}

func TestUpdateResume(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an empty update", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		_, err := uc.UpdateResume(ctx, 7, 10, domain.ResumeUpdate{})
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should refuse to update a resume the caller does not own", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		title := "New title"
		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.Resume{ID: 10, UserID: 1}, nil)

		_, err := uc.UpdateResume(ctx, 7, 10, domain.ResumeUpdate{Title: &title})
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should apply only the provided fields", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		title := "New title"
		mockRepo.On("GetByID", ctx, int64(10)).
			Return(&domain.Resume{ID: 10, UserID: 7, Title: "Old", Introduction: longIntro}, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Resume")).Return(nil)

		resume, err := uc.UpdateResume(ctx, 7, 10, domain.ResumeUpdate{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, "New title", resume.Title)
		assert.Equal(t, longIntro, resume.Introduction)
	})
}

func TestDeleteResume(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse to delete a resume the caller does not own", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.Resume{ID: 10, UserID: 1}, nil)

		err := uc.DeleteResume(ctx, 7, 10)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should delete an owned resume", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := usecase.NewResumeUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(&domain.Resume{ID: 10, UserID: 7}, nil)
		mockRepo.On("Delete", ctx, int64(10)).Return(nil)

		err := uc.DeleteResume(ctx, 7, 10)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
