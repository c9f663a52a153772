package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go-resume-tracker/internal/domain"
	"go-resume-tracker/pkg/apperror"
)

// minIntroductionLen is the minimum introduction length in characters
const minIntroductionLen = 150

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo}
}

func (uc *resumeUsecase) CreateResume(ctx context.Context, ownerID int64, title, introduction string) (*domain.Resume, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	if utf8.RuneCountInString(introduction) < minIntroductionLen {
		return nil, apperror.BadRequest("Introduction must be at least 150 characters")
	}

	resume := &domain.Resume{
		UserID:       ownerID,
		Title:        title,
		Introduction: introduction,
		ApplyStatus:  domain.ApplyStatusApply,
	}
	if err := uc.resumeRepo.Create(ctx, resume); err != nil {
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

// ListResumes returns the caller's own resumes for applicants, or every
// resume (optionally filtered by status) for recruiters. Sort is by creation
// time, case-insensitive "asc"/"desc", newest first by default.
func (uc *resumeUsecase) ListResumes(ctx context.Context, userID int64, role, sort, status string) ([]domain.Resume, error) {
	if status != "" && !domain.ValidApplyStatus(status) {
		return nil, apperror.BadRequest("Invalid apply status filter")
	}

	opts := domain.ResumeListOptions{
		OwnerID:   userID,
		Status:    status,
		Ascending: strings.EqualFold(sort, "asc"),
	}
	if role == domain.RoleRecruiter {
		opts.OwnerID = 0 // recruiters see every applicant's resumes
	}

	resumes, err := uc.resumeRepo.List(ctx, opts)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if resumes == nil {
		resumes = []domain.Resume{}
	}
	return resumes, nil
}

// GetResume returns the resume if the caller owns it or is a recruiter.
// Non-owned resumes are reported as not found rather than forbidden so
// applicants cannot probe for other users' resume ids.
func (uc *resumeUsecase) GetResume(ctx context.Context, userID int64, role string, resumeID int64) (*domain.Resume, error) {
	resume, err := uc.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}
	if role != domain.RoleRecruiter && resume.UserID != userID {
		return nil, apperror.NotFound("Resume not found")
	}
	return resume, nil
}

func (uc *resumeUsecase) UpdateResume(ctx context.Context, ownerID, resumeID int64, update domain.ResumeUpdate) (*domain.Resume, error) {
	if update.Title == nil && update.Introduction == nil {
		return nil, apperror.BadRequest("Nothing to update")
	}

	resume, err := uc.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}
	if resume.UserID != ownerID {
		return nil, apperror.NotFound("Resume not found")
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, apperror.BadRequest("Title is required")
		}
		resume.Title = *update.Title
	}
	if update.Introduction != nil {
		if utf8.RuneCountInString(*update.Introduction) < minIntroductionLen {
			return nil, apperror.BadRequest("Introduction must be at least 150 characters")
		}
		resume.Introduction = *update.Introduction
	}

	if err := uc.resumeRepo.Update(ctx, resume); err != nil {
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

func (uc *resumeUsecase) DeleteResume(ctx context.Context, ownerID, resumeID int64) error {
	resume, err := uc.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Resume not found")
		}
		return apperror.Internal(err)
	}
	if resume.UserID != ownerID {
		return apperror.NotFound("Resume not found")
	}

	if err := uc.resumeRepo.Delete(ctx, resumeID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
