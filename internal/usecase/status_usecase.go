package usecase

import (
	"context"
	"errors"
	"strings"

	"go-resume-tracker/internal/domain"
	"go-resume-tracker/pkg/apperror"
)

type statusUsecase struct {
	logRepo domain.ResumeLogRepository
}

func NewStatusUsecase(logRepo domain.ResumeLogRepository) domain.StatusUsecase {
	return &statusUsecase{logRepo: logRepo}
}

// ChangeStatus validates the request and delegates the atomic
// status-update + audit-insert pair to the repository. Validation happens
// before any store access: an invalid status or empty reason never reaches
// the database. Any enumerated status is accepted as the next value; there
// is no transition graph.
func (uc *statusUsecase) ChangeStatus(ctx context.Context, recruiterID, resumeID int64, newStatus, reason string) (*domain.ResumeLog, error) {
	if !domain.ValidApplyStatus(newStatus) {
		return nil, apperror.BadRequest("Invalid apply status. Must be: APPLY, DROP, PASS, INTERVIEW1, INTERVIEW2 or FINAL_PASS")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, apperror.BadRequest("Reason for the status change is required")
	}

	log, err := uc.logRepo.ChangeStatus(ctx, recruiterID, resumeID, newStatus, reason)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}
	return log, nil
}

// ListLogs returns the status-change history for a resume, newest first.
// A resume with no changes yields an empty list, not an error.
func (uc *statusUsecase) ListLogs(ctx context.Context, resumeID int64) ([]domain.ResumeLog, error) {
	logs, err := uc.logRepo.ListByResumeID(ctx, resumeID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if logs == nil {
		logs = []domain.ResumeLog{}
	}
	return logs, nil
}
