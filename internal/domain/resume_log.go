package domain

import (
	"context"
	"time"
)

// ResumeLog is the immutable audit record of one status change. Exactly one
// row is created per successful change, in the same transaction as the
// status update; rows are never mutated or deleted.
type ResumeLog struct {
	ID             int64     `json:"resumeLogId"`
	RecruiterID    int64     `json:"-"`
	ResumeID       int64     `json:"resumeId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"createdAt"`

	// Joined data for list responses
	RecruiterName string `json:"recruiterName"`
}

// ResumeLogRepository owns the transactional status-change write.
type ResumeLogRepository interface {
	// ChangeStatus updates the resume's apply status and inserts the audit
	// row in one transaction: both writes commit together or neither does.
	// Concurrent changes to the same resume are serialized, so each log's
	// PreviousStatus matches the preceding log's NewStatus.
	// Returns ErrNotFound (zero writes) when the resume does not exist.
	ChangeStatus(ctx context.Context, recruiterID, resumeID int64, newStatus, reason string) (*ResumeLog, error)

	// ListByResumeID returns the change history newest first, with each
	// acting recruiter's display name resolved.
	ListByResumeID(ctx context.Context, resumeID int64) ([]ResumeLog, error)
}

// StatusUsecase is the application-status transition engine and audit reader.
type StatusUsecase interface {
	ChangeStatus(ctx context.Context, recruiterID, resumeID int64, newStatus, reason string) (*ResumeLog, error)
	ListLogs(ctx context.Context, resumeID int64) ([]ResumeLog, error)
}
