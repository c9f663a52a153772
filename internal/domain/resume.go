package domain

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("resource not found")

// Apply status constants. There is no enforced transition graph: any
// enumerated value may follow any other (e.g. FINAL_PASS back to APPLY).
const (
	ApplyStatusApply      = "APPLY"
	ApplyStatusDrop       = "DROP"
	ApplyStatusPass       = "PASS"
	ApplyStatusInterview1 = "INTERVIEW1"
	ApplyStatusInterview2 = "INTERVIEW2"
	ApplyStatusFinalPass  = "FINAL_PASS"
)

// ValidApplyStatus reports whether s is one of the six enumerated statuses.
func ValidApplyStatus(s string) bool {
	switch s {
	case ApplyStatusApply, ApplyStatusDrop, ApplyStatusPass,
		ApplyStatusInterview1, ApplyStatusInterview2, ApplyStatusFinalPass:
		return true
	}
	return false
}

// Resume is owned by exactly one user. ApplyStatus is mutated only through
// the status transition engine (StatusUsecase.ChangeStatus).
type Resume struct {
	ID           int64     `json:"resumeId"`
	UserID       int64     `json:"userId"`
	Title        string    `json:"title"`
	Introduction string    `json:"introduction"`
	ApplyStatus  string    `json:"applyStatus"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Joined data for list/detail responses
	OwnerName string `json:"name,omitempty"`
}

// ResumeListOptions controls filtering and ordering of resume listings.
type ResumeListOptions struct {
	OwnerID   int64  // restrict to one owner; 0 means all owners
	Status    string // filter by apply status; empty means no filter
	Ascending bool   // sort by created_at; default is newest first
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id int64) (*Resume, error)
	List(ctx context.Context, opts ResumeListOptions) ([]Resume, error)
	Update(ctx context.Context, resume *Resume) error
	Delete(ctx context.Context, id int64) error
}

// ResumeUpdate carries the mutable authoring fields of a resume.
// Nil means "leave unchanged"; at least one field must be set.
type ResumeUpdate struct {
	Title        *string `json:"title"`
	Introduction *string `json:"introduction"`
}

type ResumeUsecase interface {
	CreateResume(ctx context.Context, ownerID int64, title, introduction string) (*Resume, error)
	ListResumes(ctx context.Context, userID int64, role, sort, status string) ([]Resume, error)
	GetResume(ctx context.Context, userID int64, role string, resumeID int64) (*Resume, error)
	UpdateResume(ctx context.Context, ownerID, resumeID int64, update ResumeUpdate) (*Resume, error)
	DeleteResume(ctx context.Context, ownerID, resumeID int64) error
}
