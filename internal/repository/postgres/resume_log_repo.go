package postgres

import (
	"context"
	"errors"
	"time"

	"go-resume-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeLogRepo struct {
	db *pgxpool.Pool
}

func NewResumeLogRepository(db *pgxpool.Pool) domain.ResumeLogRepository {
	return &resumeLogRepo{db: db}
}

// ChangeStatus performs the status update and the audit insert in a single
// transaction. The row lock taken by SELECT ... FOR UPDATE serializes
// concurrent changes on the same resume, so the previous_status captured
// here is always the status the previous committed change left behind.
func (r *resumeLogRepo) ChangeStatus(ctx context.Context, recruiterID, resumeID int64, newStatus, reason string) (*domain.ResumeLog, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var previousStatus string
	err = tx.QueryRow(ctx,
		`SELECT apply_status FROM resumes WHERE id = $1 FOR UPDATE`,
		resumeID,
	).Scan(&previousStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	_, err = tx.Exec(ctx,
		`UPDATE resumes SET apply_status = $2, updated_at = $3 WHERE id = $1`,
		resumeID, newStatus, now,
	)
	if err != nil {
		return nil, err
	}

	log := &domain.ResumeLog{
		RecruiterID:    recruiterID,
		ResumeID:       resumeID,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		Reason:         reason,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO resume_logs (recruiter_id, resume_id, previous_status, new_status, reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		recruiterID, resumeID, previousStatus, newStatus, reason, now,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return log, nil
}

// ListByResumeID retrieves the status-change history newest first with the
// acting recruiter's display name joined
func (r *resumeLogRepo) ListByResumeID(ctx context.Context, resumeID int64) ([]domain.ResumeLog, error) {
	query := `
		SELECT l.id, l.recruiter_id, l.resume_id, l.previous_status, l.new_status, l.reason, l.created_at,
		       u.name as recruiter_name
		FROM resume_logs l
		JOIN users u ON l.recruiter_id = u.id
		WHERE l.resume_id = $1
		ORDER BY l.created_at DESC`

	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.ResumeLog
	for rows.Next() {
		var log domain.ResumeLog
		if err := rows.Scan(
			&log.ID, &log.RecruiterID, &log.ResumeID,
			&log.PreviousStatus, &log.NewStatus, &log.Reason, &log.CreatedAt,
			&log.RecruiterName,
		); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
