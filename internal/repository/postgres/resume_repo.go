package postgres

import (
	"context"
	"errors"
	"time"

	"go-resume-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

// Create inserts a new resume. New resumes always start at APPLY.
func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `
		INSERT INTO resumes (user_id, title, introduction, apply_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	resume.CreatedAt = now
	resume.UpdatedAt = now
	if resume.ApplyStatus == "" {
		resume.ApplyStatus = domain.ApplyStatusApply
	}

	return r.db.QueryRow(ctx, query,
		resume.UserID,
		resume.Title,
		resume.Introduction,
		resume.ApplyStatus,
		resume.CreatedAt,
		resume.UpdatedAt,
	).Scan(&resume.ID)
}

// GetByID retrieves a resume by ID with the owner's display name joined
func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	query := `
		SELECT r.id, r.user_id, r.title, r.introduction, r.apply_status, r.created_at, r.updated_at,
		       u.name as owner_name
		FROM resumes r
		JOIN users u ON r.user_id = u.id
		WHERE r.id = $1`

	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resume.ID, &resume.UserID, &resume.Title, &resume.Introduction,
		&resume.ApplyStatus, &resume.CreatedAt, &resume.UpdatedAt,
		&resume.OwnerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &resume, nil
}

// List retrieves resumes with the owner's display name joined, filtered and
// ordered per opts. Default order is newest first.
func (r *resumeRepo) List(ctx context.Context, opts domain.ResumeListOptions) ([]domain.Resume, error) {
	query := `
		SELECT r.id, r.user_id, r.title, r.introduction, r.apply_status, r.created_at, r.updated_at,
		       u.name as owner_name
		FROM resumes r
		JOIN users u ON r.user_id = u.id
		WHERE ($1::bigint = 0 OR r.user_id = $1)
		  AND ($2::text = '' OR r.apply_status = $2)
		ORDER BY r.created_at DESC`
	if opts.Ascending {
		query = `
		SELECT r.id, r.user_id, r.title, r.introduction, r.apply_status, r.created_at, r.updated_at,
		       u.name as owner_name
		FROM resumes r
		JOIN users u ON r.user_id = u.id
		WHERE ($1::bigint = 0 OR r.user_id = $1)
		  AND ($2::text = '' OR r.apply_status = $2)
		ORDER BY r.created_at ASC`
	}

	rows, err := r.db.Query(ctx, query, opts.OwnerID, opts.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(
			&resume.ID, &resume.UserID, &resume.Title, &resume.Introduction,
			&resume.ApplyStatus, &resume.CreatedAt, &resume.UpdatedAt,
			&resume.OwnerName,
		); err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

// Update rewrites the authoring fields (title, introduction) and updated_at.
// ApplyStatus is deliberately not touched here; that write belongs to the
// resume log repository's transaction.
func (r *resumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	query := `UPDATE resumes SET title = $2, introduction = $3, updated_at = $4 WHERE id = $1`
	resume.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query, resume.ID, resume.Title, resume.Introduction, resume.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
