package postgres

import (
	"context"
	"errors"
	"time"

	"go-resume-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type refreshTokenRepo struct {
	db *pgxpool.Pool
}

func NewRefreshTokenRepository(db *pgxpool.Pool) domain.RefreshTokenRepository {
	return &refreshTokenRepo{db: db}
}

// Upsert replaces the user's stored refresh token hash (one active token per user).
func (r *refreshTokenRepo) Upsert(ctx context.Context, userID int64, tokenHash string) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET token_hash = EXCLUDED.token_hash, updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, userID, tokenHash, time.Now())
	return err
}

func (r *refreshTokenRepo) GetHash(ctx context.Context, userID int64) (string, error) {
	query := `SELECT token_hash FROM refresh_tokens WHERE user_id = $1`
	var hash string
	err := r.db.QueryRow(ctx, query, userID).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return hash, nil
}

func (r *refreshTokenRepo) Delete(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}
