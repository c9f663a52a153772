package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"go-resume-tracker/internal/domain"
	"go-resume-tracker/pkg/apperror"
	"go-resume-tracker/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type authUsecase struct {
	userRepo  domain.UserRepository
	tokenRepo domain.RefreshTokenRepository
	tokens    *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokenRepo domain.RefreshTokenRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	// Friendly duplicate check; the unique constraint in the repository is
	// the backstop under concurrent registration.
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if existing != nil && err == nil {
		return nil, apperror.Conflict("User with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
		Role:     domain.RoleApplicant,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same message whether the email or the password is wrong
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	return u.issuePair(ctx, user.ID)
}

// Refresh validates the presented refresh token against its stored hash and
// rotates the pair: the old refresh token is unusable after this call.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	userID, err := u.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}

	storedHash, err := u.tokenRepo.GetHash(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid refresh token")
		}
		return nil, apperror.Internal(err)
	}
	if storedHash != hashToken(refreshToken) {
		return nil, apperror.Unauthorized("Invalid refresh token")
	}

	return u.issuePair(ctx, userID)
}

func (u *authUsecase) Logout(ctx context.Context, userID int64) error {
	if err := u.tokenRepo.Delete(ctx, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) issuePair(ctx context.Context, userID int64) (*domain.TokenPair, error) {
	access, refresh, err := u.tokens.IssuePair(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.tokenRepo.Upsert(ctx, userID, hashToken(refresh)); err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// hashToken digests a refresh token for storage. SHA-256 rather than bcrypt:
// signed JWTs exceed bcrypt's 72-byte input limit and already carry enough
// entropy that a fast hash is sufficient.
func hashToken(t string) string {
	sum := sha256.Sum256([]byte(t))
	return hex.EncodeToString(sum[:])
}
