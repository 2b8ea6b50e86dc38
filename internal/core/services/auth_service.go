package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/ken122189/backend-P7/internal/core/domain"
	"github.com/ken122189/backend-P7/internal/core/ports"
)

// AuthService manages the session lifecycle: issuing token pairs on login,
// rotating the single stored refresh token on every refresh, and clearing it
// on logout. Internal failure detail stays in the server log; callers only
// ever see the coarse domain errors.
type AuthService struct {
	userRepo ports.UserRepository
	codec    ports.TokenCodec
	hasher   ports.PasswordHasher
	logger   *zap.Logger
}

func NewAuthService(userRepo ports.UserRepository, codec ports.TokenCodec, hasher ports.PasswordHasher, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codec:    codec,
		hasher:   hasher,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, fmt.Errorf("%w: username and password are required", domain.ErrInvalidCredentials)
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return 0, domain.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ID, nil
}

// Login verifies the credentials and issues a fresh token pair, overwriting
// whatever refresh token was stored before. Unknown username and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !s.hasher.Compare(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	pair, refreshHash, err := s.issuePair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, &refreshHash); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return pair, nil
}

// Logout clears the stored refresh token. Clearing an already-absent token is
// not an error. Outstanding access tokens stay valid until their natural
// expiry; they are stateless and cannot be recalled.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.userRepo.SetRefreshToken(ctx, userID, nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// Refresh exchanges a refresh token for a new pair and rotates the stored
// value so the presented token can never be used again. Every failure mode,
// expired, tampered, already rotated, unknown, or an internal store error,
// collapses into domain.ErrRefreshRejected.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	payload, err := s.codec.Verify(refreshToken, ports.ScopeRefresh)
	if err != nil {
		s.logger.Warn("refresh token failed verification", zap.Error(err))
		return nil, domain.ErrRefreshRejected
	}

	presentedHash := hashToken(refreshToken)
	user, err := s.userRepo.GetByRefreshToken(ctx, presentedHash)
	if err != nil {
		s.logger.Error("refresh token lookup failed", zap.Error(err))
		return nil, domain.ErrRefreshRejected
	}
	if user == nil || user.ID != payload.SubjectID {
		// Either the token was rotated away (or never issued), or the slot
		// was overwritten by a newer session for a different account.
		s.logger.Warn("refresh token reuse or mismatch detected",
			zap.Int64("subject_id", payload.SubjectID),
			zap.Bool("matched", user != nil))
		return nil, domain.ErrRefreshRejected
	}

	// Payload is rebuilt from the stored record so role changes take effect
	// on the next rotation.
	pair, newHash, err := s.issuePair(user)
	if err != nil {
		s.logger.Error("failed to issue rotated tokens", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, domain.ErrRefreshRejected
	}

	rotated, err := s.userRepo.RotateRefreshToken(ctx, user.ID, presentedHash, newHash)
	if err != nil {
		s.logger.Error("refresh token rotation failed", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, domain.ErrRefreshRejected
	}
	if !rotated {
		// Lost a race with a concurrent refresh or a logout; the presented
		// token no longer matches the stored value.
		s.logger.Warn("refresh token rotated concurrently", zap.Int64("user_id", user.ID))
		return nil, domain.ErrRefreshRejected
	}

	return pair, nil
}

func (s *AuthService) issuePair(user *domain.User) (*ports.TokenPair, string, error) {
	payload := ports.TokenPayload{
		SubjectID: user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}

	accessToken, err := s.codec.Sign(payload, ports.ScopeAccess)
	if err != nil {
		return nil, "", err
	}

	refreshToken, err := s.codec.Sign(payload, ports.ScopeRefresh)
	if err != nil {
		return nil, "", err
	}

	pair := &ports.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	return pair, hashToken(refreshToken), nil
}

// hashToken keeps raw refresh tokens out of the store; matching is exact
// string equality of the presented token via equality of its digest.
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
