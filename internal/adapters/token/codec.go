// Package token implements the signed-token codec used for both access and
// refresh credentials. The two kinds share one claim shape and are told apart
// only by which secret verifies them, so the codec refuses configurations
// where the secrets could collide.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ken122189/backend-P7/internal/core/domain"
	"github.com/ken122189/backend-P7/internal/core/ports"
)

type Config struct {
	AccessSecret  []byte
	AccessTTL     time.Duration
	RefreshSecret []byte
	RefreshTTL    time.Duration
}

type Codec struct {
	config Config
}

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// NewCodec fails closed: missing secrets or non-positive expiries are
// configuration errors, never silently defaulted.
func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.AccessSecret) == 0 {
		return nil, errors.New("access token secret is required")
	}
	if len(cfg.RefreshSecret) == 0 {
		return nil, errors.New("refresh token secret is required")
	}
	if string(cfg.AccessSecret) == string(cfg.RefreshSecret) {
		// Scope is distinguished solely by which secret verifies, so equal
		// secrets would make a refresh token pass as an access token.
		return nil, errors.New("access and refresh token secrets must differ")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token expiries must be positive")
	}
	return &Codec{config: cfg}, nil
}

func (c *Codec) Sign(payload ports.TokenPayload, scope ports.TokenScope) (string, error) {
	secret, ttl, err := c.scopeConfig(scope)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := sessionClaims{
		Username: payload.Username,
		Role:     payload.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(payload.SubjectID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (c *Codec) Verify(tokenString string, scope ports.TokenScope) (*ports.TokenPayload, error) {
	secret, _, err := c.scopeConfig(scope)
	if err != nil {
		return nil, err
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenMalformed
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenMalformed
	}

	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	return &ports.TokenPayload{
		SubjectID: subjectID,
		Username:  claims.Username,
		Role:      claims.Role,
	}, nil
}

func (c *Codec) scopeConfig(scope ports.TokenScope) ([]byte, time.Duration, error) {
	switch scope {
	case ports.ScopeAccess:
		return c.config.AccessSecret, c.config.AccessTTL, nil
	case ports.ScopeRefresh:
		return c.config.RefreshSecret, c.config.RefreshTTL, nil
	default:
		return nil, 0, fmt.Errorf("unknown token scope %q", scope)
	}
}
