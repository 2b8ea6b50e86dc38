package ports

import "context"

// TokenScope selects which signing secret and expiry a token is bound to.
type TokenScope string

const (
	ScopeAccess  TokenScope = "access"
	ScopeRefresh TokenScope = "refresh"
)

// TokenPayload is the claim set embedded in both token kinds. The shape is
// identical for access and refresh tokens; the scope is determined entirely
// by which secret signed the token.
type TokenPayload struct {
	SubjectID int64
	Username  string
	Role      string
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Identity is attached to the request context by the access-token guard.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenCodec signs and verifies time-bounded tokens.
type TokenCodec interface {
	Sign(payload TokenPayload, scope TokenScope) (string, error)
	// Verify returns domain.ErrTokenExpired when the token is past its
	// embedded expiry and domain.ErrTokenMalformed for anything else that
	// is not a valid token for the given scope.
	Verify(token string, scope TokenScope) (*TokenPayload, error)
}

// PasswordHasher is a one-way salted hash of user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID int64) error
}
