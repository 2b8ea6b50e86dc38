package ports

import (
	"context"

	"github.com/ken122189/backend-P7/internal/core/domain"
)

// UserRepository is the credential store. Lookups return (nil, nil) when no
// row matches.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) (bool, error)

	// GetByRefreshToken looks an account up by the stored refresh-token hash.
	GetByRefreshToken(ctx context.Context, tokenHash string) (*domain.User, error)
	// SetRefreshToken overwrites the stored refresh-token hash; nil clears it.
	SetRefreshToken(ctx context.Context, userID int64, tokenHash *string) error
	// RotateRefreshToken atomically replaces oldHash with newHash and reports
	// whether the swap happened. A false result means the stored value no
	// longer equals oldHash, i.e. another caller rotated or cleared it first.
	RotateRefreshToken(ctx context.Context, userID int64, oldHash, newHash string) (bool, error)
}

type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *string
}

type UserService interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
