package ports

import (
	"context"

	"github.com/ken122189/backend-P7/internal/core/domain"
)

type PositionRepository interface {
	Save(ctx context.Context, position *domain.Position) error
	GetByID(ctx context.Context, id int64) (*domain.Position, error)
	GetAll(ctx context.Context) ([]*domain.Position, error)
	Update(ctx context.Context, id int64, code, name *string) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type CreatePositionInput struct {
	Code   string
	Name   string
	UserID int64
}

type UpdatePositionInput struct {
	Code *string
	Name *string
}

type PositionService interface {
	Create(ctx context.Context, input CreatePositionInput) (*domain.Position, error)
	GetByID(ctx context.Context, id int64) (*domain.Position, error)
	GetAll(ctx context.Context) ([]*domain.Position, error)
	Update(ctx context.Context, id int64, input UpdatePositionInput) (*domain.Position, error)
	Delete(ctx context.Context, id int64) error
}
