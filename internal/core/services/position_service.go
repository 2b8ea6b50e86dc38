package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ken122189/backend-P7/internal/core/domain"
	"github.com/ken122189/backend-P7/internal/core/ports"
)

type positionService struct {
	repo ports.PositionRepository
}

func NewPositionService(repo ports.PositionRepository) ports.PositionService {
	return &positionService{
		repo: repo,
	}
}

func (s *positionService) Create(ctx context.Context, input ports.CreatePositionInput) (*domain.Position, error) {
	if input.Code == "" {
		return nil, errors.New("position code is required")
	}
	if input.Name == "" {
		return nil, errors.New("position name is required")
	}

	position := &domain.Position{
		Code:   input.Code,
		Name:   input.Name,
		UserID: input.UserID,
	}
	if err := s.repo.Save(ctx, position); err != nil {
		return nil, fmt.Errorf("failed to save position: %w", err)
	}
	return position, nil
}

func (s *positionService) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	position, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	if position == nil {
		return nil, domain.ErrPositionNotFound
	}
	return position, nil
}

func (s *positionService) GetAll(ctx context.Context) ([]*domain.Position, error) {
	positions, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return positions, nil
}

func (s *positionService) Update(ctx context.Context, id int64, input ports.UpdatePositionInput) (*domain.Position, error) {
	if input.Code != nil || input.Name != nil {
		if err := s.repo.Update(ctx, id, input.Code, input.Name); err != nil {
			return nil, fmt.Errorf("failed to update position: %w", err)
		}
	}
	return s.GetByID(ctx, id)
}

func (s *positionService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if !deleted {
		return domain.ErrPositionNotFound
	}
	return nil
}
