package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ken122189/backend-P7/internal/core/domain"
	"github.com/ken122189/backend-P7/internal/core/ports"
)

type PositionRepository struct {
	db *sql.DB
}

func NewPositionRepository(db *sql.DB) ports.PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) Save(ctx context.Context, position *domain.Position) error {
	query := `
		INSERT INTO positions (position_code, position_name, user_id)
		VALUES ($1, $2, $3)
		RETURNING position_id, created_at
	`
	return r.db.QueryRowContext(ctx, query, position.Code, position.Name, position.UserID).
		Scan(&position.ID, &position.CreatedAt)
}

func (r *PositionRepository) GetByID(ctx context.Context, id int64) (*domain.Position, error) {
	query := `
		SELECT position_id, position_code, position_name, user_id, created_at
		FROM positions
		WHERE position_id = $1
	`
	position := &domain.Position{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&position.ID,
		&position.Code,
		&position.Name,
		&position.UserID,
		&position.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return position, nil
}

func (r *PositionRepository) GetAll(ctx context.Context) ([]*domain.Position, error) {
	query := `
		SELECT position_id, position_code, position_name, user_id, created_at
		FROM positions
		ORDER BY position_id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []*domain.Position
	for rows.Next() {
		position := &domain.Position{}
		if err := rows.Scan(&position.ID, &position.Code, &position.Name, &position.UserID, &position.CreatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}
	return positions, rows.Err()
}

func (r *PositionRepository) Update(ctx context.Context, id int64, code, name *string) error {
	var fields []string
	var values []any

	if code != nil {
		values = append(values, *code)
		fields = append(fields, fmt.Sprintf("position_code = $%d", len(values)))
	}
	if name != nil {
		values = append(values, *name)
		fields = append(fields, fmt.Sprintf("position_name = $%d", len(values)))
	}
	if len(fields) == 0 {
		return nil
	}

	values = append(values, id)
	query := fmt.Sprintf("UPDATE positions SET %s WHERE position_id = $%d", strings.Join(fields, ", "), len(values))
	_, err := r.db.ExecContext(ctx, query, values...)
	return err
}

func (r *PositionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM positions WHERE position_id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
