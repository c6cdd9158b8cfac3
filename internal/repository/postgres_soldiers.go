package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"holiday-reportbot/internal/domain"
)

// PostgresSoldiersRepository soldier 表
type PostgresSoldiersRepository struct {
	db *sql.DB
}

func NewPostgresSoldiersRepository(db *sql.DB) *PostgresSoldiersRepository {
	return &PostgresSoldiersRepository{db: db}
}

var _ SoldiersRepository = (*PostgresSoldiersRepository)(nil)

func (r *PostgresSoldiersRepository) GetBySoldierID(ctx context.Context, soldierID string) (*domain.Soldier, error) {
	if soldierID == "" {
		return nil, fmt.Errorf("soldier_id is required")
	}

	query := `
		SELECT id, class_number, name, soldier_id, phone
		FROM soldier
		WHERE soldier_id = $1
	`
	var s domain.Soldier
	err := r.db.QueryRowContext(ctx, query, soldierID).Scan(
		&s.ID,
		&s.ClassNumber,
		&s.Name,
		&s.SoldierID,
		&s.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get soldier: %w", err)
	}
	return &s, nil
}
