package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"holiday-reportbot/internal/domain"
)

// PostgresReportTypesRepository report_type 表
type PostgresReportTypesRepository struct {
	db *sql.DB
}

func NewPostgresReportTypesRepository(db *sql.DB) *PostgresReportTypesRepository {
	return &PostgresReportTypesRepository{db: db}
}

var _ ReportTypesRepository = (*PostgresReportTypesRepository)(nil)

func (r *PostgresReportTypesRepository) GetReportType(ctx context.Context, id domain.ReportTypeID) (*domain.ReportType, error) {
	query := `
		SELECT id, type_name, report_time_period
		FROM report_type
		WHERE id = $1
	`
	var rt domain.ReportType
	err := r.db.QueryRowContext(ctx, query, int(id)).Scan(&rt.ID, &rt.TypeName, &rt.TimePeriod)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report type: %w", err)
	}
	return &rt, nil
}

func (r *PostgresReportTypesRepository) ListReportTypes(ctx context.Context) ([]domain.ReportType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type_name, report_time_period FROM report_type ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list report types: %w", err)
	}
	defer rows.Close()

	types := make([]domain.ReportType, 0, len(domain.DefaultReportTypes))
	for rows.Next() {
		var rt domain.ReportType
		if err := rows.Scan(&rt.ID, &rt.TypeName, &rt.TimePeriod); err != nil {
			return nil, fmt.Errorf("failed to scan report type: %w", err)
		}
		types = append(types, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report types: %w", err)
	}
	return types, nil
}
