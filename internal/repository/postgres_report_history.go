package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"holiday-reportbot/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// PostgresReportHistoryRepository report_history 表
type PostgresReportHistoryRepository struct {
	db *sql.DB
}

func NewPostgresReportHistoryRepository(db *sql.DB) *PostgresReportHistoryRepository {
	return &PostgresReportHistoryRepository{db: db}
}

var _ ReportHistoryRepository = (*PostgresReportHistoryRepository)(nil)

// UpsertReport 先锁住 (soldier, report_type) 的既有记录，存在就覆盖，否则插入
func (r *PostgresReportHistoryRepository) UpsertReport(ctx context.Context, h *domain.ReportHistory) error {
	if h == nil || h.SoldierPK == 0 || !h.ReportTypeID.Valid() {
		return fmt.Errorf("soldier and a valid report_type are required")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM report_history WHERE soldier_id = $1 AND report_type_id = $2 FOR UPDATE`,
		h.SoldierPK, int(h.ReportTypeID),
	).Scan(&id)

	switch {
	case err == nil:
		_, err = tx.ExecContext(ctx, `
			UPDATE report_history
			SET report_date = $2,
				report_time = $3,
				location = $4,
				location_after_ten = $5,
				body_temperature = $6,
				symptom = $7
			WHERE id = $1
		`,
			id,
			h.ReportDate.Format(dateLayout),
			h.ReportTime.Format(timeLayout),
			nullString(h.Location),
			nullString(h.LocationAfterTen),
			nullString(h.BodyTemperature),
			nullString(h.Symptom),
		)
		if err != nil {
			return fmt.Errorf("failed to update report history: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		err = tx.QueryRowContext(ctx, `
			INSERT INTO report_history (
				report_date, report_time, soldier_id, report_type_id,
				location, location_after_ten, body_temperature, symptom
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (soldier_id, report_type_id) DO UPDATE
			SET report_date = EXCLUDED.report_date,
				report_time = EXCLUDED.report_time,
				location = EXCLUDED.location,
				location_after_ten = EXCLUDED.location_after_ten,
				body_temperature = EXCLUDED.body_temperature,
				symptom = EXCLUDED.symptom
			RETURNING id
		`,
			h.ReportDate.Format(dateLayout),
			h.ReportTime.Format(timeLayout),
			h.SoldierPK,
			int(h.ReportTypeID),
			nullString(h.Location),
			nullString(h.LocationAfterTen),
			nullString(h.BodyTemperature),
			nullString(h.Symptom),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert report history: %w", err)
		}
	default:
		return fmt.Errorf("failed to lock report history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report history: %w", err)
	}
	h.ID = id
	return nil
}

func (r *PostgresReportHistoryRepository) ListReportEntries(ctx context.Context, date time.Time, reportTypeID domain.ReportTypeID, classNumber int) ([]domain.ReportEntry, error) {
	query := `
		SELECT
			s.id,
			s.class_number,
			s.name,
			s.soldier_id,
			s.phone,
			h.id,
			h.report_date,
			h.report_time::text,
			h.report_type_id,
			COALESCE(h.location, ''),
			COALESCE(h.location_after_ten, ''),
			COALESCE(h.body_temperature, ''),
			COALESCE(h.symptom, '')
		FROM report_history h
		JOIN soldier s ON s.id = h.soldier_id
		WHERE h.report_date = $1
		  AND h.report_type_id = $2
		  AND s.class_number = $3
		ORDER BY s.soldier_id
	`
	rows, err := r.db.QueryContext(ctx, query, date.Format(dateLayout), int(reportTypeID), classNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list report entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.ReportEntry, 0)
	for rows.Next() {
		var (
			e          domain.ReportEntry
			reportTime string
		)
		err := rows.Scan(
			&e.Soldier.ID,
			&e.Soldier.ClassNumber,
			&e.Soldier.Name,
			&e.Soldier.SoldierID,
			&e.Soldier.Phone,
			&e.History.ID,
			&e.History.ReportDate,
			&reportTime,
			&e.History.ReportTypeID,
			&e.History.Location,
			&e.History.LocationAfterTen,
			&e.History.BodyTemperature,
			&e.History.Symptom,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report entry: %w", err)
		}
		e.History.SoldierPK = e.Soldier.ID
		e.History.ReportTime = combineDateTime(e.History.ReportDate, reportTime)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report entries: %w", err)
	}
	return entries, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// combineDateTime report_date + report_time（TIME 列的文字形式）
func combineDateTime(date time.Time, clock string) time.Time {
	t, err := time.Parse(timeLayout, clock)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, date.Location())
}
