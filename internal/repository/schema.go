package repository

import (
	"context"
	"database/sql"
	"fmt"

	"holiday-reportbot/internal/domain"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS soldier (
		id SERIAL PRIMARY KEY,
		class_number INTEGER NOT NULL,
		name VARCHAR(10) NOT NULL,
		soldier_id VARCHAR(10) NOT NULL UNIQUE,
		phone VARCHAR(20) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS report_type (
		id INTEGER PRIMARY KEY,
		type_name VARCHAR(10) NOT NULL UNIQUE,
		report_time_period VARCHAR(10) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS report_history (
		id SERIAL PRIMARY KEY,
		report_date DATE NOT NULL,
		report_time TIME NOT NULL,
		soldier_id INTEGER NOT NULL REFERENCES soldier(id),
		report_type_id INTEGER NOT NULL REFERENCES report_type(id),
		location VARCHAR(200),
		location_after_ten VARCHAR(200),
		body_temperature VARCHAR(10),
		symptom VARCHAR(50),
		CONSTRAINT report_history_soldier_type_key UNIQUE (soldier_id, report_type_id)
	)`,
	`CREATE INDEX IF NOT EXISTS report_history_date_type_idx ON report_history (report_date, report_type_id)`,
}

// EnsureSchema 建表并写入 report_type 种子数据（可重复执行）
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	for _, rt := range domain.DefaultReportTypes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO report_type (id, type_name, report_time_period)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (id)
			 DO UPDATE SET type_name = EXCLUDED.type_name,
			              report_time_period = EXCLUDED.report_time_period`,
			int(rt.ID), rt.TypeName, rt.TimePeriod,
		)
		if err != nil {
			return fmt.Errorf("failed to seed report type %d: %w", rt.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}
	return nil
}
