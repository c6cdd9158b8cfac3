package repository

import "database/sql"

// PostgresStore 组合三个 Postgres repository
type PostgresStore struct {
	*PostgresSoldiersRepository
	*PostgresReportTypesRepository
	*PostgresReportHistoryRepository
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		PostgresSoldiersRepository:      NewPostgresSoldiersRepository(db),
		PostgresReportTypesRepository:   NewPostgresReportTypesRepository(db),
		PostgresReportHistoryRepository: NewPostgresReportHistoryRepository(db),
	}
}

var _ Store = (*PostgresStore)(nil)
