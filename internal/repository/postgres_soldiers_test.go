package repository

import (
	"context"
	"errors"
	"testing"

	"holiday-reportbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBySoldierID_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresSoldiersRepository(db)

	mock.ExpectQuery(`FROM soldier`).
		WithArgs("12001").
		WillReturnRows(sqlmock.NewRows([]string{"id", "class_number", "name", "soldier_id", "phone"}).
			AddRow(int64(1), int64(3), "王大明", "12001", "0912000001"))

	s, err := repo.GetBySoldierID(context.Background(), "12001")

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, int64(1), s.ID)
	assert.Equal(t, 3, s.ClassNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySoldierID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresSoldiersRepository(db)

	mock.ExpectQuery(`FROM soldier`).
		WithArgs("12999").
		WillReturnRows(sqlmock.NewRows([]string{"id", "class_number", "name", "soldier_id", "phone"}))

	s, err := repo.GetBySoldierID(context.Background(), "12999")

	require.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySoldierID_DBError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresSoldiersRepository(db)

	mock.ExpectQuery(`FROM soldier`).WillReturnError(errors.New("server closed the connection"))

	_, err := repo.GetBySoldierID(context.Background(), "12001")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get soldier")
}

func TestGetReportType(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresReportTypesRepository(db)

	mock.ExpectQuery(`FROM report_type`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type_name", "report_time_period"}).
			AddRow(int64(4), "中午體溫回報", "1200-1600"))

	rt, err := repo.GetReportType(context.Background(), domain.ReportTypeNoonTemperature)

	require.NoError(t, err)
	require.NotNil(t, rt)
	assert.Equal(t, domain.ReportTypeNoonTemperature, rt.ID)
	assert.Equal(t, "1200-1600", rt.TimePeriod)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReportTypes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgresReportTypesRepository(db)

	rows := sqlmock.NewRows([]string{"id", "type_name", "report_time_period"})
	for _, rt := range domain.DefaultReportTypes {
		rows.AddRow(int64(rt.ID), rt.TypeName, rt.TimePeriod)
	}
	mock.ExpectQuery(`FROM report_type`).WillReturnRows(rows)

	types, err := repo.ListReportTypes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultReportTypes, types)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS soldier`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS report_type`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS report_history`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
	for _, rt := range domain.DefaultReportTypes {
		mock.ExpectExec(`INSERT INTO report_type`).
			WithArgs(int(rt.ID), rt.TypeName, rt.TimePeriod).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
