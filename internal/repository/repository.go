package repository

import (
	"context"
	"time"

	"holiday-reportbot/internal/domain"
)

// SoldiersRepository 回报人员（只读）
type SoldiersRepository interface {
	// GetBySoldierID 按标准学号查询；不存在返回 nil, nil
	GetBySoldierID(ctx context.Context, soldierID string) (*domain.Soldier, error)
}

// ReportTypesRepository 回报类型（固定种子数据）
type ReportTypesRepository interface {
	// GetReportType 不存在返回 nil, nil
	GetReportType(ctx context.Context, id domain.ReportTypeID) (*domain.ReportType, error)
	ListReportTypes(ctx context.Context) ([]domain.ReportType, error)
}

// ReportHistoryRepository 回报记录
type ReportHistoryRepository interface {
	// UpsertReport 以 (soldier, report_type) 为键覆盖写入；原本没有就插入。
	// 单一事务，失败时回滚并返回错误。
	UpsertReport(ctx context.Context, h *domain.ReportHistory) error

	// ListReportEntries 某日某类型某班的所有回报，按学号排序
	ListReportEntries(ctx context.Context, date time.Time, reportTypeID domain.ReportTypeID, classNumber int) ([]domain.ReportEntry, error)
}

// Store 服务层需要的全部数据访问
type Store interface {
	SoldiersRepository
	ReportTypesRepository
	ReportHistoryRepository
}
