package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"holiday-reportbot/internal/domain"
)

type historyKey struct {
	soldierPK    int64
	reportTypeID domain.ReportTypeID
}

// MemoryStore DB 未就绪时的内存实现（本地联调与测试）
// - report_type 预置五种
// - soldier 需通过 AddSoldier 写入
// - report_history 与 Postgres 一致：每个 (soldier, type) 一行
type MemoryStore struct {
	mu sync.RWMutex

	soldiers    map[int64]domain.Soldier
	reportTypes map[domain.ReportTypeID]domain.ReportType
	history     map[historyKey]domain.ReportHistory

	nextSoldierID int64
	nextHistoryID int64
}

func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{
		soldiers:    map[int64]domain.Soldier{},
		reportTypes: map[domain.ReportTypeID]domain.ReportType{},
		history:     map[historyKey]domain.ReportHistory{},
	}
	for _, rt := range domain.DefaultReportTypes {
		m.reportTypes[rt.ID] = rt
	}
	return m
}

var _ Store = (*MemoryStore)(nil)

// AddSoldier 写入回报人员，返回分配的主键
func (m *MemoryStore) AddSoldier(s domain.Soldier) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.soldiers {
		if existing.SoldierID == s.SoldierID {
			return 0, fmt.Errorf("soldier_id %s already exists", s.SoldierID)
		}
		if existing.Phone == s.Phone {
			return 0, fmt.Errorf("phone %s already exists", s.Phone)
		}
	}
	m.nextSoldierID++
	s.ID = m.nextSoldierID
	m.soldiers[s.ID] = s
	return s.ID, nil
}

// HistoryCount 当前 report_history 行数
func (m *MemoryStore) HistoryCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.history)
}

func (m *MemoryStore) GetBySoldierID(_ context.Context, soldierID string) (*domain.Soldier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.soldiers {
		if s.SoldierID == soldierID {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) GetReportType(_ context.Context, id domain.ReportTypeID) (*domain.ReportType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rt, ok := m.reportTypes[id]
	if !ok {
		return nil, nil
	}
	return &rt, nil
}

func (m *MemoryStore) ListReportTypes(_ context.Context) ([]domain.ReportType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.ReportType, 0, len(m.reportTypes))
	for _, rt := range m.reportTypes {
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) UpsertReport(_ context.Context, h *domain.ReportHistory) error {
	if h == nil || h.SoldierPK == 0 || !h.ReportTypeID.Valid() {
		return fmt.Errorf("soldier and a valid report_type are required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.soldiers[h.SoldierPK]; !ok {
		return fmt.Errorf("failed to upsert report history: soldier %d does not exist", h.SoldierPK)
	}

	key := historyKey{soldierPK: h.SoldierPK, reportTypeID: h.ReportTypeID}
	row := *h
	if existing, ok := m.history[key]; ok {
		row.ID = existing.ID
	} else {
		m.nextHistoryID++
		row.ID = m.nextHistoryID
	}
	m.history[key] = row
	h.ID = row.ID
	return nil
}

func (m *MemoryStore) ListReportEntries(_ context.Context, date time.Time, reportTypeID domain.ReportTypeID, classNumber int) ([]domain.ReportEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	day := date.Format(dateLayout)
	entries := make([]domain.ReportEntry, 0)
	for key, h := range m.history {
		if key.reportTypeID != reportTypeID || h.ReportDate.Format(dateLayout) != day {
			continue
		}
		s := m.soldiers[key.soldierPK]
		if s.ClassNumber != classNumber {
			continue
		}
		entries = append(entries, domain.ReportEntry{Soldier: s, History: h})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Soldier.SoldierID < entries[j].Soldier.SoldierID
	})
	return entries, nil
}
