package domain

import "time"

// ReportHistory 回报记录
// 每个 (soldier_id, report_type_id) 只有一行，新回报覆盖旧回报（不保留历史日期）
type ReportHistory struct {
	ID               int64        `json:"id"`
	ReportDate       time.Time    `json:"report_date"` // 只取日期部分
	ReportTime       time.Time    `json:"report_time"` // 提交时刻
	SoldierPK        int64        `json:"soldier_id"`  // soldier.id（外键）
	ReportTypeID     ReportTypeID `json:"report_type_id"`
	Location         string       `json:"location"`           // 体温回报为空（NULL）
	LocationAfterTen string       `json:"location_after_ten"` // 仅晚上回报
	BodyTemperature  string       `json:"body_temperature"`   // 字符串存储，与旧表兼容
	Symptom          string       `json:"symptom"`
}

// ReportEntry 回报记录 + 回报人（汇总文本的输入）
type ReportEntry struct {
	Soldier Soldier       `json:"soldier"`
	History ReportHistory `json:"history"`
}
