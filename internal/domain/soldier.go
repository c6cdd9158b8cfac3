package domain

// Soldier 回报人员（由外部建档流程写入，本服务只读）
type Soldier struct {
	ID          int64  `json:"id"`           // 主键
	ClassNumber int    `json:"class_number"` // 班号，汇总回报按班分组
	Name        string `json:"name"`
	SoldierID   string `json:"soldier_id"` // 标准学号：前缀 + 三码（如 "12" + "001"）
	Phone       string `json:"phone"`
}

// ShortID 去掉标准前缀后的三码学号
func (s Soldier) ShortID(prefix string) string {
	if len(s.SoldierID) > len(prefix) && s.SoldierID[:len(prefix)] == prefix {
		return s.SoldierID[len(prefix):]
	}
	return s.SoldierID
}
