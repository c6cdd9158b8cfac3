package domain

// ReportTypeID report_type 表主键（固定种子数据）
type ReportTypeID int

const (
	ReportTypeNone               ReportTypeID = 0
	ReportTypeMorning            ReportTypeID = 1
	ReportTypeNight              ReportTypeID = 2
	ReportTypeMorningTemperature ReportTypeID = 3
	ReportTypeNoonTemperature    ReportTypeID = 4
	ReportTypeNightTemperature   ReportTypeID = 5
)

// IsTemperature 是否为体温回报（三个时段之一）
func (id ReportTypeID) IsTemperature() bool {
	return id == ReportTypeMorningTemperature || id == ReportTypeNoonTemperature || id == ReportTypeNightTemperature
}

// Valid 是否为已知的五种回报类型
func (id ReportTypeID) Valid() bool {
	return id >= ReportTypeMorning && id <= ReportTypeNightTemperature
}

func (id ReportTypeID) String() string {
	switch id {
	case ReportTypeMorning:
		return "morning"
	case ReportTypeNight:
		return "night"
	case ReportTypeMorningTemperature:
		return "morning-temperature"
	case ReportTypeNoonTemperature:
		return "noon-temperature"
	case ReportTypeNightTemperature:
		return "night-temperature"
	default:
		return "none"
	}
}

// ReportType 回报类型
type ReportType struct {
	ID         ReportTypeID `json:"id"`
	TypeName   string       `json:"type_name"`
	TimePeriod string       `json:"report_time_period"` // 标题前缀，如 "1000-1300"
}

// DefaultReportTypes report_type 表的种子数据
var DefaultReportTypes = []ReportType{
	{ID: ReportTypeMorning, TypeName: "上午回報", TimePeriod: "1000-1300"},
	{ID: ReportTypeNight, TypeName: "晚上回報", TimePeriod: "1800-2100"},
	{ID: ReportTypeMorningTemperature, TypeName: "早上體溫回報", TimePeriod: "0800-1200"},
	{ID: ReportTypeNoonTemperature, TypeName: "中午體溫回報", TimePeriod: "1200-1600"},
	{ID: ReportTypeNightTemperature, TypeName: "晚上體溫回報", TimePeriod: "1600-2400"},
}
