package report

import (
	"time"

	"holiday-reportbot/internal/domain"
)

// clockValue 把时刻转成 HHMMSS 整数，窗口判断都基于它
func clockValue(t time.Time) int {
	return t.Hour()*10000 + t.Minute()*100 + t.Second()
}

// IsMorningWindow 上午回报时段（10:00:00 与 13:00:00 都不含）
func IsMorningWindow(t time.Time) bool {
	v := clockValue(t)
	return 100000 < v && v < 130000
}

// IsNightWindow 晚上回报时段（18:00:00 与 21:00:00 都不含）
func IsNightWindow(t time.Time) bool {
	v := clockValue(t)
	return 180000 < v && v < 210000
}

// NormalReportType 一般回报在当前时刻对应的类型；不在任何时段返回 ReportTypeNone
func NormalReportType(t time.Time) domain.ReportTypeID {
	switch {
	case IsMorningWindow(t):
		return domain.ReportTypeMorning
	case IsNightWindow(t):
		return domain.ReportTypeNight
	default:
		return domain.ReportTypeNone
	}
}

// TemperatureReportType 体温回报不受时段限制，只按时刻归类。
// 08:00:00 及之前归为早上体温。
func TemperatureReportType(t time.Time) domain.ReportTypeID {
	v := clockValue(t)
	switch {
	case 80000 < v && v < 120000:
		return domain.ReportTypeMorningTemperature
	case 120000 <= v && v < 160000:
		return domain.ReportTypeNoonTemperature
	case 160000 <= v && v < 240000:
		return domain.ReportTypeNightTemperature
	default:
		return domain.ReportTypeMorningTemperature
	}
}
