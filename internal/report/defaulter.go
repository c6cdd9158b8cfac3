package report

import (
	"holiday-reportbot/internal/domain"
)

// DefaultSymptom 未填症状时的默认值
const DefaultSymptom = "無"

// Fields 写入 report_history 的可变字段
type Fields struct {
	Location         string
	LocationAfterTen string
	BodyTemperature  string
	Symptom          string
}

// fixedParts 每种回报在体温/症状之前的固定行数
func fixedParts(reportType domain.ReportTypeID) int {
	switch reportType {
	case domain.ReportTypeMorning:
		return 2
	case domain.ReportTypeNight:
		return 3
	default:
		return 1
	}
}

// BuildFields 由拆分后的消息补齐地点、体温与症状。
// 固定行之后：
//   - 无内容：随机体温，症状为默认值
//   - 一行：是数字则为体温，否则为症状并随机体温
//   - 两行：依次为体温、症状
func BuildFields(reportType domain.ReportTypeID, parts []string, gen *TemperatureGenerator) (Fields, error) {
	base := fixedParts(reportType)
	if len(parts) < base || len(parts) > base+2 {
		return Fields{}, ErrContentMismatch
	}

	f := Fields{Symptom: DefaultSymptom}
	switch reportType {
	case domain.ReportTypeMorning:
		f.Location = parts[1]
	case domain.ReportTypeNight:
		f.Location = parts[1]
		f.LocationAfterTen = parts[2]
	}

	switch len(parts) - base {
	case 0:
		f.BodyTemperature = gen.Normal()
	case 1:
		if IsTemperatureText(parts[base]) {
			f.BodyTemperature = parts[base]
		} else {
			f.BodyTemperature = gen.Normal()
			f.Symptom = parts[base]
		}
	case 2:
		f.BodyTemperature = parts[base]
		f.Symptom = parts[base+1]
	}
	return f, nil
}
