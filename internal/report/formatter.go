package report

import (
	"fmt"
	"strings"
	"time"

	"holiday-reportbot/internal/domain"
)

// Style 汇总文本的排版
type Style int

const (
	StylePlain       Style = iota // 姓名/学号/手机/地点
	StyleNight                    // 另加 2200 后地点
	StyleTemperature              // 精简：学号姓名/体温/症状
	StyleGeneral                  // 地点 + 体温 + 症状
)

// StyleFor 每种回报类型回复时使用的排版
func StyleFor(reportType domain.ReportTypeID) Style {
	switch {
	case reportType == domain.ReportTypeNight:
		return StyleNight
	case reportType.IsTemperature():
		return StyleTemperature
	default:
		return StylePlain
	}
}

// ParseStyle 管理 API 的 style 参数；空字符串按回报类型决定
func ParseStyle(s string, reportType domain.ReportTypeID) (Style, error) {
	switch s {
	case "":
		return StyleFor(reportType), nil
	case "plain":
		return StylePlain, nil
	case "night":
		return StyleNight, nil
	case "temperature":
		return StyleTemperature, nil
	case "general":
		return StyleGeneral, nil
	default:
		return 0, fmt.Errorf("unknown summary style %q", s)
	}
}

// Formatter 把回报记录渲染成回复文本
type Formatter struct {
	SoldierIDPrefix string
}

// Render 标题 + 每人一段；没有记录时只有标题
func (f Formatter) Render(style Style, rt domain.ReportType, date time.Time, entries []domain.ReportEntry) string {
	var b strings.Builder
	if style == StyleTemperature {
		fmt.Fprintf(&b, "%s\t%s\t%s\n\n", date.Format("01/02"), rt.TimePeriod, rt.TypeName)
	} else {
		fmt.Fprintf(&b, "%s%s\n\n", rt.TimePeriod, rt.TypeName)
	}

	for _, e := range entries {
		s, h := e.Soldier, e.History
		switch style {
		case StyleTemperature:
			fmt.Fprintf(&b, "%s%s\n體溫：%s\n症狀：%s\n\n", s.ShortID(f.SoldierIDPrefix), s.Name, h.BodyTemperature, h.Symptom)
		case StyleNight:
			fmt.Fprintf(&b, "姓名：%s\n學號：%s\n手機：%s\n地點：%s\n2200後地點：%s\n\n",
				s.Name, s.SoldierID, s.Phone, h.Location, h.LocationAfterTen)
		case StyleGeneral:
			fmt.Fprintf(&b, "姓名：%s\n學號：%s\n手機：%s\n地點：%s\n體溫：%s\n症狀：%s\n\n",
				s.Name, s.SoldierID, s.Phone, h.Location, h.BodyTemperature, h.Symptom)
		default:
			fmt.Fprintf(&b, "姓名：%s\n學號：%s\n手機：%s\n地點：%s\n\n", s.Name, s.SoldierID, s.Phone, h.Location)
		}
	}
	return b.String()
}
