package report

import (
	"errors"
	"strings"

	"holiday-reportbot/internal/domain"
)

var (
	// ErrWrongUserName 显示名称前三个字不是数字
	ErrWrongUserName = errors.New("display name must start with a 3-digit soldier code")
	// ErrContentMismatch 行数与当前回报格式不符
	ErrContentMismatch = errors.New("report content does not match the expected format")
)

// Command 第一行指令
type Command int

const (
	CommandUnknown Command = iota
	CommandNormal
	CommandTemperature
)

const soldierCodeLen = 3

// SoldierCode 从显示名称取出三码学号，如 "001-王大明" -> "001"
func SoldierCode(displayName string) (string, error) {
	runes := []rune(displayName)
	if len(runes) < soldierCodeLen {
		return "", ErrWrongUserName
	}
	for _, r := range runes[:soldierCodeLen] {
		if r < '0' || r > '9' {
			return "", ErrWrongUserName
		}
	}
	return string(runes[:soldierCodeLen]), nil
}

// StandardSoldierID soldier.soldier_id 的存储格式
func StandardSoldierID(prefix, code string) string {
	return prefix + code
}

// SplitParts 按换行拆分，保留空行
func SplitParts(text string) []string {
	return strings.Split(text, "\n")
}

// ClassifyCommand 判断第一行是哪种回报
func ClassifyCommand(first string) Command {
	switch first {
	case "回報", "回報:", "回報：":
		return CommandNormal
	case "體溫回報":
		return CommandTemperature
	default:
		return CommandUnknown
	}
}

// CheckPartCount 一般回报的行数检查：上午 2 行（指令+地点），晚上 3 行（指令+地点+2200后地点）
func CheckPartCount(reportType domain.ReportTypeID, parts []string) error {
	switch reportType {
	case domain.ReportTypeMorning:
		if len(parts) == 2 {
			return nil
		}
	case domain.ReportTypeNight:
		if len(parts) == 3 {
			return nil
		}
	}
	return ErrContentMismatch
}
