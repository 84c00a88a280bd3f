// Package model 定义护士排班引擎的核心数据模型
package model

import (
	"time"
)

// ShiftType 班次类型
type ShiftType string

const (
	ShiftDay   ShiftType = "DAY"   // 白班
	ShiftNight ShiftType = "NIGHT" // 夜班
	ShiftAny   ShiftType = "ANY"   // 任意班次（仅用于偏好）
)

// DateLayout 日期格式
const DateLayout = "2006-01-02"

// ParseDate 解析 YYYY-MM-DD 格式的日期
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// PreviousDate 获取前一天日期
func PreviousDate(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}

// NextDate 获取后一天日期
func NextDate(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(DateLayout)
}

// IsWeekend 检查日期是否为周末
func IsWeekend(date string) bool {
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CountDays 计算日期范围的天数（含首尾）
func CountDays(startDate, endDate string) int {
	start, err1 := ParseDate(startDate)
	end, err2 := ParseDate(endDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DateRange 日期范围
type DateRange struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

// Valid 检查日期范围是否合法
func (r DateRange) Valid() bool {
	start, err1 := ParseDate(r.StartDate)
	end, err2 := ParseDate(r.EndDate)
	if err1 != nil || err2 != nil {
		return false
	}
	return !end.Before(start)
}
