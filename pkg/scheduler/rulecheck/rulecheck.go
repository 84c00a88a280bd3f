// Package rulecheck 提供护士排班偏好的规则校验
// 在偏好提交阶段提前发现与排班规则的冲突，避免进入生成流程后才失败
package rulecheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wardroster/wardroster/pkg/model"
)

// PreferenceType 单日偏好类型
type PreferenceType string

const (
	PreferenceWork       PreferenceType = "WORK"        // 愿意上班
	PreferencePTO        PreferenceType = "PTO"         // 带薪休假
	PreferenceNoSchedule PreferenceType = "NO_SCHEDULE" // 免排
)

// DayPreference 单日偏好
type DayPreference struct {
	Date      string          `json:"date"`
	Type      PreferenceType  `json:"type"`
	ShiftType model.ShiftType `json:"shift_type,omitempty"`
}

// Result 校验结果
// Errors 非空时偏好不可提交，Warnings 仅提示
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidatePreferences 按排班规则校验一组单日偏好
func ValidatePreferences(preferences []DayPreference, rules *model.SchedulingRules, startDate, endDate string) *Result {
	result := &Result{
		Errors:   make([]string, 0),
		Warnings: make([]string, 0),
	}

	var workDates, ptoDates, noScheduleDates []string
	for _, p := range preferences {
		switch p.Type {
		case PreferenceWork:
			workDates = append(workDates, p.Date)
		case PreferencePTO:
			ptoDates = append(ptoDates, p.Date)
		case PreferenceNoSchedule:
			noScheduleDates = append(noScheduleDates, p.Date)
		}
	}

	totalDays := model.CountDays(startDate, endDate)

	// 最少与最多班次
	if len(workDates) < rules.MinShiftsPerNurse {
		result.Errors = append(result.Errors,
			fmt.Sprintf("至少需要 %d 个可上班日，当前选择 %d 个", rules.MinShiftsPerNurse, len(workDates)))
	}
	if len(workDates) > rules.MaxShiftsPerNurse {
		result.Errors = append(result.Errors,
			fmt.Sprintf("最多允许 %d 个班次，当前选择 %d 个", rules.MaxShiftsPerNurse, len(workDates)))
	}

	// 休假上限
	if len(ptoDates) > rules.MaxPTOPerNurse {
		result.Errors = append(result.Errors,
			fmt.Sprintf("带薪休假最多 %d 天，当前选择 %d 天", rules.MaxPTOPerNurse, len(ptoDates)))
	}
	if len(noScheduleDates) > rules.MaxNoSchedulePerNurse {
		result.Errors = append(result.Errors,
			fmt.Sprintf("免排最多 %d 天，当前选择 %d 天", rules.MaxNoSchedulePerNurse, len(noScheduleDates)))
	}
	totalTimeOff := len(ptoDates) + len(noScheduleDates)
	if totalTimeOff > rules.MaxTotalTimeOff {
		result.Errors = append(result.Errors,
			fmt.Sprintf("休假总天数最多 %d 天，当前选择 %d 天", rules.MaxTotalTimeOff, totalTimeOff))
	}

	// 禁休日期上不允许任何形式的休假
	if len(rules.BlackoutDates) > 0 {
		blackout := make(map[string]bool, len(rules.BlackoutDates))
		for _, d := range rules.BlackoutDates {
			blackout[d] = true
		}
		var violated []string
		for _, d := range append(append([]string{}, ptoDates...), noScheduleDates...) {
			if blackout[d] {
				violated = append(violated, d)
			}
		}
		if len(violated) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("禁休日期不允许休假: %s", strings.Join(violated, ", ")))
		}
	}

	checkConsecutive(workDates, rules, result)

	// 周末上限，按两天折算一个周末估算
	weekendWorkDays := 0
	for _, d := range workDates {
		if model.IsWeekend(d) {
			weekendWorkDays++
		}
	}
	weekendCount := (weekendWorkDays + 1) / 2
	if weekendCount > rules.MaxWeekendsPerNurse {
		result.Errors = append(result.Errors,
			fmt.Sprintf("周末最多 %d 个，当前约 %d 个", rules.MaxWeekendsPerNurse, weekendCount))
	}

	// 可上班日贴着下限时给出灵活性提示
	if len(workDates) < rules.MinShiftsPerNurse+2 {
		result.Warnings = append(result.Warnings, "建议增加可上班日，提升排班灵活性")
	}

	// 未标记的天数过多时提示
	unassigned := totalDays - len(workDates) - len(ptoDates) - len(noScheduleDates)
	if totalDays > 0 && float64(unassigned) > float64(totalDays)*0.5 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("有 %d 天未标记偏好，建议补充", unassigned))
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// checkConsecutive 检查可上班日的连续性
// 超过最大连续天数为错误，短于最小连续天数仅提示
func checkConsecutive(workDates []string, rules *model.SchedulingRules, result *Result) {
	if len(workDates) == 0 {
		return
	}

	dates := make([]string, len(workDates))
	copy(dates, workDates)
	sort.Strings(dates)

	maxRun := 1
	run := 1
	shortStretch := false
	for i := 1; i < len(dates); i++ {
		if model.PreviousDate(dates[i]) == dates[i-1] {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			if run < rules.MinConsecutiveDays {
				shortStretch = true
			}
			run = 1
		}
	}

	if maxRun > rules.MaxConsecutiveDays {
		result.Errors = append(result.Errors,
			fmt.Sprintf("连续工作不能超过 %d 天", rules.MaxConsecutiveDays))
	}
	if shortStretch {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("建议每段连续工作至少 %d 天", rules.MinConsecutiveDays))
	}
}

// RequirementsSummary 生成规则的可读说明，供偏好填报界面展示
func RequirementsSummary(rules *model.SchedulingRules) []string {
	lines := []string{
		fmt.Sprintf("每周期工作 %d-%d 个班次", rules.MinShiftsPerNurse, rules.MaxShiftsPerNurse),
		fmt.Sprintf("最多连续工作 %d 天", rules.MaxConsecutiveDays),
		fmt.Sprintf("带薪休假最多 %d 天", rules.MaxPTOPerNurse),
		fmt.Sprintf("免排最多 %d 天", rules.MaxNoSchedulePerNurse),
		fmt.Sprintf("休假总天数最多 %d 天", rules.MaxTotalTimeOff),
	}
	if rules.MaxWeekendsPerNurse > 0 {
		lines = append(lines, fmt.Sprintf("周末最多 %d 个", rules.MaxWeekendsPerNurse))
	}
	if len(rules.BlackoutDates) > 0 {
		lines = append(lines, "禁休日期不允许休假")
	}
	if rules.RequireAlternatingWeekends {
		lines = append(lines, "周末需要轮换")
	}
	return lines
}
