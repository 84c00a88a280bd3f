// Package model 定义护士排班引擎的核心数据模型
package model

// RequiredCoverage 各班次的人数需求
type RequiredCoverage struct {
	Day          int `json:"day"`           // 工作日白班人数
	Night        int `json:"night"`         // 工作日夜班人数
	WeekendDay   int `json:"weekend_day"`   // 周末白班人数
	WeekendNight int `json:"weekend_night"` // 周末夜班人数
}

// ForDate 返回指定日期和班次类型的人数需求
func (c RequiredCoverage) ForDate(date string, shiftType ShiftType) int {
	weekend := IsWeekend(date)
	if shiftType == ShiftNight {
		if weekend {
			return c.WeekendNight
		}
		return c.Night
	}
	if weekend {
		return c.WeekendDay
	}
	return c.Day
}

// SchedulingRules 排班规则
type SchedulingRules struct {
	// 班次限制
	MinShiftsPerNurse    int `json:"min_shifts_per_nurse"`    // 每位护士最少班次数（软约束，仅报告）
	MaxShiftsPerNurse    int `json:"max_shifts_per_nurse"`    // 每位护士最多班次数
	MinConsecutiveDays   int `json:"min_consecutive_days"`    // 最少连续工作天数
	MaxConsecutiveDays   int `json:"max_consecutive_days"`    // 最多连续工作天数
	MinRestBetweenShifts int `json:"min_rest_between_shifts"` // 班次间最小休息小时数

	// 休假规则
	MaxPTOPerNurse        int      `json:"max_pto_per_nurse"`         // 每位护士最多 PTO 天数
	MaxNoSchedulePerNurse int      `json:"max_no_schedule_per_nurse"` // 每位护士最多免排天数
	MaxTotalTimeOff       int      `json:"max_total_time_off"`        // PTO + 免排总天数上限
	BlackoutDates         []string `json:"blackout_dates,omitempty"`  // 禁止休假日期

	// 覆盖需求
	RequiredCoverage RequiredCoverage `json:"required_coverage"`

	// 周末规则
	MaxWeekendsPerNurse        int  `json:"max_weekends_per_nurse"`       // 每位护士最多工作周末数
	RequireAlternatingWeekends bool `json:"require_alternating_weekends"` // 是否要求隔周轮换周末

	// 分配规则
	RequireEvenDistribution bool    `json:"require_even_distribution"` // 是否尽量均匀分配班次
	EnableSeniorityBias     bool    `json:"enable_seniority_bias"`     // 是否启用资历偏置
	SeniorityBiasWeight     float64 `json:"seniority_bias_weight"`     // 资历偏置权重 [0,1]（仅启用时生效）
}

// DefaultRules 返回默认排班规则
func DefaultRules() *SchedulingRules {
	return &SchedulingRules{
		MinShiftsPerNurse:    3,
		MaxShiftsPerNurse:    12,
		MinConsecutiveDays:   1,
		MaxConsecutiveDays:   5,
		MinRestBetweenShifts: 8,

		MaxPTOPerNurse:        3,
		MaxNoSchedulePerNurse: 2,
		MaxTotalTimeOff:       4,
		BlackoutDates:         []string{},

		RequiredCoverage: RequiredCoverage{
			Day:          3,
			Night:        2,
			WeekendDay:   2,
			WeekendNight: 2,
		},

		MaxWeekendsPerNurse:        2,
		RequireAlternatingWeekends: false,

		RequireEvenDistribution: true,
		EnableSeniorityBias:     false,
		SeniorityBiasWeight:     0.3,
	}
}
