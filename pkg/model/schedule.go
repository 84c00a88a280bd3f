// Package model 定义护士排班引擎的核心数据模型
package model

import (
	"time"

	"github.com/google/uuid"
)

// CoverageTotals 覆盖汇总指标
type CoverageTotals struct {
	TotalRequired int     `json:"total_required"` // 需求总人次
	TotalFilled   int     `json:"total_filled"`   // 已排总人次
	CoverageRate  float64 `json:"coverage_rate"`  // 覆盖率 [0,1]
}

// ScheduleStatistics 排班统计
type ScheduleStatistics struct {
	TotalAssignments       int                `json:"total_assignments"`
	NurseWorkloads         map[string]int     `json:"nurse_workloads"`         // 护士 -> 班次数
	PreferenceSatisfaction map[string]float64 `json:"preference_satisfaction"` // 护士 -> 偏好满足率
	CoverageMetrics        CoverageTotals     `json:"coverage_metrics"`
}

// GeneratedSchedule 生成的排班方案
// Violations 为软约束违反的可读描述，不影响方案本身的有效性
type GeneratedSchedule struct {
	ID                uuid.UUID           `json:"id"`
	Assignments       []Assignment        `json:"assignments"`
	OptimizationScore float64             `json:"optimization_score"`
	CoverageScore     float64             `json:"coverage_score"`
	PreferenceScore   float64             `json:"preference_score"`
	FairnessScore     float64             `json:"fairness_score"`
	SeniorityScore    float64             `json:"seniority_score"`
	Violations        []string            `json:"violations"`
	Statistics        *ScheduleStatistics `json:"statistics"`
	GeneratedAt       time.Time           `json:"generated_at"`
}
