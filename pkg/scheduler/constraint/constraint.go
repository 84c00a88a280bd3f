// Package constraint 定义约束接口和管理器
package constraint

import (
	"github.com/wardroster/wardroster/pkg/model"
)

// Type 约束类型标识
type Type string

const (
	// 硬约束类型
	TypeOneShiftPerDay     Type = "one_shift_per_day"
	TypeMaxShiftsPerBlock  Type = "max_shifts_per_block"
	TypeMaxConsecutiveDays Type = "max_consecutive_days"
	TypeBlockedDates       Type = "blocked_dates"

	// 软约束类型
	TypeMinShiftsPerNurse Type = "min_shifts_per_nurse"
	TypeCoverage          Type = "coverage"
)

// Category 约束类别
type Category string

const (
	CategoryHard Category = "hard" // 硬约束（必须满足）
	CategorySoft Category = "soft" // 软约束（尽量满足，违反时仅报告）
)

// Constraint 约束接口
type Constraint interface {
	// Name 返回约束名称
	Name() string

	// Type 返回约束类型
	Type() Type

	// Category 返回约束类别
	Category() Category

	// Weight 返回约束权重 (1-100)
	Weight() int

	// Evaluate 评估整个排班方案
	// 返回：是否满足、惩罚值、违反详情
	Evaluate(ctx *Context) (valid bool, penalty int, details []ViolationDetail)

	// EvaluateAssignment 评估在当前状态上新增一个分配
	// 返回：是否满足、惩罚值
	EvaluateAssignment(ctx *Context, assignment model.Assignment) (valid bool, penalty int)
}

// ViolationDetail 约束违反详情
type ViolationDetail struct {
	ConstraintType Type   `json:"constraint_type"`
	ConstraintName string `json:"constraint_name"`
	NurseID        string `json:"nurse_id,omitempty"`
	Date           string `json:"date,omitempty"`
	Message        string `json:"message"`
	Severity       string `json:"severity"` // error/warning
	Penalty        int    `json:"penalty"`
}

// Result 约束评估结果
type Result struct {
	IsValid        bool              `json:"is_valid"`
	TotalPenalty   int               `json:"total_penalty"`
	HardViolations []ViolationDetail `json:"hard_violations"`
	SoftViolations []ViolationDetail `json:"soft_violations"`
}

// SoftMessages 返回软约束违反的可读描述列表
func (r *Result) SoftMessages() []string {
	messages := make([]string, 0, len(r.SoftViolations))
	for _, v := range r.SoftViolations {
		messages = append(messages, v.Message)
	}
	return messages
}
