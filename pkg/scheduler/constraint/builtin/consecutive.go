// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint"
)

// MaxConsecutiveDaysConstraint 最大连续工作天数约束（硬约束）
type MaxConsecutiveDaysConstraint struct {
	*BaseConstraint
	maxDays int
}

// NewMaxConsecutiveDaysConstraint 创建最大连续天数约束
func NewMaxConsecutiveDaysConstraint(maxDays int) *MaxConsecutiveDaysConstraint {
	return &MaxConsecutiveDaysConstraint{
		BaseConstraint: NewBaseConstraint(
			"最大连续工作天数",
			constraint.TypeMaxConsecutiveDays,
			constraint.CategoryHard,
			80,
		),
		maxDays: maxDays,
	}
}

// Evaluate 评估整个排班
func (c *MaxConsecutiveDaysConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0
	isValid := true

	for _, n := range ctx.Nurses {
		run := constraint.MaxConsecutiveRun(ctx.NurseAssignments(n.ID))
		if run > c.maxDays {
			isValid = false
			penalty := c.Weight() * (run - c.maxDays)
			totalPenalty += penalty
			violations = append(violations, c.CreateViolation(
				n.ID, "",
				fmt.Sprintf("护士 %s 连续工作 %d 天，超过上限 %d 天", n.Name, run, c.maxDays),
				penalty,
			))
		}
	}

	return isValid, totalPenalty, violations
}

// EvaluateAssignment 评估单个分配
// 向前后穿过已有分配计算新增后的连续天数
func (c *MaxConsecutiveDaysConstraint) EvaluateAssignment(ctx *constraint.Context, a model.Assignment) (bool, int) {
	if ctx.ConsecutiveRunWith(a.NurseID, a.Date) > c.maxDays {
		return false, c.Weight()
	}
	return true, 0
}
