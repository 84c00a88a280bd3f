// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint"
)

// OneShiftPerDayConstraint 同日单班约束（硬约束）
// 同一护士同一天最多一个班次
type OneShiftPerDayConstraint struct {
	*BaseConstraint
}

// NewOneShiftPerDayConstraint 创建同日单班约束
func NewOneShiftPerDayConstraint() *OneShiftPerDayConstraint {
	return &OneShiftPerDayConstraint{
		BaseConstraint: NewBaseConstraint(
			"同日单班",
			constraint.TypeOneShiftPerDay,
			constraint.CategoryHard,
			100,
		),
	}
}

// Evaluate 评估整个排班
func (c *OneShiftPerDayConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0
	isValid := true

	for _, n := range ctx.Nurses {
		byDate := make(map[string]int)
		for _, a := range ctx.NurseAssignments(n.ID) {
			byDate[a.Date]++
		}
		for date, count := range byDate {
			if count > 1 {
				isValid = false
				penalty := c.Weight() * (count - 1)
				totalPenalty += penalty
				violations = append(violations, c.CreateViolation(
					n.ID, date,
					fmt.Sprintf("护士 %s 在 %s 有 %d 个班次", n.Name, date, count),
					penalty,
				))
			}
		}
	}

	return isValid, totalPenalty, violations
}

// EvaluateAssignment 评估单个分配
func (c *OneShiftPerDayConstraint) EvaluateAssignment(ctx *constraint.Context, a model.Assignment) (bool, int) {
	if ctx.HasAssignmentOn(a.NurseID, a.Date) {
		return false, c.Weight()
	}
	return true, 0
}
