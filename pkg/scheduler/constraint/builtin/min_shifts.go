// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint"
)

// MinShiftsPerNurseConstraint 最少班次约束（软约束）
// 仅对本周期内至少有一次排班的护士报告缺口，
// 完全未参与排班的护士不计入（可能整期休假）
type MinShiftsPerNurseConstraint struct {
	*BaseConstraint
	minShifts int
}

// NewMinShiftsPerNurseConstraint 创建最少班次约束
func NewMinShiftsPerNurseConstraint(minShifts int) *MinShiftsPerNurseConstraint {
	return &MinShiftsPerNurseConstraint{
		BaseConstraint: NewBaseConstraint(
			"最少班次",
			constraint.TypeMinShiftsPerNurse,
			constraint.CategorySoft,
			30,
		),
		minShifts: minShifts,
	}
}

// Evaluate 评估整个排班
func (c *MinShiftsPerNurseConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0

	for _, n := range ctx.Nurses {
		count := ctx.NurseShiftCount(n.ID)
		if count == 0 || count >= c.minShifts {
			continue
		}
		penalty := c.Weight() * (c.minShifts - count)
		totalPenalty += penalty
		violations = append(violations, c.CreateViolation(
			n.ID, "",
			fmt.Sprintf("护士 %s 仅排 %d 个班次，少于最低要求 %d 个", n.Name, count, c.minShifts),
			penalty,
		))
	}

	return true, totalPenalty, violations
}

// EvaluateAssignment 软约束不阻止分配
func (c *MinShiftsPerNurseConstraint) EvaluateAssignment(ctx *constraint.Context, a model.Assignment) (bool, int) {
	return true, 0
}
