// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint"
)

// MaxShiftsPerBlockConstraint 排班周期内最大班次约束（硬约束）
// 上限取自护士个人档案，不同护士可以不同
type MaxShiftsPerBlockConstraint struct {
	*BaseConstraint
}

// NewMaxShiftsPerBlockConstraint 创建最大班次约束
func NewMaxShiftsPerBlockConstraint() *MaxShiftsPerBlockConstraint {
	return &MaxShiftsPerBlockConstraint{
		BaseConstraint: NewBaseConstraint(
			"周期最大班次",
			constraint.TypeMaxShiftsPerBlock,
			constraint.CategoryHard,
			90,
		),
	}
}

// Evaluate 评估整个排班
func (c *MaxShiftsPerBlockConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0
	isValid := true

	for _, n := range ctx.Nurses {
		count := ctx.NurseShiftCount(n.ID)
		if count > n.MaxShiftsPerBlock {
			isValid = false
			penalty := c.Weight() * (count - n.MaxShiftsPerBlock)
			totalPenalty += penalty
			violations = append(violations, c.CreateViolation(
				n.ID, "",
				fmt.Sprintf("护士 %s 排班 %d 次，超过上限 %d 次", n.Name, count, n.MaxShiftsPerBlock),
				penalty,
			))
		}
	}

	return isValid, totalPenalty, violations
}

// EvaluateAssignment 评估单个分配
func (c *MaxShiftsPerBlockConstraint) EvaluateAssignment(ctx *constraint.Context, a model.Assignment) (bool, int) {
	n := ctx.GetNurse(a.NurseID)
	if n == nil {
		return false, c.Weight()
	}
	if ctx.NurseShiftCount(a.NurseID) >= n.MaxShiftsPerBlock {
		return false, c.Weight()
	}
	return true, 0
}
