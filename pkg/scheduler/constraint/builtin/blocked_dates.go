// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint"
)

// BlockedDatesConstraint 不可用日期约束（硬约束）
// 覆盖 PTO 和免排申请，日期集合在上下文创建时预计算
type BlockedDatesConstraint struct {
	*BaseConstraint
}

// NewBlockedDatesConstraint 创建不可用日期约束
func NewBlockedDatesConstraint() *BlockedDatesConstraint {
	return &BlockedDatesConstraint{
		BaseConstraint: NewBaseConstraint(
			"不可用日期",
			constraint.TypeBlockedDates,
			constraint.CategoryHard,
			100,
		),
	}
}

// Evaluate 评估整个排班
func (c *BlockedDatesConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0
	isValid := true

	for _, a := range ctx.Assignments {
		if ctx.IsBlocked(a.NurseID, a.Date) {
			isValid = false
			penalty := c.Weight()
			totalPenalty += penalty
			name := a.NurseID
			if n := ctx.GetNurse(a.NurseID); n != nil {
				name = n.Name
			}
			violations = append(violations, c.CreateViolation(
				a.NurseID, a.Date,
				fmt.Sprintf("护士 %s 在 %s 休假或免排，不可排班", name, a.Date),
				penalty,
			))
		}
	}

	return isValid, totalPenalty, violations
}

// EvaluateAssignment 评估单个分配
func (c *BlockedDatesConstraint) EvaluateAssignment(ctx *constraint.Context, a model.Assignment) (bool, int) {
	if ctx.IsBlocked(a.NurseID, a.Date) {
		return false, c.Weight()
	}
	return true, 0
}
