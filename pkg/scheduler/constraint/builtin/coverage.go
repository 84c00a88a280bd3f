// Package builtin 提供内置约束实现
package builtin

import (
	"fmt"

	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint"
)

// CoverageConstraint 人手覆盖约束（软约束）
// 按班次需求逐项检查已分配人数是否达到要求
type CoverageConstraint struct {
	*BaseConstraint
}

// NewCoverageConstraint 创建人手覆盖约束
func NewCoverageConstraint() *CoverageConstraint {
	return &CoverageConstraint{
		BaseConstraint: NewBaseConstraint(
			"人手覆盖",
			constraint.TypeCoverage,
			constraint.CategorySoft,
			50,
		),
	}
}

// Evaluate 评估整个排班
func (c *CoverageConstraint) Evaluate(ctx *constraint.Context) (bool, int, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	totalPenalty := 0

	counts := make(map[string]int, len(ctx.Requirements))
	for _, a := range ctx.Assignments {
		counts[a.SlotKey()]++
	}

	for _, req := range ctx.Requirements {
		assigned := counts[req.Key()]
		if assigned >= req.RequiredNurses {
			continue
		}
		penalty := c.Weight() * (req.RequiredNurses - assigned)
		totalPenalty += penalty
		violations = append(violations, c.CreateViolation(
			"", req.Date,
			fmt.Sprintf("%s %s班人手不足: 已排 %d 人，需要 %d 人", req.Date, shiftLabel(req.ShiftType), assigned, req.RequiredNurses),
			penalty,
		))
	}

	return true, totalPenalty, violations
}

// EvaluateAssignment 软约束不阻止分配
func (c *CoverageConstraint) EvaluateAssignment(ctx *constraint.Context, a model.Assignment) (bool, int) {
	return true, 0
}

func shiftLabel(t model.ShiftType) string {
	switch t {
	case model.ShiftDay:
		return "白"
	case model.ShiftNight:
		return "夜"
	default:
		return string(t)
	}
}
