// Package builtin 提供内置约束实现
package builtin

import (
	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint"
)

// RegisterDefaults 注册默认约束集
// 硬约束：同日单班、周期最大班次、最大连续天数、不可用日期
// 软约束：最少班次、人手覆盖
func RegisterDefaults(m *constraint.Manager, rules *model.SchedulingRules) {
	m.Register(NewOneShiftPerDayConstraint())
	m.Register(NewMaxShiftsPerBlockConstraint())
	m.Register(NewMaxConsecutiveDaysConstraint(rules.MaxConsecutiveDays))
	m.Register(NewBlockedDatesConstraint())
	m.Register(NewMinShiftsPerNurseConstraint(rules.MinShiftsPerNurse))
	m.Register(NewCoverageConstraint())
}
