// Package requirement 提供班次需求展开
package requirement

import (
	"github.com/wardroster/wardroster/pkg/model"
)

// Build 将排班周期和覆盖规则展开为逐日逐班次的需求列表
// 每个日历日生成白班和夜班各一条需求，周末使用周末阈值
// 空范围或非法日期返回空列表，无副作用
func Build(startDate, endDate string, coverage model.RequiredCoverage) []model.ShiftRequirement {
	start, err := model.ParseDate(startDate)
	if err != nil {
		return nil
	}
	end, err := model.ParseDate(endDate)
	if err != nil {
		return nil
	}

	var requirements []model.ShiftRequirement
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(model.DateLayout)
		requirements = append(requirements,
			model.ShiftRequirement{
				Date:           date,
				ShiftType:      model.ShiftDay,
				RequiredNurses: coverage.ForDate(date, model.ShiftDay),
			},
			model.ShiftRequirement{
				Date:           date,
				ShiftType:      model.ShiftNight,
				RequiredNurses: coverage.ForDate(date, model.ShiftNight),
			},
		)
	}
	return requirements
}
