// Package stats 提供排班结果的统计分析
package stats

import (
	"github.com/wardroster/wardroster/pkg/model"
)

// UnderstaffedShift 人手不足的班次
type UnderstaffedShift struct {
	Date      string          `json:"date"`
	ShiftType model.ShiftType `json:"shift_type"`
	Required  int             `json:"required"`
	Assigned  int             `json:"assigned"`
}

// CoverageReport 覆盖统计报告
type CoverageReport struct {
	TotalRequired int                 `json:"total_required"`
	TotalFilled   int                 `json:"total_filled"`
	CoverageRate  float64             `json:"coverage_rate"`
	Understaffed  []UnderstaffedShift `json:"understaffed"`
}

// AnalyzeCoverage 统计各班次需求的满足情况
// 超配按需求人数计满，缺口按需求顺序列出
func AnalyzeCoverage(requirements []model.ShiftRequirement, assignments []model.Assignment) *CoverageReport {
	counts := make(map[string]int, len(requirements))
	for _, a := range assignments {
		counts[a.SlotKey()]++
	}

	report := &CoverageReport{
		Understaffed: make([]UnderstaffedShift, 0),
	}
	for _, req := range requirements {
		assigned := counts[req.Key()]
		report.TotalRequired += req.RequiredNurses

		filled := assigned
		if filled > req.RequiredNurses {
			filled = req.RequiredNurses
		}
		report.TotalFilled += filled

		if assigned < req.RequiredNurses {
			report.Understaffed = append(report.Understaffed, UnderstaffedShift{
				Date:      req.Date,
				ShiftType: req.ShiftType,
				Required:  req.RequiredNurses,
				Assigned:  assigned,
			})
		}
	}

	if report.TotalRequired > 0 {
		report.CoverageRate = float64(report.TotalFilled) / float64(report.TotalRequired)
	} else {
		report.CoverageRate = 1.0
	}
	return report
}
