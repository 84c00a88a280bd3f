// Package stats 提供排班结果的统计分析
package stats

import (
	"github.com/wardroster/wardroster/pkg/model"
)

// AnalyzeWorkload 统计各护士的班次数
// 名单内所有护士都会出现在结果中，未排班的计 0
func AnalyzeWorkload(nurses []*model.Nurse, assignments []model.Assignment) map[string]int {
	workloads := make(map[string]int, len(nurses))
	for _, n := range nurses {
		workloads[n.ID] = 0
	}
	for _, a := range assignments {
		if _, ok := workloads[a.NurseID]; ok {
			workloads[a.NurseID]++
		}
	}
	return workloads
}

// AnalyzePreferenceSatisfaction 统计各护士的偏好满足率
// 仅计算提交过偏好且有排班的护士，满足率 = 命中偏好的班次数 / 总班次数
func AnalyzePreferenceSatisfaction(nurses []*model.Nurse, assignments []model.Assignment) map[string]float64 {
	byNurse := make(map[string][]model.Assignment)
	for _, a := range assignments {
		byNurse[a.NurseID] = append(byNurse[a.NurseID], a)
	}

	satisfaction := make(map[string]float64)
	for _, n := range nurses {
		if n.Preferences == nil {
			continue
		}
		assigned := byNurse[n.ID]
		if len(assigned) == 0 {
			continue
		}
		matched := 0
		for _, a := range assigned {
			if n.PrefersShift(a.Date, a.ShiftType) {
				matched++
			}
		}
		satisfaction[n.ID] = float64(matched) / float64(len(assigned))
	}
	return satisfaction
}
