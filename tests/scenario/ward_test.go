// Package scenario 提供场景测试
package scenario

import (
	"context"
	"testing"

	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/generator"
	"github.com/wardroster/wardroster/pkg/scheduler/score"
)

// wardNurses 构造一个典型病区的护士团队
func wardNurses() []*model.Nurse {
	both := []model.ShiftType{model.ShiftDay, model.ShiftNight}

	return []*model.Nurse{
		{ID: "n01", Name: "陈晓", SeniorityLevel: 3, ShiftTypes: both, MaxShiftsPerBlock: 6},
		{ID: "n02", Name: "王芳", SeniorityLevel: 2, ShiftTypes: both, MaxShiftsPerBlock: 6,
			Preferences: &model.NursePreferences{
				PreferredShifts:  map[string]model.ShiftType{"2026-03-02": model.ShiftDay, "2026-03-03": model.ShiftDay},
				FlexibilityScore: 6,
			}},
		{ID: "n03", Name: "李娜", SeniorityLevel: 1, ShiftTypes: both, MaxShiftsPerBlock: 6,
			Preferences: &model.NursePreferences{
				PTORequests:      []string{"2026-03-04"},
				FlexibilityScore: 4,
			}},
		{ID: "n04", Name: "赵敏", SeniorityLevel: 2, ShiftTypes: []model.ShiftType{model.ShiftDay}, MaxShiftsPerBlock: 6},
		{ID: "n05", Name: "孙丽", SeniorityLevel: 1, ShiftTypes: []model.ShiftType{model.ShiftNight}, MaxShiftsPerBlock: 6,
			Preferences: &model.NursePreferences{
				NoScheduleRequests: []string{"2026-03-07"},
				FlexibilityScore:   7,
			}},
		{ID: "n06", Name: "周静", SeniorityLevel: 3, ShiftTypes: both, MaxShiftsPerBlock: 6},
	}
}

// wardRules 一周排班周期的覆盖规则
func wardRules() *model.SchedulingRules {
	rules := model.DefaultRules()
	rules.RequiredCoverage = model.RequiredCoverage{Day: 2, Night: 1, WeekendDay: 1, WeekendNight: 1}
	return rules
}

// TestWardWeeklySchedule 测试一周病区排班的完整流程
func TestWardWeeklySchedule(t *testing.T) {
	g := generator.New()

	opts := generator.DefaultOptions()
	opts.Seed = 20260302
	opts.MaxIterations = 500

	req := &generator.Request{
		StartDate: "2026-03-02",
		EndDate:   "2026-03-08",
		Nurses:    wardNurses(),
		Rules:     wardRules(),
	}

	schedules, err := g.Generate(context.Background(), req, opts)
	if err != nil {
		t.Fatalf("生成排班失败: %v", err)
	}
	if len(schedules) == 0 {
		t.Fatal("期望至少生成一个排班方案")
	}

	best := schedules[0]
	t.Logf("生成%d个方案, 最优总分=%.3f 覆盖=%.3f 偏好=%.3f 公平=%.3f",
		len(schedules), best.OptimizationScore, best.CoverageScore, best.PreferenceScore, best.FairnessScore)

	// 休假日不被排班
	for _, a := range best.Assignments {
		if a.NurseID == "n03" && a.Date == "2026-03-04" {
			t.Error("n03 在PTO日期被排班")
		}
		if a.NurseID == "n05" && a.Date == "2026-03-07" {
			t.Error("n05 在免排日期被排班")
		}
	}

	// 资质限制
	for _, a := range best.Assignments {
		if a.NurseID == "n04" && a.ShiftType == model.ShiftNight {
			t.Error("n04 只能上白班却被排了夜班")
		}
		if a.NurseID == "n05" && a.ShiftType == model.ShiftDay {
			t.Error("n05 只能上夜班却被排了白班")
		}
	}

	// 同日单班
	seen := make(map[string]bool)
	for _, a := range best.Assignments {
		key := a.NurseID + "/" + a.Date
		if seen[key] {
			t.Errorf("护士 %s 在 %s 被排了多个班次", a.NurseID, a.Date)
		}
		seen[key] = true
	}

	// 个人班次上限
	workloads := best.Statistics.NurseWorkloads
	for id, count := range workloads {
		if count > 6 {
			t.Errorf("护士 %s 排班 %d 次，超过上限 6", id, count)
		}
	}

	// 覆盖统计自洽
	metrics := best.Statistics.CoverageMetrics
	if metrics.TotalFilled > metrics.TotalRequired {
		t.Errorf("已排 %d 超过需求 %d", metrics.TotalFilled, metrics.TotalRequired)
	}
	if metrics.CoverageRate < 0 || metrics.CoverageRate > 1 {
		t.Errorf("覆盖率越界: %f", metrics.CoverageRate)
	}
}

// TestWardStrategyComparison 测试不同优化策略产出不同侧重的方案
func TestWardStrategyComparison(t *testing.T) {
	g := generator.New()

	run := func(strategy score.Strategy) *model.GeneratedSchedule {
		opts := generator.DefaultOptions()
		opts.Seed = 7
		opts.MaxIterations = 500
		opts.Strategy = strategy

		schedules, err := g.Generate(context.Background(), &generator.Request{
			StartDate: "2026-03-02",
			EndDate:   "2026-03-08",
			Nurses:    wardNurses(),
			Rules:     wardRules(),
		}, opts)
		if err != nil || len(schedules) == 0 {
			t.Fatalf("策略 %s 生成失败: %v", strategy, err)
		}
		return schedules[0]
	}

	for _, strategy := range []score.Strategy{
		score.StrategyBalanced,
		score.StrategyCoverage,
		score.StrategyPreferences,
		score.StrategyFairness,
	} {
		best := run(strategy)
		if best.OptimizationScore < 0 || best.OptimizationScore > 1 {
			t.Errorf("策略 %s 总分越界: %f", strategy, best.OptimizationScore)
		}
		t.Logf("策略 %s: 总分=%.3f", strategy, best.OptimizationScore)
	}
}

// TestWardSeniorityBias 测试资历倾斜开关
func TestWardSeniorityBias(t *testing.T) {
	g := generator.New()

	rules := wardRules()
	rules.EnableSeniorityBias = true
	rules.SeniorityBiasWeight = 0.5

	opts := generator.DefaultOptions()
	opts.Seed = 99
	opts.MaxIterations = 200

	schedules, err := g.Generate(context.Background(), &generator.Request{
		StartDate: "2026-03-02",
		EndDate:   "2026-03-05",
		Nurses:    wardNurses(),
		Rules:     rules,
	}, opts)
	if err != nil || len(schedules) == 0 {
		t.Fatalf("生成失败: %v", err)
	}

	// 启用倾斜后资历子评分参与计算，不再恒为1
	best := schedules[0]
	if best.SeniorityScore < 0 || best.SeniorityScore > 1 {
		t.Errorf("资历评分越界: %f", best.SeniorityScore)
	}
}
