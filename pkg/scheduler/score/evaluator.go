// Package score 提供排班方案的多维度评分
package score

import (
	"github.com/wardroster/wardroster/pkg/model"
)

// Strategy 优化策略
type Strategy string

const (
	StrategyBalanced    Strategy = "balanced"
	StrategyCoverage    Strategy = "coverage"
	StrategyPreferences Strategy = "preferences"
	StrategyFairness    Strategy = "fairness"
)

// ValidStrategy 判断策略是否有效
func ValidStrategy(s Strategy) bool {
	switch s {
	case StrategyBalanced, StrategyCoverage, StrategyPreferences, StrategyFairness:
		return true
	}
	return false
}

// Weights 各子评分的权重，总和为 1
type Weights struct {
	Coverage   float64 `json:"coverage"`
	Preference float64 `json:"preference"`
	Fairness   float64 `json:"fairness"`
	Seniority  float64 `json:"seniority"`
}

// ProfileWeights 返回策略对应的权重配置
// 资历倾斜关闭时，资历权重按 40/30/30 摊给覆盖、偏好、公平
func ProfileWeights(strategy Strategy, seniorityEnabled bool) Weights {
	var w Weights
	switch strategy {
	case StrategyCoverage:
		w = Weights{Coverage: 0.7, Preference: 0.1, Fairness: 0.1, Seniority: 0.1}
	case StrategyPreferences:
		w = Weights{Coverage: 0.2, Preference: 0.6, Fairness: 0.1, Seniority: 0.1}
	case StrategyFairness:
		w = Weights{Coverage: 0.2, Preference: 0.2, Fairness: 0.5, Seniority: 0.1}
	default:
		w = Weights{Coverage: 0.4, Preference: 0.3, Fairness: 0.2, Seniority: 0.1}
	}

	if !seniorityEnabled {
		w.Coverage += w.Seniority * 0.4
		w.Preference += w.Seniority * 0.3
		w.Fairness += w.Seniority * 0.3
		w.Seniority = 0
	}
	return w
}

// Breakdown 评分明细
type Breakdown struct {
	Coverage   float64 `json:"coverage"`
	Preference float64 `json:"preference"`
	Fairness   float64 `json:"fairness"`
	Seniority  float64 `json:"seniority"`
	Total      float64 `json:"total"`
}

// Evaluator 评分器
// 输入数据在创建后只读，评分不产生副作用，可在多个 goroutine 间共享
type Evaluator struct {
	nurses       []*model.Nurse
	requirements []model.ShiftRequirement
	rules        *model.SchedulingRules

	nurseMap            map[string]*model.Nurse
	maxSeniorityByShift map[model.ShiftType]int
}

// NewEvaluator 创建评分器
func NewEvaluator(nurses []*model.Nurse, requirements []model.ShiftRequirement, rules *model.SchedulingRules) *Evaluator {
	e := &Evaluator{
		nurses:              nurses,
		requirements:        requirements,
		rules:               rules,
		nurseMap:            make(map[string]*model.Nurse, len(nurses)),
		maxSeniorityByShift: make(map[model.ShiftType]int),
	}
	for _, n := range nurses {
		e.nurseMap[n.ID] = n
		for _, st := range n.ShiftTypes {
			if n.SeniorityLevel > e.maxSeniorityByShift[st] {
				e.maxSeniorityByShift[st] = n.SeniorityLevel
			}
		}
	}
	return e
}

// Evaluate 按策略计算加权总分和各子评分
func (e *Evaluator) Evaluate(assignments []model.Assignment, strategy Strategy) Breakdown {
	w := ProfileWeights(strategy, e.rules.EnableSeniorityBias)

	b := Breakdown{
		Coverage:   e.CoverageScore(assignments),
		Preference: e.PreferenceScore(assignments),
		Fairness:   e.FairnessScore(assignments),
		Seniority:  e.SeniorityScore(assignments),
	}
	b.Total = w.Coverage*b.Coverage +
		w.Preference*b.Preference +
		w.Fairness*b.Fairness +
		w.Seniority*b.Seniority
	return b
}

// CoverageScore 覆盖评分
// 每个需求最多按所需人数计满，超配不加分
func (e *Evaluator) CoverageScore(assignments []model.Assignment) float64 {
	if len(e.requirements) == 0 {
		return 1.0
	}

	counts := make(map[string]int, len(e.requirements))
	for _, a := range assignments {
		counts[a.SlotKey()]++
	}

	totalRequired := 0
	totalFilled := 0
	for _, req := range e.requirements {
		totalRequired += req.RequiredNurses
		filled := counts[req.Key()]
		if filled > req.RequiredNurses {
			filled = req.RequiredNurses
		}
		totalFilled += filled
	}

	if totalRequired == 0 {
		return 1.0
	}
	return float64(totalFilled) / float64(totalRequired)
}

// PreferenceScore 偏好满足评分
// 只统计护士对当日明确表达过偏好的分配，未表达偏好的不拉低分数
func (e *Evaluator) PreferenceScore(assignments []model.Assignment) float64 {
	stated := 0
	matched := 0

	for _, a := range assignments {
		n := e.nurseMap[a.NurseID]
		if n == nil {
			continue
		}
		pref, ok := n.PreferredShift(a.Date)
		if !ok {
			continue
		}
		stated++
		if pref == a.ShiftType || pref == model.ShiftAny {
			matched++
		}
	}

	if stated == 0 {
		return 1.0
	}
	return float64(matched) / float64(stated)
}

// FairnessScore 工作量公平评分
// 只统计本周期内至少有一次排班的护士，整期未参与的不拉低分数；
// 基于班次数方差，方差越大分数越低，下限为 0
func (e *Evaluator) FairnessScore(assignments []model.Assignment) float64 {
	counts := make(map[string]int)
	for _, a := range assignments {
		counts[a.NurseID]++
	}
	if len(counts) == 0 {
		return 1.0
	}

	mean := float64(len(assignments)) / float64(len(counts))

	variance := 0.0
	for _, count := range counts {
		diff := float64(count) - mean
		variance += diff * diff
	}
	variance /= float64(len(counts))

	score := 1.0 - variance/(mean*mean)
	if score < 0 {
		return 0
	}
	return score
}

// SeniorityScore 资历评分
// 资历倾斜关闭时恒为 1
// 每个分配的上限取可胜任该班次类型的护士中的最高资历，
// 避免资深护士无法承担某类班次时拉低该类班次的得分
func (e *Evaluator) SeniorityScore(assignments []model.Assignment) float64 {
	if !e.rules.EnableSeniorityBias {
		return 1.0
	}

	total := 0
	maxPossible := 0
	for _, a := range assignments {
		if n := e.nurseMap[a.NurseID]; n != nil {
			total += n.SeniorityLevel
		}
		maxPossible += e.maxSeniorityByShift[a.ShiftType]
	}

	if maxPossible == 0 {
		return 1.0
	}
	return float64(total) / float64(maxPossible)
}
