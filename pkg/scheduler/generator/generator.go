// Package generator 负责编排完整的排班生成流程
// 流程：需求展开 -> 贪心初始解 -> 局部搜索优化 -> 评分排序
package generator

import (
	"context"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wardroster/wardroster/pkg/errors"
	"github.com/wardroster/wardroster/pkg/logger"
	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint/builtin"
	"github.com/wardroster/wardroster/pkg/scheduler/optimizer"
	"github.com/wardroster/wardroster/pkg/scheduler/requirement"
	"github.com/wardroster/wardroster/pkg/scheduler/score"
	"github.com/wardroster/wardroster/pkg/scheduler/solver"
	"github.com/wardroster/wardroster/pkg/stats"
)

// Request 排班生成请求
type Request struct {
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Nurses    []*model.Nurse         `json:"nurses"`
	Rules     *model.SchedulingRules `json:"rules"`
}

// Options 生成选项
type Options struct {
	MaxSchedules  int            `json:"max_schedules"`
	MaxIterations int            `json:"max_iterations"`
	Strategy      score.Strategy `json:"strategy"`
	Seed          int64          `json:"seed"`
	Workers       int            `json:"workers"`
}

// DefaultOptions 返回默认生成选项
func DefaultOptions() Options {
	return Options{
		MaxSchedules:  3,
		MaxIterations: 1000,
		Strategy:      score.StrategyBalanced,
	}
}

// Generator 排班生成器
type Generator struct {
	log *logger.SchedulerLogger
}

// New 创建排班生成器
func New() *Generator {
	return &Generator{
		log: logger.NewSchedulerLogger(),
	}
}

// Generate 生成候选排班方案，按总分从高到低排序
// 各次尝试使用独立的随机轨迹，不可行的尝试被丢弃；
// 零护士输入返回空列表而不报错
func (g *Generator) Generate(ctx context.Context, req *Request, opts Options) ([]*model.GeneratedSchedule, error) {
	start := time.Now()

	startDay, err := model.ParseDate(req.StartDate)
	if err != nil {
		return nil, errors.InvalidInput("start_date", err.Error())
	}
	endDay, err := model.ParseDate(req.EndDate)
	if err != nil {
		return nil, errors.InvalidInput("end_date", err.Error())
	}
	if endDay.Before(startDay) {
		return nil, errors.InvalidTimeRange(req.StartDate, req.EndDate)
	}

	rules := req.Rules
	if rules == nil {
		rules = model.DefaultRules()
	}

	if len(req.Nurses) == 0 {
		return []*model.GeneratedSchedule{}, nil
	}

	opts = normalizeOptions(opts)
	requirements := requirement.Build(req.StartDate, req.EndDate, rules.RequiredCoverage)
	evaluator := score.NewEvaluator(req.Nurses, requirements, rules)

	g.log.StartGeneration(len(req.Nurses), model.CountDays(req.StartDate, req.EndDate), opts.MaxSchedules)

	schedules := g.runAttempts(ctx, req, rules, requirements, evaluator, opts)

	sort.SliceStable(schedules, func(i, j int) bool {
		return schedules[i].OptimizationScore > schedules[j].OptimizationScore
	})

	bestScore := 0.0
	if len(schedules) > 0 {
		bestScore = schedules[0].OptimizationScore
	}
	g.log.GenerationComplete(len(schedules), bestScore, time.Since(start))

	return schedules, nil
}

// runAttempts 并行执行多次独立的生成尝试
func (g *Generator) runAttempts(
	ctx context.Context,
	req *Request,
	rules *model.SchedulingRules,
	requirements []model.ShiftRequirement,
	evaluator *score.Evaluator,
	opts Options,
) []*model.GeneratedSchedule {
	jobChan := make(chan int, opts.MaxSchedules)
	resultChan := make(chan *model.GeneratedSchedule, opts.MaxSchedules)

	workers := opts.Workers
	if workers > opts.MaxSchedules {
		workers = opts.MaxSchedules
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for attempt := range jobChan {
				if schedule := g.runAttempt(ctx, req, rules, requirements, evaluator, opts, attempt); schedule != nil {
					resultChan <- schedule
				}
			}
		}()
	}

	for attempt := 0; attempt < opts.MaxSchedules; attempt++ {
		jobChan <- attempt
	}
	close(jobChan)

	wg.Wait()
	close(resultChan)

	schedules := make([]*model.GeneratedSchedule, 0, opts.MaxSchedules)
	for s := range resultChan {
		schedules = append(schedules, s)
	}
	return schedules
}

// runAttempt 执行单次生成尝试
// 每次尝试持有独立的上下文、约束管理器和随机源
func (g *Generator) runAttempt(
	ctx context.Context,
	req *Request,
	rules *model.SchedulingRules,
	requirements []model.ShiftRequirement,
	evaluator *score.Evaluator,
	opts Options,
	attempt int,
) *model.GeneratedSchedule {
	rng := rand.New(rand.NewSource(opts.Seed + int64(attempt)))

	manager := constraint.NewManager()
	builtin.RegisterDefaults(manager, rules)

	schedCtx := constraint.NewContext(req.StartDate, req.EndDate, req.Nurses, rules)
	schedCtx.SetRequirements(requirements)

	greedy := solver.NewGreedySolver(manager)
	result, err := greedy.Solve(ctx, schedCtx)
	if err != nil {
		return nil
	}
	if !result.Feasible {
		if result.Unfilled != nil {
			g.log.AttemptInfeasible(attempt, result.Unfilled.Date, string(result.Unfilled.ShiftType), result.EligibleCount, result.Unfilled.RequiredNurses)
		}
		return nil
	}

	opt := optimizer.NewLocalSearchOptimizer(manager, evaluator, rng)
	optimized := opt.Optimize(ctx, schedCtx, result.Assignments, opts.Strategy, opts.MaxIterations)

	return g.assemble(schedCtx, manager, evaluator, optimized, opts.Strategy, req)
}

// assemble 把优化后的分配组装成完整的排班方案
func (g *Generator) assemble(
	schedCtx *constraint.Context,
	manager *constraint.Manager,
	evaluator *score.Evaluator,
	assignments []model.Assignment,
	strategy score.Strategy,
	req *Request,
) *model.GeneratedSchedule {
	breakdown := evaluator.Evaluate(assignments, strategy)

	final := schedCtx.Clone()
	final.SetAssignments(assignments)
	violations := manager.Evaluate(final).SoftMessages()

	coverage := stats.AnalyzeCoverage(final.Requirements, assignments)

	return &model.GeneratedSchedule{
		ID:                uuid.New(),
		Assignments:       assignments,
		OptimizationScore: breakdown.Total,
		CoverageScore:     breakdown.Coverage,
		PreferenceScore:   breakdown.Preference,
		FairnessScore:     breakdown.Fairness,
		SeniorityScore:    breakdown.Seniority,
		Violations:        violations,
		Statistics: &model.ScheduleStatistics{
			TotalAssignments:       len(assignments),
			NurseWorkloads:         stats.AnalyzeWorkload(req.Nurses, assignments),
			PreferenceSatisfaction: stats.AnalyzePreferenceSatisfaction(req.Nurses, assignments),
			CoverageMetrics: model.CoverageTotals{
				TotalRequired: coverage.TotalRequired,
				TotalFilled:   coverage.TotalFilled,
				CoverageRate:  coverage.CoverageRate,
			},
		},
		GeneratedAt: time.Now(),
	}
}

// normalizeOptions 填补缺省选项
func normalizeOptions(opts Options) Options {
	if opts.MaxSchedules <= 0 {
		opts.MaxSchedules = 3
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 1000
	}
	if !score.ValidStrategy(opts.Strategy) {
		opts.Strategy = score.StrategyBalanced
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return opts
}
