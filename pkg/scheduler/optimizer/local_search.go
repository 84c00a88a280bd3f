// Package optimizer 提供局部搜索优化器
package optimizer

import (
	"context"
	"math"
	"math/rand"

	"github.com/wardroster/wardroster/pkg/logger"
	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint"
	"github.com/wardroster/wardroster/pkg/scheduler/score"
)

// LocalSearchOptimizer 局部搜索优化器
// 交换邻域 + 模拟退火接受准则，温度随迭代线性下降
type LocalSearchOptimizer struct {
	manager   *constraint.Manager
	evaluator *score.Evaluator
	neighbors *NeighborhoodGenerator
	rng       *rand.Rand
	log       *logger.SchedulerLogger
}

// NewLocalSearchOptimizer 创建局部搜索优化器
func NewLocalSearchOptimizer(manager *constraint.Manager, evaluator *score.Evaluator, rng *rand.Rand) *LocalSearchOptimizer {
	return &LocalSearchOptimizer{
		manager:   manager,
		evaluator: evaluator,
		neighbors: NewNeighborhoodGenerator(rng),
		rng:       rng,
		log:       logger.NewSchedulerLogger(),
	}
}

// Optimize 从初始解出发迭代改进，返回遇到过的最优解
// 违反硬约束的邻域解直接丢弃；上层取消时立即返回当前最优解
func (o *LocalSearchOptimizer) Optimize(
	ctx context.Context,
	schedCtx *constraint.Context,
	initial []model.Assignment,
	strategy score.Strategy,
	maxIterations int,
) []model.Assignment {
	current := model.CloneAssignments(initial)
	best := model.CloneAssignments(initial)
	bestScore := o.evaluator.Evaluate(best, strategy).Total

	probe := schedCtx.Clone()

	for i := 0; i < maxIterations; i++ {
		select {
		case <-ctx.Done():
			return best
		default:
		}

		neighbor := o.neighbors.Swap(current)
		if neighbor == nil {
			continue
		}

		probe.SetAssignments(neighbor)
		if !o.manager.Validate(probe) {
			continue
		}

		neighborScore := o.evaluator.Evaluate(neighbor, strategy).Total

		if neighborScore > bestScore {
			current = neighbor
			best = model.CloneAssignments(neighbor)
			bestScore = neighborScore
			o.log.BetterSolution(i, bestScore)
			continue
		}

		// 退火接受：温度随迭代线性降到 0，后期只接受改进
		temperature := 1.0 - float64(i)/float64(maxIterations)
		if temperature <= 0 {
			continue
		}
		if o.rng.Float64() < math.Exp((neighborScore-bestScore)/temperature) {
			current = neighbor
		}
	}

	return best
}
