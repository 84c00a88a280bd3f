// Package solver 提供初始排班求解器
package solver

import (
	"context"
	"sort"
	"time"

	"github.com/wardroster/wardroster/pkg/model"
	"github.com/wardroster/wardroster/pkg/scheduler/constraint"
)

// Solver 求解器接口
type Solver interface {
	// Solve 在给定上下文上生成初始排班
	Solve(ctx context.Context, schedCtx *constraint.Context) (*Result, error)

	// Name 返回求解器名称
	Name() string
}

// Result 求解结果
type Result struct {
	Assignments   []model.Assignment      `json:"assignments"`
	Feasible      bool                    `json:"feasible"`
	Unfilled      *model.ShiftRequirement `json:"unfilled,omitempty"`
	EligibleCount int                     `json:"eligible_count,omitempty"`
	Duration      time.Duration           `json:"duration"`
}

// GreedySolver 贪心求解器
// 按可选护士数量从少到多处理班次需求，优先解决最难填的缺口
type GreedySolver struct {
	manager *constraint.Manager
}

// NewGreedySolver 创建贪心求解器
func NewGreedySolver(manager *constraint.Manager) *GreedySolver {
	return &GreedySolver{manager: manager}
}

// Name 返回求解器名称
func (s *GreedySolver) Name() string {
	return "greedy"
}

// Solve 生成初始排班
// 任一需求的可选护士不足时整体判定为不可行，返回 Feasible=false
func (s *GreedySolver) Solve(ctx context.Context, schedCtx *constraint.Context) (*Result, error) {
	start := time.Now()

	ordered := s.orderByDifficulty(schedCtx)

	for _, req := range ordered {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		eligible := s.EligibleNurses(schedCtx, req)
		if len(eligible) < req.RequiredNurses {
			return &Result{
				Assignments:   model.CloneAssignments(schedCtx.Assignments),
				Feasible:      false,
				Unfilled:      &req,
				EligibleCount: len(eligible),
				Duration:      time.Since(start),
			}, nil
		}

		ranked := s.rankNurses(schedCtx, eligible, req)
		for i := 0; i < req.RequiredNurses; i++ {
			schedCtx.AddAssignment(model.Assignment{
				NurseID:   ranked[i].ID,
				Date:      req.Date,
				ShiftType: req.ShiftType,
			})
		}
	}

	return &Result{
		Assignments: model.CloneAssignments(schedCtx.Assignments),
		Feasible:    true,
		Duration:    time.Since(start),
	}, nil
}

// orderByDifficulty 按初始可选护士数升序排列需求
// 难度针对空白排班计算一次，排序稳定以保证可重放
func (s *GreedySolver) orderByDifficulty(schedCtx *constraint.Context) []model.ShiftRequirement {
	difficulty := make(map[string]int, len(schedCtx.Requirements))
	for _, req := range schedCtx.Requirements {
		difficulty[req.Key()] = len(s.EligibleNurses(schedCtx, req))
	}

	ordered := make([]model.ShiftRequirement, len(schedCtx.Requirements))
	copy(ordered, schedCtx.Requirements)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := difficulty[ordered[i].Key()], difficulty[ordered[j].Key()]
		if di != dj {
			return di < dj
		}
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date
		}
		return ordered[i].ShiftType < ordered[j].ShiftType
	})
	return ordered
}

// EligibleNurses 返回当前状态下可承担某需求的护士
// 资质由护士档案判断，其余硬约束交给约束管理器
func (s *GreedySolver) EligibleNurses(schedCtx *constraint.Context, req model.ShiftRequirement) []*model.Nurse {
	var eligible []*model.Nurse
	for _, n := range schedCtx.Nurses {
		if !n.CanWork(req.ShiftType) {
			continue
		}
		a := model.Assignment{NurseID: n.ID, Date: req.Date, ShiftType: req.ShiftType}
		if ok, _ := s.manager.CanAssign(schedCtx, a); !ok {
			continue
		}
		eligible = append(eligible, n)
	}
	return eligible
}

// rankNurses 按适合度降序排列候选护士
// 适合度 = 偏好匹配 + 资历加成 + 负载均衡 + 灵活度
// 同分时按护士ID字典序升序，保证结果确定
func (s *GreedySolver) rankNurses(schedCtx *constraint.Context, nurses []*model.Nurse, req model.ShiftRequirement) []*model.Nurse {
	scores := make(map[string]float64, len(nurses))
	for _, n := range nurses {
		scores[n.ID] = s.fitScore(schedCtx, n, req)
	}

	ranked := make([]*model.Nurse, len(nurses))
	copy(ranked, nurses)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i].ID], scores[ranked[j].ID]
		if si != sj {
			return si > sj
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// fitScore 计算护士对某需求的适合度
func (s *GreedySolver) fitScore(schedCtx *constraint.Context, n *model.Nurse, req model.ShiftRequirement) float64 {
	score := 0.0

	// 偏好匹配：指定班次吻合或偏好为 ANY
	if pref, ok := n.PreferredShift(req.Date); ok {
		if pref == req.ShiftType || pref == model.ShiftAny {
			score += 100
		}
	}

	// 资历加成，仅在启用资历倾斜时计入
	if schedCtx.Rules.EnableSeniorityBias {
		score += float64(n.SeniorityLevel) * schedCtx.Rules.SeniorityBiasWeight * 50
	}

	// 负载均衡：当前班次越少得分越高
	score += float64(10-schedCtx.NurseShiftCount(n.ID)) * 20

	// 灵活度
	score += n.Flexibility() * 10

	return score
}
