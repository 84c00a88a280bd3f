// Package constraint 定义约束接口和管理器
package constraint

import (
	"fmt"
	"sort"
	"sync"

	"github.com/wardroster/wardroster/pkg/model"
)

// Manager 约束管理器
type Manager struct {
	constraints []Constraint
	mu          sync.RWMutex
}

// NewManager 创建约束管理器
func NewManager() *Manager {
	return &Manager{
		constraints: make([]Constraint, 0),
	}
}

// Register 注册约束
// 同类型约束只保留最后注册的一个
func (m *Manager) Register(c Constraint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.constraints {
		if existing.Type() == c.Type() {
			m.constraints[i] = c
			return
		}
	}

	m.constraints = append(m.constraints, c)

	// 按类别和权重排序：硬约束在前，权重高的在前
	sort.Slice(m.constraints, func(i, j int) bool {
		ci, cj := m.constraints[i], m.constraints[j]
		if ci.Category() != cj.Category() {
			return ci.Category() == CategoryHard
		}
		return ci.Weight() > cj.Weight()
	})
}

// Unregister 注销约束
func (m *Manager) Unregister(t Type) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.constraints {
		if c.Type() == t {
			m.constraints = append(m.constraints[:i], m.constraints[i+1:]...)
			return
		}
	}
}

// GetAll 获取所有约束
func (m *Manager) GetAll() []Constraint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Constraint, len(m.constraints))
	copy(result, m.constraints)
	return result
}

// GetByCategory 按类别获取约束
func (m *Manager) GetByCategory(cat Category) []Constraint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []Constraint
	for _, c := range m.constraints {
		if c.Category() == cat {
			result = append(result, c)
		}
	}
	return result
}

// Evaluate 评估所有约束
func (m *Manager) Evaluate(ctx *Context) *Result {
	constraints := m.GetAll()

	result := &Result{
		IsValid:        true,
		TotalPenalty:   0,
		HardViolations: make([]ViolationDetail, 0),
		SoftViolations: make([]ViolationDetail, 0),
	}

	for _, c := range constraints {
		valid, penalty, details := c.Evaluate(ctx)
		if valid && penalty == 0 && len(details) == 0 {
			continue
		}

		result.TotalPenalty += penalty
		for _, d := range details {
			if c.Category() == CategoryHard {
				result.HardViolations = append(result.HardViolations, d)
			} else {
				result.SoftViolations = append(result.SoftViolations, d)
			}
		}
		if !valid && c.Category() == CategoryHard {
			result.IsValid = false
		}
	}

	return result
}

// Validate 纯函数式硬约束检查
// 给定完整分配集合，仅判断是否满足全部硬约束，不产生详情
func (m *Manager) Validate(ctx *Context) bool {
	for _, c := range m.GetByCategory(CategoryHard) {
		if valid, _, _ := c.Evaluate(ctx); !valid {
			return false
		}
	}
	return true
}

// CanAssign 检查在当前状态上是否可以新增某个分配
// 只检查硬约束
func (m *Manager) CanAssign(ctx *Context, assignment model.Assignment) (bool, string) {
	for _, c := range m.GetByCategory(CategoryHard) {
		if valid, _ := c.EvaluateAssignment(ctx, assignment); !valid {
			return false, fmt.Sprintf("违反硬约束: %s", c.Name())
		}
	}
	return true, ""
}

// Clear 清除所有约束
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.constraints = make([]Constraint, 0)
}

// Count 返回约束数量
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.constraints)
}
