package constraint

import (
	"testing"

	"github.com/wardroster/wardroster/pkg/model"
)

// MockConstraint 测试用约束
type MockConstraint struct {
	name      string
	typ       Type
	category  Category
	weight    int
	pass      bool
	penalty   int
	canAssign bool
}

func (m *MockConstraint) Name() string       { return m.name }
func (m *MockConstraint) Type() Type         { return m.typ }
func (m *MockConstraint) Category() Category { return m.category }
func (m *MockConstraint) Weight() int        { return m.weight }

func (m *MockConstraint) Evaluate(ctx *Context) (bool, int, []ViolationDetail) {
	if m.pass {
		return true, 0, nil
	}
	return false, m.penalty, []ViolationDetail{{
		ConstraintType: m.typ,
		ConstraintName: m.name,
		Message:        "mock violation",
		Penalty:        m.penalty,
	}}
}

func (m *MockConstraint) EvaluateAssignment(ctx *Context, a model.Assignment) (bool, int) {
	if m.canAssign {
		return true, 0
	}
	return false, m.penalty
}

func TestManager_Register(t *testing.T) {
	manager := NewManager()

	manager.Register(&MockConstraint{name: "test", typ: Type("t1"), category: CategoryHard})
	if manager.Count() != 1 {
		t.Errorf("Expected 1 constraint, got %d", manager.Count())
	}

	// 同类型重复注册只保留最新的
	manager.Register(&MockConstraint{name: "test2", typ: Type("t1"), category: CategoryHard})
	if manager.Count() != 1 {
		t.Errorf("Expected 1 constraint after re-register, got %d", manager.Count())
	}
	if manager.GetAll()[0].Name() != "test2" {
		t.Error("Expected latest registration to replace previous one")
	}
}

func TestManager_RegisterOrder(t *testing.T) {
	manager := NewManager()

	manager.Register(&MockConstraint{name: "soft", typ: Type("s1"), category: CategorySoft, weight: 90})
	manager.Register(&MockConstraint{name: "hard_low", typ: Type("h1"), category: CategoryHard, weight: 50})
	manager.Register(&MockConstraint{name: "hard_high", typ: Type("h2"), category: CategoryHard, weight: 80})

	all := manager.GetAll()
	if all[0].Name() != "hard_high" || all[1].Name() != "hard_low" || all[2].Name() != "soft" {
		t.Errorf("Unexpected order: %s, %s, %s", all[0].Name(), all[1].Name(), all[2].Name())
	}
}

func TestManager_GetByCategory(t *testing.T) {
	manager := NewManager()

	manager.Register(&MockConstraint{name: "hard1", typ: Type("h1"), category: CategoryHard})
	manager.Register(&MockConstraint{name: "soft1", typ: Type("s1"), category: CategorySoft})

	if got := len(manager.GetByCategory(CategoryHard)); got != 1 {
		t.Errorf("Expected 1 hard constraint, got %d", got)
	}
	if got := len(manager.GetByCategory(CategorySoft)); got != 1 {
		t.Errorf("Expected 1 soft constraint, got %d", got)
	}
}

func TestManager_Evaluate(t *testing.T) {
	manager := NewManager()
	ctx := NewContext("2026-03-02", "2026-03-08", testNurses(), model.DefaultRules())

	// 全部通过
	manager.Register(&MockConstraint{name: "pass", typ: Type("p1"), category: CategoryHard, pass: true})
	result := manager.Evaluate(ctx)
	if !result.IsValid || result.TotalPenalty != 0 {
		t.Errorf("Expected valid result with 0 penalty, got valid=%v penalty=%d", result.IsValid, result.TotalPenalty)
	}

	// 硬约束失败
	manager.Register(&MockConstraint{name: "fail", typ: Type("f1"), category: CategoryHard, penalty: 100})
	result = manager.Evaluate(ctx)
	if result.IsValid {
		t.Error("Expected invalid result when hard constraint fails")
	}
	if result.TotalPenalty != 100 {
		t.Errorf("Expected penalty 100, got %d", result.TotalPenalty)
	}
	if len(result.HardViolations) != 1 {
		t.Errorf("Expected 1 hard violation, got %d", len(result.HardViolations))
	}

	// 软约束失败不影响有效性
	manager.Clear()
	manager.Register(&MockConstraint{name: "soft_fail", typ: Type("s1"), category: CategorySoft, penalty: 30})
	result = manager.Evaluate(ctx)
	if !result.IsValid {
		t.Error("Expected valid result when only soft constraint fails")
	}
	if len(result.SoftViolations) != 1 {
		t.Errorf("Expected 1 soft violation, got %d", len(result.SoftViolations))
	}
	if msgs := result.SoftMessages(); len(msgs) != 1 || msgs[0] != "mock violation" {
		t.Errorf("Unexpected soft messages: %v", msgs)
	}
}

func TestManager_Validate(t *testing.T) {
	manager := NewManager()
	ctx := NewContext("2026-03-02", "2026-03-08", testNurses(), model.DefaultRules())

	manager.Register(&MockConstraint{name: "pass", typ: Type("p1"), category: CategoryHard, pass: true})
	// 软约束失败不影响 Validate
	manager.Register(&MockConstraint{name: "soft", typ: Type("s1"), category: CategorySoft, penalty: 10})

	if !manager.Validate(ctx) {
		t.Error("Expected valid when hard constraints pass")
	}

	manager.Register(&MockConstraint{name: "fail", typ: Type("f1"), category: CategoryHard, penalty: 100})
	if manager.Validate(ctx) {
		t.Error("Expected invalid when a hard constraint fails")
	}
}

func TestManager_CanAssign(t *testing.T) {
	manager := NewManager()
	ctx := NewContext("2026-03-02", "2026-03-08", testNurses(), model.DefaultRules())
	a := model.Assignment{NurseID: "n1", Date: "2026-03-02", ShiftType: model.ShiftDay}

	manager.Register(&MockConstraint{name: "ok", typ: Type("o1"), category: CategoryHard, canAssign: true})
	if ok, _ := manager.CanAssign(ctx, a); !ok {
		t.Error("Expected assignment to be allowed")
	}

	manager.Register(&MockConstraint{name: "block", typ: Type("b1"), category: CategoryHard})
	ok, reason := manager.CanAssign(ctx, a)
	if ok {
		t.Error("Expected assignment to be blocked")
	}
	if reason == "" {
		t.Error("Expected a rejection reason")
	}
}

func TestManager_Unregister(t *testing.T) {
	manager := NewManager()
	manager.Register(&MockConstraint{name: "test", typ: Type("t1"), category: CategoryHard})
	manager.Unregister(Type("t1"))
	if manager.Count() != 0 {
		t.Errorf("Expected 0 constraints after unregister, got %d", manager.Count())
	}
}
