// Package model 定义护士排班引擎的核心数据模型
package model

// ShiftRequirement 班次需求
// 由排班周期和覆盖规则生成，生成后不再变更
type ShiftRequirement struct {
	Date           string    `json:"date"` // YYYY-MM-DD
	ShiftType      ShiftType `json:"shift_type"`
	RequiredNurses int       `json:"required_nurses"`
}

// Key 返回需求的唯一键（日期+班次类型）
func (r ShiftRequirement) Key() string {
	return r.Date + "/" + string(r.ShiftType)
}

// Assignment 排班分配
// 同一护士同一天最多一个分配
type Assignment struct {
	NurseID   string    `json:"nurse_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	ShiftType ShiftType `json:"shift_type"`
}

// SlotKey 返回分配所属需求槽位的键
func (a Assignment) SlotKey() string {
	return a.Date + "/" + string(a.ShiftType)
}

// CloneAssignments 深拷贝分配列表
func CloneAssignments(assignments []Assignment) []Assignment {
	clone := make([]Assignment, len(assignments))
	copy(clone, assignments)
	return clone
}
