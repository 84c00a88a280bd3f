// Package model 定义护士排班引擎的核心数据模型
package model

// Nurse 护士
type Nurse struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	SeniorityLevel       int               `json:"seniority_level"`         // 资历等级（正整数，越大越资深）
	ShiftTypes           []ShiftType       `json:"shift_types"`             // 可胜任的班次类型
	MaxShiftsPerBlock    int               `json:"max_shifts_per_block"`    // 排班周期内最大班次数
	ContractHoursPerWeek int               `json:"contract_hours_per_week"` // 合同周工时
	Preferences          *NursePreferences `json:"preferences,omitempty"`
}

// NursePreferences 护士偏好
// PTO 和免排日期与同日的班次偏好互斥；冲突时以 PTO/免排为准（该日不可用）
type NursePreferences struct {
	PreferredShifts    map[string]ShiftType `json:"preferred_shifts,omitempty"`     // 日期 -> 期望班次（DAY/NIGHT/ANY）
	PTORequests        []string             `json:"pto_requests,omitempty"`         // 带薪休假日期
	NoScheduleRequests []string             `json:"no_schedule_requests,omitempty"` // 免排日期
	FlexibilityScore   float64              `json:"flexibility_score"`              // 灵活度（越高越能接受非偏好班次）
}

// defaultFlexibility 未提交偏好时的灵活度默认值
const defaultFlexibility = 5.0

// CanWork 检查护士是否可胜任某班次类型
func (n *Nurse) CanWork(shiftType ShiftType) bool {
	for _, st := range n.ShiftTypes {
		if st == shiftType {
			return true
		}
	}
	return false
}

// PreferredShift 返回护士在某日期的期望班次
func (n *Nurse) PreferredShift(date string) (ShiftType, bool) {
	if n.Preferences == nil {
		return "", false
	}
	pref, ok := n.Preferences.PreferredShifts[date]
	return pref, ok
}

// PrefersShift 检查某日期分配该班次是否符合护士偏好
func (n *Nurse) PrefersShift(date string, shiftType ShiftType) bool {
	pref, ok := n.PreferredShift(date)
	return ok && (pref == shiftType || pref == ShiftAny)
}

// Flexibility 返回灵活度得分
// 未提交偏好或未填写灵活度（值为 0）时按默认值计
func (n *Nurse) Flexibility() float64 {
	if n.Preferences == nil || n.Preferences.FlexibilityScore == 0 {
		return defaultFlexibility
	}
	return n.Preferences.FlexibilityScore
}

// BlockedDates 返回护士不可排班的日期集合（PTO + 免排）
func (n *Nurse) BlockedDates() map[string]bool {
	blocked := make(map[string]bool)
	if n.Preferences == nil {
		return blocked
	}
	for _, d := range n.Preferences.PTORequests {
		blocked[d] = true
	}
	for _, d := range n.Preferences.NoScheduleRequests {
		blocked[d] = true
	}
	return blocked
}
