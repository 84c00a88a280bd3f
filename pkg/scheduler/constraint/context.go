// Package constraint 定义约束接口和管理器
package constraint

import (
	"sort"

	"github.com/wardroster/wardroster/pkg/model"
)

// Context 排班上下文
// 输入数据（护士、规则、需求、不可用日期）在创建后不再变更；
// 分配状态归单次生成尝试独占，尝试之间互不共享
type Context struct {
	// 输入数据
	StartDate    string                   `json:"start_date"`
	EndDate      string                   `json:"end_date"`
	Nurses       []*model.Nurse           `json:"nurses"`
	Rules        *model.SchedulingRules   `json:"rules"`
	Requirements []model.ShiftRequirement `json:"requirements"`

	// 当前排班结果
	Assignments []model.Assignment `json:"assignments"`

	// 索引缓存
	nurseMap           map[string]*model.Nurse
	assignmentsByNurse map[string][]model.Assignment
	assignmentsByDate  map[string][]model.Assignment

	// 预计算的不可用日期（PTO + 免排），护士ID -> 日期集合
	blocked map[string]map[string]bool
}

// NewContext 创建新的排班上下文
// 不可用日期在此一次性预计算，搜索过程中不再变更护士数据
func NewContext(startDate, endDate string, nurses []*model.Nurse, rules *model.SchedulingRules) *Context {
	ctx := &Context{
		StartDate:          startDate,
		EndDate:            endDate,
		Nurses:             nurses,
		Rules:              rules,
		Assignments:        make([]model.Assignment, 0),
		nurseMap:           make(map[string]*model.Nurse, len(nurses)),
		assignmentsByNurse: make(map[string][]model.Assignment),
		assignmentsByDate:  make(map[string][]model.Assignment),
		blocked:            make(map[string]map[string]bool, len(nurses)),
	}
	for _, n := range nurses {
		ctx.nurseMap[n.ID] = n
		ctx.blocked[n.ID] = n.BlockedDates()
	}
	return ctx
}

// SetRequirements 设置班次需求
func (c *Context) SetRequirements(requirements []model.ShiftRequirement) {
	c.Requirements = requirements
}

// SetAssignments 替换全部排班分配并重建索引
func (c *Context) SetAssignments(assignments []model.Assignment) {
	c.Assignments = assignments
	c.rebuildAssignmentIndexes()
}

// AddAssignment 添加排班分配
func (c *Context) AddAssignment(a model.Assignment) {
	c.Assignments = append(c.Assignments, a)
	c.assignmentsByNurse[a.NurseID] = append(c.assignmentsByNurse[a.NurseID], a)
	c.assignmentsByDate[a.Date] = append(c.assignmentsByDate[a.Date], a)
}

// rebuildAssignmentIndexes 重建分配索引
func (c *Context) rebuildAssignmentIndexes() {
	c.assignmentsByNurse = make(map[string][]model.Assignment)
	c.assignmentsByDate = make(map[string][]model.Assignment)
	for _, a := range c.Assignments {
		c.assignmentsByNurse[a.NurseID] = append(c.assignmentsByNurse[a.NurseID], a)
		c.assignmentsByDate[a.Date] = append(c.assignmentsByDate[a.Date], a)
	}
}

// Clone 拷贝上下文
// 输入数据和不可用日期为只读，直接共享；分配状态深拷贝
func (c *Context) Clone() *Context {
	clone := &Context{
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Nurses:       c.Nurses,
		Rules:        c.Rules,
		Requirements: c.Requirements,
		Assignments:  model.CloneAssignments(c.Assignments),
		nurseMap:     c.nurseMap,
		blocked:      c.blocked,
	}
	clone.rebuildAssignmentIndexes()
	return clone
}

// GetNurse 获取护士
func (c *Context) GetNurse(id string) *model.Nurse {
	return c.nurseMap[id]
}

// NurseAssignments 获取护士的所有排班
func (c *Context) NurseAssignments(nurseID string) []model.Assignment {
	return c.assignmentsByNurse[nurseID]
}

// NurseShiftCount 获取护士当前的班次数
func (c *Context) NurseShiftCount(nurseID string) int {
	return len(c.assignmentsByNurse[nurseID])
}

// DateAssignments 获取某日期的所有排班
func (c *Context) DateAssignments(date string) []model.Assignment {
	return c.assignmentsByDate[date]
}

// HasAssignmentOn 检查护士某日是否已有分配
func (c *Context) HasAssignmentOn(nurseID, date string) bool {
	for _, a := range c.assignmentsByNurse[nurseID] {
		if a.Date == date {
			return true
		}
	}
	return false
}

// IsBlocked 检查日期是否为护士的不可用日期（PTO 或免排）
func (c *Context) IsBlocked(nurseID, date string) bool {
	return c.blocked[nurseID][date]
}

// ConsecutiveRunWith 计算在某日新增分配后形成的最大连续工作天数
// 从目标日期向前、向后穿过已有分配计数，含目标日期本身
func (c *Context) ConsecutiveRunWith(nurseID, date string) int {
	dates := make(map[string]bool)
	for _, a := range c.assignmentsByNurse[nurseID] {
		dates[a.Date] = true
	}

	run := 1
	current := model.PreviousDate(date)
	for dates[current] {
		run++
		current = model.PreviousDate(current)
		if run > 60 { // 防止无限循环
			break
		}
	}

	current = model.NextDate(date)
	for dates[current] {
		run++
		current = model.NextDate(current)
		if run > 60 {
			break
		}
	}

	return run
}

// MaxConsecutiveRun 计算一组分配日期中的最大连续天数
func MaxConsecutiveRun(assignments []model.Assignment) int {
	if len(assignments) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(assignments))
	dates := make([]string, 0, len(assignments))
	for _, a := range assignments {
		if !seen[a.Date] {
			seen[a.Date] = true
			dates = append(dates, a.Date)
		}
	}
	sort.Strings(dates)

	maxRun := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if model.PreviousDate(dates[i]) == dates[i-1] {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 1
		}
	}
	return maxRun
}
