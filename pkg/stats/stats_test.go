package stats

import (
	"testing"

	"github.com/wardroster/wardroster/pkg/model"
)

func TestAnalyzeCoverage(t *testing.T) {
	reqs := []model.ShiftRequirement{
		{Date: "2026-03-02", ShiftType: model.ShiftDay, RequiredNurses: 2},
		{Date: "2026-03-02", ShiftType: model.ShiftNight, RequiredNurses: 1},
	}
	assignments := []model.Assignment{
		{NurseID: "n1", Date: "2026-03-02", ShiftType: model.ShiftDay},
		{NurseID: "n2", Date: "2026-03-02", ShiftType: model.ShiftNight},
	}

	report := AnalyzeCoverage(reqs, assignments)
	if report.TotalRequired != 3 || report.TotalFilled != 2 {
		t.Errorf("Expected 2/3 filled, got %d/%d", report.TotalFilled, report.TotalRequired)
	}
	if len(report.Understaffed) != 1 {
		t.Fatalf("Expected 1 understaffed shift, got %d", len(report.Understaffed))
	}
	u := report.Understaffed[0]
	if u.Date != "2026-03-02" || u.ShiftType != model.ShiftDay || u.Required != 2 || u.Assigned != 1 {
		t.Errorf("Unexpected understaffed entry: %+v", u)
	}
}

func TestAnalyzeCoverage_Empty(t *testing.T) {
	report := AnalyzeCoverage(nil, nil)
	if report.CoverageRate != 1.0 {
		t.Errorf("Expected rate 1.0 for no requirements, got %f", report.CoverageRate)
	}
	if len(report.Understaffed) != 0 {
		t.Error("Expected no understaffed shifts")
	}
}

func TestAnalyzeWorkload(t *testing.T) {
	nurses := []*model.Nurse{
		{ID: "n1", Name: "n1"},
		{ID: "n2", Name: "n2"},
	}
	assignments := []model.Assignment{
		{NurseID: "n1", Date: "2026-03-02", ShiftType: model.ShiftDay},
		{NurseID: "n1", Date: "2026-03-03", ShiftType: model.ShiftDay},
		{NurseID: "ghost", Date: "2026-03-02", ShiftType: model.ShiftNight}, // 名单外的不计
	}

	workloads := AnalyzeWorkload(nurses, assignments)
	if workloads["n1"] != 2 {
		t.Errorf("Expected 2 shifts for n1, got %d", workloads["n1"])
	}
	// 未排班的护士也出现在结果中
	if count, ok := workloads["n2"]; !ok || count != 0 {
		t.Errorf("Expected n2 with 0 shifts, got %d (ok=%v)", count, ok)
	}
	if _, ok := workloads["ghost"]; ok {
		t.Error("Expected unknown nurse to be excluded")
	}
}

func TestAnalyzePreferenceSatisfaction(t *testing.T) {
	nurses := []*model.Nurse{
		{ID: "n1", Name: "n1", Preferences: &model.NursePreferences{
			PreferredShifts: map[string]model.ShiftType{"2026-03-02": model.ShiftDay},
		}},
		{ID: "n2", Name: "n2"}, // 未提交偏好
	}
	assignments := []model.Assignment{
		{NurseID: "n1", Date: "2026-03-02", ShiftType: model.ShiftDay},   // 命中
		{NurseID: "n1", Date: "2026-03-03", ShiftType: model.ShiftNight}, // 无偏好日
		{NurseID: "n2", Date: "2026-03-02", ShiftType: model.ShiftNight},
	}

	satisfaction := AnalyzePreferenceSatisfaction(nurses, assignments)
	if got := satisfaction["n1"]; got != 0.5 {
		t.Errorf("Expected satisfaction 0.5 for n1, got %f", got)
	}
	// 未提交偏好的护士不计入
	if _, ok := satisfaction["n2"]; ok {
		t.Error("Expected n2 excluded from satisfaction stats")
	}
}
