package requirement

import (
	"testing"

	"github.com/wardroster/wardroster/pkg/model"
)

func TestBuild(t *testing.T) {
	coverage := model.RequiredCoverage{Day: 3, Night: 2, WeekendDay: 2, WeekendNight: 1}

	// 2026-03-06(周五) 到 2026-03-07(周六)
	reqs := Build("2026-03-06", "2026-03-07", coverage)

	if len(reqs) != 4 {
		t.Fatalf("Expected 4 requirements, got %d", len(reqs))
	}

	// 每天白班在前夜班在后
	if reqs[0].Date != "2026-03-06" || reqs[0].ShiftType != model.ShiftDay || reqs[0].RequiredNurses != 3 {
		t.Errorf("Unexpected first requirement: %+v", reqs[0])
	}
	if reqs[1].ShiftType != model.ShiftNight || reqs[1].RequiredNurses != 2 {
		t.Errorf("Unexpected second requirement: %+v", reqs[1])
	}

	// 周六使用周末阈值
	if reqs[2].RequiredNurses != 2 {
		t.Errorf("Expected weekend day coverage 2, got %d", reqs[2].RequiredNurses)
	}
	if reqs[3].RequiredNurses != 1 {
		t.Errorf("Expected weekend night coverage 1, got %d", reqs[3].RequiredNurses)
	}
}

func TestBuild_SingleDay(t *testing.T) {
	reqs := Build("2026-03-02", "2026-03-02", model.RequiredCoverage{Day: 1, Night: 1})
	if len(reqs) != 2 {
		t.Errorf("Expected 2 requirements for single day, got %d", len(reqs))
	}
}

func TestBuild_EmptyOrInvalid(t *testing.T) {
	// 结束早于开始
	if reqs := Build("2026-03-08", "2026-03-02", model.RequiredCoverage{Day: 1}); len(reqs) != 0 {
		t.Errorf("Expected empty result for reversed range, got %d", len(reqs))
	}

	// 非法日期
	if reqs := Build("bad", "2026-03-02", model.RequiredCoverage{Day: 1}); reqs != nil {
		t.Errorf("Expected nil for invalid date, got %d requirements", len(reqs))
	}
}
