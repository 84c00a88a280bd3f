package model

import "testing"

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	if rules.MinShiftsPerNurse != 3 || rules.MaxShiftsPerNurse != 12 {
		t.Errorf("Unexpected shift limits: min=%d max=%d", rules.MinShiftsPerNurse, rules.MaxShiftsPerNurse)
	}
	if rules.MaxConsecutiveDays != 5 {
		t.Errorf("Expected max consecutive days 5, got %d", rules.MaxConsecutiveDays)
	}
	if rules.MaxPTOPerNurse != 3 || rules.MaxNoSchedulePerNurse != 2 || rules.MaxTotalTimeOff != 4 {
		t.Error("Unexpected time-off limits")
	}
	if rules.RequiredCoverage.Day != 3 || rules.RequiredCoverage.Night != 2 {
		t.Error("Unexpected weekday coverage")
	}
	if rules.EnableSeniorityBias {
		t.Error("Expected seniority bias disabled by default")
	}
	if rules.SeniorityBiasWeight != 0.3 {
		t.Errorf("Expected seniority bias weight 0.3, got %f", rules.SeniorityBiasWeight)
	}
}

func TestRequiredCoverage_ForDate(t *testing.T) {
	coverage := RequiredCoverage{Day: 3, Night: 2, WeekendDay: 2, WeekendNight: 1}

	tests := []struct {
		date      string
		shiftType ShiftType
		want      int
	}{
		{"2026-03-02", ShiftDay, 3},   // 周一白班
		{"2026-03-02", ShiftNight, 2}, // 周一夜班
		{"2026-03-07", ShiftDay, 2},   // 周六白班
		{"2026-03-08", ShiftNight, 1}, // 周日夜班
	}

	for _, tt := range tests {
		if got := coverage.ForDate(tt.date, tt.shiftType); got != tt.want {
			t.Errorf("ForDate(%s, %s) = %d, want %d", tt.date, tt.shiftType, got, tt.want)
		}
	}
}
