package rulecheck

import (
	"strings"
	"testing"

	"github.com/wardroster/wardroster/pkg/model"
)

func workDays(dates ...string) []DayPreference {
	prefs := make([]DayPreference, 0, len(dates))
	for _, d := range dates {
		prefs = append(prefs, DayPreference{Date: d, Type: PreferenceWork})
	}
	return prefs
}

func TestValidatePreferences_Valid(t *testing.T) {
	rules := model.DefaultRules()
	// 不连续的4个工作日
	prefs := workDays("2026-03-02", "2026-03-04", "2026-03-06", "2026-03-09")

	result := ValidatePreferences(prefs, rules, "2026-03-02", "2026-03-15")
	if !result.Valid {
		t.Errorf("Expected valid, got errors: %v", result.Errors)
	}
}

func TestValidatePreferences_TooFewWorkDays(t *testing.T) {
	rules := model.DefaultRules()
	prefs := workDays("2026-03-02")

	result := ValidatePreferences(prefs, rules, "2026-03-02", "2026-03-15")
	if result.Valid {
		t.Error("Expected invalid with 1 work day (min 3)")
	}
}

func TestValidatePreferences_TimeOffLimits(t *testing.T) {
	rules := model.DefaultRules()

	tests := []struct {
		name    string
		prefs   []DayPreference
		wantErr string
	}{
		{
			"PTO超限",
			append(workDays("2026-03-02", "2026-03-04", "2026-03-06"),
				DayPreference{Date: "2026-03-09", Type: PreferencePTO},
				DayPreference{Date: "2026-03-10", Type: PreferencePTO},
				DayPreference{Date: "2026-03-11", Type: PreferencePTO},
				DayPreference{Date: "2026-03-12", Type: PreferencePTO}),
			"带薪休假最多",
		},
		{
			"免排超限",
			append(workDays("2026-03-02", "2026-03-04", "2026-03-06"),
				DayPreference{Date: "2026-03-09", Type: PreferenceNoSchedule},
				DayPreference{Date: "2026-03-10", Type: PreferenceNoSchedule},
				DayPreference{Date: "2026-03-11", Type: PreferenceNoSchedule}),
			"免排最多",
		},
		{
			"休假总量超限",
			append(workDays("2026-03-02", "2026-03-04", "2026-03-06"),
				DayPreference{Date: "2026-03-09", Type: PreferencePTO},
				DayPreference{Date: "2026-03-10", Type: PreferencePTO},
				DayPreference{Date: "2026-03-11", Type: PreferencePTO},
				DayPreference{Date: "2026-03-12", Type: PreferenceNoSchedule},
				DayPreference{Date: "2026-03-13", Type: PreferenceNoSchedule}),
			"休假总天数最多",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidatePreferences(tt.prefs, rules, "2026-03-02", "2026-03-15")
			if result.Valid {
				t.Fatal("Expected invalid")
			}
			found := false
			for _, e := range result.Errors {
				if strings.Contains(e, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, result.Errors)
			}
		})
	}
}

func TestValidatePreferences_BlackoutDates(t *testing.T) {
	rules := model.DefaultRules()
	rules.BlackoutDates = []string{"2026-03-09"}

	prefs := append(workDays("2026-03-02", "2026-03-04", "2026-03-06"),
		DayPreference{Date: "2026-03-09", Type: PreferencePTO})

	result := ValidatePreferences(prefs, rules, "2026-03-02", "2026-03-15")
	if result.Valid {
		t.Error("Expected invalid for PTO on blackout date")
	}
}

func TestValidatePreferences_ConsecutiveDays(t *testing.T) {
	rules := model.DefaultRules() // 最多连续5天

	prefs := workDays("2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06", "2026-03-07")
	result := ValidatePreferences(prefs, rules, "2026-03-02", "2026-03-15")
	if result.Valid {
		t.Error("Expected invalid with 6 consecutive work days")
	}
}

func TestValidatePreferences_WeekendLimit(t *testing.T) {
	rules := model.DefaultRules() // 最多2个周末
	rules.MinShiftsPerNurse = 1

	// 三个周末共6个周末工作日
	prefs := workDays("2026-03-07", "2026-03-08", "2026-03-14", "2026-03-15", "2026-03-21", "2026-03-22")
	result := ValidatePreferences(prefs, rules, "2026-03-02", "2026-03-29")
	if result.Valid {
		t.Error("Expected invalid with 3 weekends (max 2)")
	}
}

func TestValidatePreferences_Warnings(t *testing.T) {
	rules := model.DefaultRules()

	// 刚好达到下限，且大半日期未标记
	prefs := workDays("2026-03-02", "2026-03-04", "2026-03-06")
	result := ValidatePreferences(prefs, rules, "2026-03-02", "2026-03-15")
	if !result.Valid {
		t.Fatalf("Expected valid, got errors: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("Expected flexibility warnings")
	}
}

func TestRequirementsSummary(t *testing.T) {
	rules := model.DefaultRules()
	lines := RequirementsSummary(rules)
	if len(lines) < 5 {
		t.Errorf("Expected at least 5 requirement lines, got %d", len(lines))
	}

	rules.BlackoutDates = []string{"2026-03-09"}
	rules.RequireAlternatingWeekends = true
	longer := RequirementsSummary(rules)
	if len(longer) != len(lines)+2 {
		t.Errorf("Expected 2 extra lines, got %d vs %d", len(longer), len(lines))
	}
}
