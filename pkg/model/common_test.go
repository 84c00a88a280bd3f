package model

import "testing"

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-03-02"); err != nil {
		t.Errorf("Expected valid date, got error: %v", err)
	}
	if _, err := ParseDate("2026/03/02"); err == nil {
		t.Error("Expected error for wrong format")
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("Expected error for garbage input")
	}
}

func TestPreviousNextDate(t *testing.T) {
	if got := PreviousDate("2026-03-02"); got != "2026-03-01" {
		t.Errorf("Expected 2026-03-01, got %s", got)
	}
	if got := NextDate("2026-02-28"); got != "2026-03-01" {
		t.Errorf("Expected 2026-03-01, got %s", got)
	}
	if got := PreviousDate("bad"); got != "" {
		t.Errorf("Expected empty string for bad date, got %s", got)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		date    string
		weekend bool
	}{
		{"2026-03-02", false}, // 周一
		{"2026-03-06", false}, // 周五
		{"2026-03-07", true},  // 周六
		{"2026-03-08", true},  // 周日
	}

	for _, tt := range tests {
		if got := IsWeekend(tt.date); got != tt.weekend {
			t.Errorf("IsWeekend(%s) = %v, want %v", tt.date, got, tt.weekend)
		}
	}
}

func TestCountDays(t *testing.T) {
	if got := CountDays("2026-03-02", "2026-03-08"); got != 7 {
		t.Errorf("Expected 7 days, got %d", got)
	}
	if got := CountDays("2026-03-02", "2026-03-02"); got != 1 {
		t.Errorf("Expected 1 day, got %d", got)
	}
	if got := CountDays("bad", "2026-03-02"); got != 0 {
		t.Errorf("Expected 0 for bad input, got %d", got)
	}
}

func TestDateRangeValid(t *testing.T) {
	tests := []struct {
		name  string
		r     DateRange
		valid bool
	}{
		{"正常范围", DateRange{"2026-03-02", "2026-03-08"}, true},
		{"单日范围", DateRange{"2026-03-02", "2026-03-02"}, true},
		{"结束早于开始", DateRange{"2026-03-08", "2026-03-02"}, false},
		{"非法日期", DateRange{"2026-13-01", "2026-03-08"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
