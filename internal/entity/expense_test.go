package entity

import (
	"testing"
	"time"
)

func TestExpenseInMonth(t *testing.T) {
	date := func(value string) time.Time {
		d, err := time.Parse(time.RFC3339, value)
		if err != nil {
			t.Fatalf("parse %q: %v", value, err)
		}
		return d
	}

	tests := []struct {
		name      string
		date      time.Time
		monthYear string
		want      bool
	}{
		{"inside month", date("2025-07-10T09:30:00Z"), "2025-07", true},
		{"other month", date("2025-06-30T23:59:59Z"), "2025-07", false},
		{"other year", date("2024-07-01T00:00:00Z"), "2025-07", false},
		{"empty filter matches everything", date("2023-01-01T00:00:00Z"), "", true},
		{"first instant of month", date("2025-07-01T00:00:00Z"), "2025-07", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Expense{Date: tt.date}
			if got := e.InMonth(tt.monthYear); got != tt.want {
				t.Errorf("InMonth(%q) = %v, want %v", tt.monthYear, got, tt.want)
			}
		})
	}
}

func TestIsValidMonthYear(t *testing.T) {
	valid := []string{"2025-07", "2024-12", "1999-01"}
	invalid := []string{"", "2025", "2025-13", "2025-00", "07-2025", "2025-7", "nope"}

	for _, m := range valid {
		if !IsValidMonthYear(m) {
			t.Errorf("IsValidMonthYear(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMonthYear(m) {
			t.Errorf("IsValidMonthYear(%q) = true, want false", m)
		}
	}
}
