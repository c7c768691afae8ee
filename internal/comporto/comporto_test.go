package comporto

import (
	"testing"
	"time"

	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRemainingDays(t *testing.T) {
	cases := []struct {
		name    string
		budget  int
		counted []int
		want    int
	}{
		{"no absences", 180, nil, 180},
		{"single absence", 180, []int{45}, 135},
		{"multiple absences", 180, []int{30, 60, 20}, 70},
		{"exactly exhausted", 180, []int{180}, 0},
		{"over budget goes negative", 180, []int{100, 100}, -20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var absences []absence.Absence
			for _, n := range c.counted {
				absences = append(absences, absence.Absence{DaysCounted: n})
			}
			if got := RemainingDays(c.budget, absences); got != c.want {
				t.Errorf("RemainingDays(%d, %v) = %d, want %d", c.budget, c.counted, got, c.want)
			}
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		remaining int
		want      Status
	}{
		{-100, StatusExpired},
		{-1, StatusExpired},
		{0, StatusCritical},
		{5, StatusCritical},
		{10, StatusCritical},
		{11, StatusWarning},
		{20, StatusWarning},
		{30, StatusWarning},
		{31, StatusCompliant},
		{180, StatusCompliant},
	}
	for _, c := range cases {
		if got := Classify(c.remaining); got != c.want {
			t.Errorf("Classify(%d) = %v, want %v", c.remaining, got, c.want)
		}
	}
}

func TestStatusLabels(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusExpired, "Scaduto"},
		{StatusCritical, "Critico"},
		{StatusWarning, "Attenzione"},
		{StatusCompliant, "OK"},
	}
	for _, c := range cases {
		if got := c.status.Label(); got != c.want {
			t.Errorf("%v.Label() = %q, want %q", c.status, got, c.want)
		}
	}
}

func TestExportLabel(t *testing.T) {
	cases := []struct {
		remaining int
		want      string
	}{
		{-5, "Scaduto"},
		{-1, "Scaduto"},
		{0, "Attenzione"},
		{5, "Attenzione"},
		{10, "Attenzione"},
		{11, "Conforme"},
		{30, "Conforme"},
		{50, "Conforme"},
	}
	for _, c := range cases {
		if got := ExportLabel(c.remaining); got != c.want {
			t.Errorf("ExportLabel(%d) = %q, want %q", c.remaining, got, c.want)
		}
	}
}

// The three-way export rendering disagrees with the four-band classification
// for every value in 11..30: the bands say Warning while the export says
// Conforme. That divergence is load-bearing product behavior.
func TestExportLabelDivergesFromClassify(t *testing.T) {
	for remaining := 11; remaining <= 30; remaining++ {
		if got := Classify(remaining); got != StatusWarning {
			t.Fatalf("Classify(%d) = %v, want StatusWarning", remaining, got)
		}
		if got := ExportLabel(remaining); got != "Conforme" {
			t.Fatalf("ExportLabel(%d) = %q, want Conforme", remaining, got)
		}
	}
}

func TestCalendarDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day counts as one", date(2024, 3, 15), date(2024, 3, 15), 1},
		{"consecutive days", date(2024, 3, 15), date(2024, 3, 16), 2},
		{"full week", date(2024, 3, 11), date(2024, 3, 17), 7},
		{"reversed arguments", date(2024, 3, 17), date(2024, 3, 11), 7},
		{"across month boundary", date(2024, 1, 30), date(2024, 2, 2), 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CalendarDaysBetween(c.a, c.b); got != c.want {
				t.Errorf("CalendarDaysBetween(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestWorkingDaysBetween(t *testing.T) {
	// 2024-03-11 is a Monday.
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"one full week", date(2024, 3, 11), date(2024, 3, 17), 5},
		{"monday to friday", date(2024, 3, 11), date(2024, 3, 15), 5},
		{"weekend only", date(2024, 3, 16), date(2024, 3, 17), 0},
		{"single weekday", date(2024, 3, 13), date(2024, 3, 13), 1},
		{"single saturday", date(2024, 3, 16), date(2024, 3, 16), 0},
		{"end before start returns zero", date(2024, 3, 17), date(2024, 3, 11), 0},
		{"two full weeks", date(2024, 3, 11), date(2024, 3, 24), 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := WorkingDaysBetween(c.start, c.end); got != c.want {
				t.Errorf("WorkingDaysBetween(%v, %v) = %d, want %d", c.start, c.end, got, c.want)
			}
		})
	}
}
