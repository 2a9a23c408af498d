package dates

import (
	"errors"
	"testing"
	"time"
)

func TestExpired(t *testing.T) {
	tests := []struct {
		name string
		date string
		now  time.Time
		want bool
	}{
		{"morning before cutoff", "2024-01-10", time.Date(2024, 1, 10, 9, 0, 0, 0, Riyadh), false},
		{"after cutoff same day", "2024-01-10", time.Date(2024, 1, 10, 11, 0, 0, 0, Riyadh), true},
		{"evening before exam day", "2024-01-10", time.Date(2024, 1, 9, 23, 0, 0, 0, Riyadh), false},
		{"exactly at cutoff", "2024-01-10", time.Date(2024, 1, 10, 10, 0, 0, 0, Riyadh), true},
		{"one second before cutoff", "2024-01-10", time.Date(2024, 1, 10, 9, 59, 59, 0, Riyadh), false},
		{"one second past cutoff", "2024-01-10", time.Date(2024, 1, 10, 10, 0, 1, 0, Riyadh), true},
		{"next day midnight", "2024-01-10", time.Date(2024, 1, 11, 0, 0, 0, 0, Riyadh), true},
		{"long past", "2023-05-01", time.Date(2024, 1, 10, 12, 0, 0, 0, Riyadh), true},
		{"far future", "2030-06-01", time.Date(2024, 1, 10, 12, 0, 0, 0, Riyadh), false},
		// 06:00 UTC is 09:00 in Riyadh, still before the cutoff.
		{"utc now before cutoff", "2024-01-10", time.Date(2024, 1, 10, 6, 0, 0, 0, time.UTC), false},
		// 08:00 UTC is 11:00 in Riyadh, past the cutoff.
		{"utc now past cutoff", "2024-01-10", time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expired(tt.date, tt.now)
			if err != nil {
				t.Fatalf("Expired(%q, %v) returned error: %v", tt.date, tt.now, err)
			}
			if got != tt.want {
				t.Errorf("Expired(%q, %v) = %v, want %v", tt.date, tt.now, got, tt.want)
			}
		})
	}
}

func TestExpiredInvalidDate(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, Riyadh)
	for _, date := range []string{"", "soon", "2024-13-01", "2024-02-30", "10/01/2024", "2024-1-5"} {
		if _, err := Expired(date, now); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Expired(%q) error = %v, want ErrInvalidDate", date, err)
		}
	}
}

func TestCutoffInstant(t *testing.T) {
	got, err := CutoffInstant("2024-01-10")
	if err != nil {
		t.Fatalf("CutoffInstant returned error: %v", err)
	}
	want := time.Date(2024, 1, 10, 10, 0, 0, 0, Riyadh)
	if !got.Equal(want) {
		t.Errorf("CutoffInstant(\"2024-01-10\") = %v, want %v", got, want)
	}
	// Same instant expressed in UTC: 10:00+03:00 is 07:00Z.
	if utc := got.UTC(); utc.Hour() != 7 {
		t.Errorf("cutoff in UTC = %v, want 07:00Z", utc)
	}
}

func TestRemainingDays(t *testing.T) {
	// Afternoon reference; time-of-day must not affect whole-day math.
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, Riyadh)

	tests := []struct {
		name string
		date string
		want int
	}{
		{"five days out", "2024-01-15", 5},
		{"same day", "2024-01-10", 0},
		{"tomorrow", "2024-01-11", 1},
		{"yesterday", "2024-01-09", -1},
		{"across month boundary", "2024-02-01", 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RemainingDays(tt.date, now)
			if !ok {
				t.Fatalf("RemainingDays(%q) reported unknown", tt.date)
			}
			if got != tt.want {
				t.Errorf("RemainingDays(%q) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestRemainingDaysUnknown(t *testing.T) {
	if _, ok := RemainingDays("not-a-date", time.Now()); ok {
		t.Error("RemainingDays with malformed date reported ok")
	}
}

func TestRemainingDaysUsesRiyadhCalendar(t *testing.T) {
	// 23:30 UTC on Jan 9 is already Jan 10 in Riyadh, so the exam is today.
	now := time.Date(2024, 1, 9, 23, 30, 0, 0, time.UTC)
	got, ok := RemainingDays("2024-01-10", now)
	if !ok {
		t.Fatal("RemainingDays reported unknown for a valid date")
	}
	if got != 0 {
		t.Errorf("RemainingDays at 23:30Z = %d, want 0 (already exam day in Riyadh)", got)
	}
}

func TestCountdown(t *testing.T) {
	tests := []struct {
		days int
		ok   bool
		want string
	}{
		{5, true, "5 days remaining"},
		{1, true, "1 day remaining"},
		{0, true, "today"},
		{-3, true, "passed"},
		{0, false, "unknown"},
	}

	for _, tt := range tests {
		if got := Countdown(tt.days, tt.ok); got != tt.want {
			t.Errorf("Countdown(%d, %v) = %q, want %q", tt.days, tt.ok, got, tt.want)
		}
	}
}
