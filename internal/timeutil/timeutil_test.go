package timeutil

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	t.Parallel()

	value := time.Date(2024, 1, 9, 23, 59, 0, 0, time.Local)
	if got := DayKey(value); got != "20240109" {
		t.Fatalf("expected day key 20240109, got %q", got)
	}
}

func TestParseDayKey_RoundTrip(t *testing.T) {
	t.Parallel()

	parsed, err := ParseDayKey("20240109")
	if err != nil {
		t.Fatalf("parse day key: %v", err)
	}
	if got := DayKey(parsed); got != "20240109" {
		t.Fatalf("expected round trip to 20240109, got %q", got)
	}

	if _, err := ParseDayKey("2024-01-09"); err == nil {
		t.Fatalf("expected error for dashed date")
	}
}

func TestMinutesFromSeconds_HalfUpAtBoundary(t *testing.T) {
	t.Parallel()

	cases := map[int]int{
		0:    0,
		29:   0,
		30:   1,
		89:   1,
		90:   2,
		3600: 60,
		2670: 45,
	}
	for seconds, want := range cases {
		if got := MinutesFromSeconds(seconds); got != want {
			t.Fatalf("seconds=%d: expected %d minutes, got %d", seconds, want, got)
		}
	}
}

func TestSameDay(t *testing.T) {
	t.Parallel()

	a := time.Date(2024, 1, 1, 23, 59, 0, 0, time.Local)
	b := time.Date(2024, 1, 2, 0, 1, 0, 0, time.Local)
	if SameDay(a, b) {
		t.Fatalf("expected different days")
	}
	if !SameDay(a, StartOfDay(a)) {
		t.Fatalf("expected same day as its own start")
	}
}
