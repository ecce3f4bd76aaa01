package services

import (
	"MediBook/models"
	"testing"
)

func TestTimeWithinWindowsHalfOpen(t *testing.T) {
	windows := []models.Availability{
		{StartTime: "09:00", EndTime: "10:00"},
	}
	cases := []struct {
		clock string
		want  bool
	}{
		{"09:00", true},
		{"09:30", true},
		{"09:59", true},
		{"10:00", false},
		{"08:59", false},
		{"23:59", false},
	}
	for _, tc := range cases {
		got, err := timeWithinWindows(windows, tc.clock)
		if err != nil {
			t.Fatalf("timeWithinWindows(%q) error = %v", tc.clock, err)
		}
		if got != tc.want {
			t.Errorf("timeWithinWindows(%q) = %v, want %v", tc.clock, got, tc.want)
		}
	}
}

func TestTimeWithinWindowsSkipsUnparsableWindows(t *testing.T) {
	windows := []models.Availability{
		{StartTime: "garbage", EndTime: "10:00"},
		{StartTime: "14:00", EndTime: "15:00"},
	}
	got, err := timeWithinWindows(windows, "14:30")
	if err != nil {
		t.Fatalf("timeWithinWindows() error = %v", err)
	}
	if !got {
		t.Error("valid window ignored because a sibling window was unparsable")
	}
}

func TestTimeWithinWindowsMalformedClock(t *testing.T) {
	windows := []models.Availability{
		{StartTime: "09:00", EndTime: "10:00"},
	}
	if _, err := timeWithinWindows(windows, "25:99"); err == nil {
		t.Error("expected an error for a malformed clock value")
	}
}
