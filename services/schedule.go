package services

import (
	"MediBook/models"
	"time"
)

// minuteOfDay parses an "HH:MM" clock string into minutes past midnight.
func minuteOfDay(clock string) (int, error) {
	t, err := time.Parse(models.TimeLayout, clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// timeWithinWindows reports whether clock falls inside any of the
// half-open windows [start_time, end_time). Windows with unparsable
// bounds are skipped.
func timeWithinWindows(windows []models.Availability, clock string) (bool, error) {
	at, err := minuteOfDay(clock)
	if err != nil {
		return false, err
	}
	for _, w := range windows {
		start, err := minuteOfDay(w.StartTime)
		if err != nil {
			continue
		}
		end, err := minuteOfDay(w.EndTime)
		if err != nil {
			continue
		}
		if start <= at && at < end {
			return true, nil
		}
	}
	return false, nil
}
