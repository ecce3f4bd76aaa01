package services

import (
	"MediBook/models"
	"context"
	"testing"
	"time"
)

func TestOverviewZeroFillsFourteenDays(t *testing.T) {
	doctors := newFakeDoctorRepo()
	patients := newFakePatientRepo()
	appointments := newFakeAppointmentRepo()
	service := NewStatsService(doctors, patients, appointments)
	service.now = func() time.Time {
		return time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	}

	ctx := context.Background()
	seed := []struct {
		date string
		time string
	}{
		{"2024-01-20", "09:00"},
		{"2024-01-20", "10:00"},
		{"2024-01-15", "09:00"},
		{"2024-01-01", "09:00"}, // outside the window
	}
	for _, s := range seed {
		appointment := &models.Appointment{
			DoctorID: 1, PatientID: 1, Date: s.date, Time: s.time, Status: models.StatusBooked,
		}
		if err := appointments.Create(ctx, appointment); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	overview, err := service.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if len(overview.PerDay) != statsWindowDays {
		t.Fatalf("got %d per-day entries, want %d", len(overview.PerDay), statsWindowDays)
	}
	if overview.PerDay[0].Date != "2024-01-07" {
		t.Errorf("first date = %q, want 2024-01-07", overview.PerDay[0].Date)
	}
	if overview.PerDay[len(overview.PerDay)-1].Date != "2024-01-20" {
		t.Errorf("last date = %q, want 2024-01-20", overview.PerDay[len(overview.PerDay)-1].Date)
	}

	counts := make(map[string]int64, len(overview.PerDay))
	for i, day := range overview.PerDay {
		counts[day.Date] = day.Count
		if i > 0 && overview.PerDay[i-1].Date >= day.Date {
			t.Errorf("dates not ascending at index %d: %q >= %q", i, overview.PerDay[i-1].Date, day.Date)
		}
	}
	if counts["2024-01-20"] != 2 {
		t.Errorf("count for 2024-01-20 = %d, want 2", counts["2024-01-20"])
	}
	if counts["2024-01-15"] != 1 {
		t.Errorf("count for 2024-01-15 = %d, want 1", counts["2024-01-15"])
	}
	if counts["2024-01-10"] != 0 {
		t.Errorf("count for empty day = %d, want 0", counts["2024-01-10"])
	}

	// Totals count everything, including appointments outside the chart window.
	if overview.TotalAppointments != 4 {
		t.Errorf("TotalAppointments = %d, want 4", overview.TotalAppointments)
	}
}

func TestOverviewEntityTotals(t *testing.T) {
	doctors := newFakeDoctorRepo()
	patients := newFakePatientRepo()
	appointments := newFakeAppointmentRepo()
	service := NewStatsService(doctors, patients, appointments)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := doctors.Create(ctx, &models.Doctor{FullName: "Doc", Specialization: "General"}); err != nil {
			t.Fatalf("create doctor: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := patients.Create(ctx, &models.Patient{FullName: "Pat"}); err != nil {
			t.Fatalf("create patient: %v", err)
		}
	}

	overview, err := service.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if overview.TotalDoctors != 3 {
		t.Errorf("TotalDoctors = %d, want 3", overview.TotalDoctors)
	}
	if overview.TotalPatients != 2 {
		t.Errorf("TotalPatients = %d, want 2", overview.TotalPatients)
	}
	if overview.TotalAppointments != 0 {
		t.Errorf("TotalAppointments = %d, want 0", overview.TotalAppointments)
	}
}
