package services

import (
	"MediBook/models"
	"MediBook/repositories"
	"context"
	"time"
)

// statsWindowDays is the trailing range of the admin appointment chart.
const statsWindowDays = 14

type StatsService struct {
	doctors      repositories.DoctorRepository
	patients     repositories.PatientRepository
	appointments repositories.AppointmentRepository
	now          func() time.Time
}

func NewStatsService(
	doctors repositories.DoctorRepository,
	patients repositories.PatientRepository,
	appointments repositories.AppointmentRepository,
) *StatsService {
	return &StatsService{
		doctors:      doctors,
		patients:     patients,
		appointments: appointments,
		now:          time.Now,
	}
}

// DayCount is one bar of the admin chart.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Overview is the admin dashboard payload.
type Overview struct {
	PerDay            []DayCount `json:"per_day"`
	TotalDoctors      int64      `json:"total_doctors"`
	TotalPatients     int64      `json:"total_patients"`
	TotalAppointments int64      `json:"total_appointments"`
}

// Overview aggregates appointment counts for the trailing 14 days
// (zero-filled, ascending) plus entity totals.
func (s *StatsService) Overview(ctx context.Context) (*Overview, error) {
	today := s.now()
	start := today.AddDate(0, 0, -(statsWindowDays - 1))

	counts, err := s.appointments.CountPerDateSince(ctx, start.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}

	perDay := make([]DayCount, 0, statsWindowDays)
	for i := 0; i < statsWindowDays; i++ {
		date := start.AddDate(0, 0, i).Format(models.DateLayout)
		perDay = append(perDay, DayCount{Date: date, Count: counts[date]})
	}

	totalDoctors, err := s.doctors.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPatients, err := s.patients.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalAppointments, err := s.appointments.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		PerDay:            perDay,
		TotalDoctors:      totalDoctors,
		TotalPatients:     totalPatients,
		TotalAppointments: totalAppointments,
	}, nil
}
