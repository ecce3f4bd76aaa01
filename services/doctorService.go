package services

import (
	"MediBook/httperr"
	"MediBook/models"
	"MediBook/repositories"
	"context"
	"errors"
	"time"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type DoctorService struct {
	doctors        repositories.DoctorRepository
	availabilities repositories.AvailabilityRepository
	appointments   repositories.AppointmentRepository
}

func NewDoctorService(
	doctors repositories.DoctorRepository,
	availabilities repositories.AvailabilityRepository,
	appointments repositories.AppointmentRepository,
) *DoctorService {
	return &DoctorService{
		doctors:        doctors,
		availabilities: availabilities,
		appointments:   appointments,
	}
}

// DoctorPage is one page of search results. Total counts every match,
// not just the page.
type DoctorPage struct {
	Doctors []models.Doctor
	Page    int
	PerPage int
	Total   int64
}

// Search pages through bookable doctors: blacklisted ones are excluded
// unconditionally, even on an exact name match. q matches fullname or
// specialization, case-insensitively. Pages are 1-indexed.
func (s *DoctorService) Search(ctx context.Context, q string, page, perPage int) (*DoctorPage, error) {
	return s.search(ctx, q, page, perPage, false)
}

// AdminSearch is the admin variant: blacklisted doctors stay visible.
func (s *DoctorService) AdminSearch(ctx context.Context, q string, page, perPage int) (*DoctorPage, error) {
	return s.search(ctx, q, page, perPage, true)
}

func (s *DoctorService) search(ctx context.Context, q string, page, perPage int, includeBlacklisted bool) (*DoctorPage, error) {
	page, perPage = normalizePage(page, perPage)
	doctors, total, err := s.doctors.Search(ctx, q, page, perPage, includeBlacklisted)
	if err != nil {
		return nil, err
	}
	return &DoctorPage{Doctors: doctors, Page: page, PerPage: perPage, Total: total}, nil
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// AvailabilityNext7Days returns the doctor's windows from today through
// today+7 inclusive, ordered by date ascending.
func (s *DoctorService) AvailabilityNext7Days(ctx context.Context, doctorID uint) ([]models.Availability, error) {
	if _, err := s.doctors.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}
	from, to := next7DayRange(time.Now())
	return s.availabilities.ForDoctorBetween(ctx, doctorID, from, to)
}

func next7DayRange(now time.Time) (from, to string) {
	today := now
	return today.Format(models.DateLayout), today.AddDate(0, 0, 7).Format(models.DateLayout)
}

// DoctorSchedule is the doctor dashboard payload: assigned appointments
// plus the coming week's windows.
type DoctorSchedule struct {
	Doctor         models.Doctor         `json:"doctor"`
	Appointments   []models.Appointment  `json:"appointments"`
	Availabilities []models.Availability `json:"availabilities"`
}

// DoctorForUser resolves the acting user's doctor profile. A user
// without one cannot act as a doctor.
func (s *DoctorService) DoctorForUser(ctx context.Context, actor Actor) (*models.Doctor, error) {
	doctor, err := s.doctors.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, httperr.ErrNotFound) {
			return nil, httperr.ErrUnauthorized
		}
		return nil, err
	}
	return doctor, nil
}

// ScheduleForUser resolves the acting doctor user to its profile and
// assembles the dashboard.
func (s *DoctorService) ScheduleForUser(ctx context.Context, actor Actor) (*DoctorSchedule, error) {
	doctor, err := s.doctors.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointments.ForDoctor(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	from, to := next7DayRange(time.Now())
	windows, err := s.availabilities.ForDoctorBetween(ctx, doctor.ID, from, to)
	if err != nil {
		return nil, err
	}
	return &DoctorSchedule{Doctor: *doctor, Appointments: appointments, Availabilities: windows}, nil
}

// WindowInput is a doctor-declared availability window submission.
type WindowInput struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AddWindow declares a new availability window for the acting doctor.
// The window is half-open, so start must come strictly before end.
// Overlap with existing windows is allowed.
func (s *DoctorService) AddWindow(ctx context.Context, actor Actor, in WindowInput) (*models.Availability, error) {
	doctor, err := s.doctors.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	start, err := minuteOfDay(in.StartTime)
	if err != nil {
		return nil, httperr.ErrInvalidDateTime
	}
	end, err := minuteOfDay(in.EndTime)
	if err != nil {
		return nil, httperr.ErrInvalidDateTime
	}
	if start >= end {
		return nil, httperr.ErrInvalidDateTime
	}
	window := &models.Availability{
		DoctorID:  doctor.ID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if err := s.availabilities.Create(ctx, window); err != nil {
		return nil, err
	}
	return window, nil
}

// RemoveWindow deletes one of the acting doctor's own windows.
func (s *DoctorService) RemoveWindow(ctx context.Context, actor Actor, windowID uint) error {
	doctor, err := s.doctors.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	window, err := s.availabilities.GetByID(ctx, windowID)
	if err != nil {
		return err
	}
	if window.DoctorID != doctor.ID {
		return httperr.ErrUnauthorized
	}
	return s.availabilities.Delete(ctx, windowID)
}

// DoctorInput is an admin doctor-creation request.
type DoctorInput struct {
	FullName       string `json:"fullname"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`
	DepartmentID   *uint  `json:"department_id"`
	UserID         *int64 `json:"user_id"`
}

// CreateDoctor registers a new doctor profile (admin operation).
func (s *DoctorService) CreateDoctor(ctx context.Context, in DoctorInput) (*models.Doctor, error) {
	doctor := &models.Doctor{
		UserID:         in.UserID,
		FullName:       in.FullName,
		Specialization: in.Specialization,
		Bio:            in.Bio,
		DepartmentID:   in.DepartmentID,
	}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// SetBlacklisted flips a doctor's blacklist flag (admin operation).
// Blacklisted doctors vanish from patient-facing search but remain in
// admin listings.
func (s *DoctorService) SetBlacklisted(ctx context.Context, doctorID uint, blacklisted bool) error {
	return s.doctors.SetBlacklisted(ctx, doctorID, blacklisted)
}
