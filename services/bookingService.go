package services

import (
	"MediBook/httperr"
	"MediBook/models"
	"MediBook/repositories"
	"context"
	"errors"
	"fmt"
)

// BookingService implements the appointment booking core: a requested
// (doctor, date, time) slot must fall inside one of the doctor's
// availability windows and must not already be occupied, in any status.
type BookingService struct {
	doctors        repositories.DoctorRepository
	patients       repositories.PatientRepository
	availabilities repositories.AvailabilityRepository
	appointments   repositories.AppointmentRepository
	users          repositories.UserRepository
	notifier       *Notifier
}

func NewBookingService(
	doctors repositories.DoctorRepository,
	patients repositories.PatientRepository,
	availabilities repositories.AvailabilityRepository,
	appointments repositories.AppointmentRepository,
	users repositories.UserRepository,
	notifier *Notifier,
) *BookingService {
	return &BookingService{
		doctors:        doctors,
		patients:       patients,
		availabilities: availabilities,
		appointments:   appointments,
		users:          users,
		notifier:       notifier,
	}
}

// BookForUser resolves the acting patient user to its profile and books
// on its behalf.
func (s *BookingService) BookForUser(ctx context.Context, actor Actor, doctorID uint, date, clock string) (*models.Appointment, error) {
	patient, err := s.patients.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, httperr.ErrNotFound) {
			return nil, httperr.ErrUnauthorized
		}
		return nil, err
	}
	return s.Book(ctx, doctorID, patient.ID, date, clock)
}

// Book validates and creates an appointment. Checks run in a fixed
// order so error precedence is deterministic: doctor existence, window
// membership, slot occupancy. The blacklist flag is not re-checked
// here; the patient-facing search that supplies doctor ids filters it.
func (s *BookingService) Book(ctx context.Context, doctorID, patientID uint, date, clock string) (*models.Appointment, error) {
	if _, err := s.doctors.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}

	windows, err := s.availabilities.ForDoctorOnDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, httperr.ErrNotAvailable
	}

	ok, err := timeWithinWindows(windows, clock)
	if err != nil {
		return nil, httperr.ErrInvalidDateTime
	}
	if !ok {
		return nil, httperr.ErrNotAvailable
	}

	// Friendly pre-check; the unique index on (doctor_id, date, time)
	// is what actually prevents a concurrent double-booking.
	taken, err := s.appointments.SlotExists(ctx, doctorID, date, clock)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrSlotTaken
	}

	appointment := &models.Appointment{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      date,
		Time:      clock,
		Status:    models.StatusBooked,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.notifyPatient(ctx, patientID, date, clock)

	return appointment, nil
}

// notifyPatient queues the confirmation mail. Nothing here may fail the
// booking: missing profiles, missing email addresses and delivery
// errors are all swallowed.
func (s *BookingService) notifyPatient(ctx context.Context, patientID uint, date, clock string) {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil || patient == nil || patient.UserID == nil {
		return
	}
	user, err := s.users.GetUserByID(ctx, *patient.UserID)
	if err != nil || user == nil || user.Email == "" {
		return
	}
	s.notifier.Notify(Mail{
		To:      user.Email,
		Subject: "Appointment Confirmation",
		Body:    fmt.Sprintf("Your appointment is booked for %s at %s", date, clock),
	})
}
