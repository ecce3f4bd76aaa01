package services

import (
	"MediBook/httperr"
	"MediBook/models"
	"MediBook/repositories"
	"context"
	"errors"
)

// Actor is the authenticated principal an operation runs as.
type Actor struct {
	UserID int64
	Role   models.Role
}

type AppointmentService struct {
	appointments repositories.AppointmentRepository
	patients     repositories.PatientRepository
}

func NewAppointmentService(appointments repositories.AppointmentRepository, patients repositories.PatientRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments, patients: patients}
}

// Cancel marks an appointment Cancelled. Patients may cancel only their
// own appointments; admins any; doctors none. The slot stays consumed:
// the uniqueness of (doctor, date, time) ignores status.
func (s *AppointmentService) Cancel(ctx context.Context, appointmentID uint, actor Actor) (*models.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleAdmin:
		// always authorized
	case models.RolePatient:
		patient, err := s.patients.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, httperr.ErrNotFound) {
				return nil, httperr.ErrUnauthorized
			}
			return nil, err
		}
		if appointment.PatientID != patient.ID {
			return nil, httperr.ErrUnauthorized
		}
	case models.RoleDoctor:
		return nil, httperr.ErrUnauthorized
	default:
		return nil, httperr.ErrUnauthorized
	}

	if err := s.appointments.UpdateStatus(ctx, appointment.ID, models.StatusCancelled); err != nil {
		return nil, err
	}
	appointment.Status = models.StatusCancelled
	return appointment, nil
}

// ListForPatient returns the acting patient's own appointments, most
// recent date first.
func (s *AppointmentService) ListForPatient(ctx context.Context, actor Actor) ([]models.Appointment, error) {
	patient, err := s.patients.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, httperr.ErrNotFound) {
			return nil, httperr.ErrUnauthorized
		}
		return nil, err
	}
	return s.appointments.ForPatient(ctx, patient.ID)
}
