package services

import (
	"MediBook/httperr"
	"MediBook/models"
	"MediBook/repositories"
	"context"
)

type TreatmentService struct {
	appointments repositories.AppointmentRepository
	treatments   repositories.TreatmentRepository
}

func NewTreatmentService(appointments repositories.AppointmentRepository, treatments repositories.TreatmentRepository) *TreatmentService {
	return &TreatmentService{appointments: appointments, treatments: treatments}
}

// TreatmentInput carries the free-text record a doctor attaches when
// completing an appointment.
type TreatmentInput struct {
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}

// Complete records a treatment for an appointment and marks it
// Completed. Only the appointment's own doctor may complete it, and
// only once.
func (s *TreatmentService) Complete(ctx context.Context, appointmentID, actingDoctorID uint, in TreatmentInput) (*models.Treatment, error) {
	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.DoctorID != actingDoctorID {
		return nil, httperr.ErrUnauthorized
	}

	if appointment.Status == models.StatusCompleted {
		return nil, httperr.ErrAlreadyCompleted
	}
	done, err := s.treatments.ExistsForAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, httperr.ErrAlreadyCompleted
	}

	treatment := &models.Treatment{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		Diagnosis:     in.Diagnosis,
		Prescription:  in.Prescription,
		Notes:         in.Notes,
	}
	if err := s.treatments.Create(ctx, treatment); err != nil {
		return nil, err
	}

	if err := s.appointments.UpdateStatus(ctx, appointment.ID, models.StatusCompleted); err != nil {
		return nil, err
	}
	return treatment, nil
}
