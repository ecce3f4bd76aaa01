package services

import (
	"MediBook/httperr"
	"MediBook/models"
	"context"
	"errors"
	"testing"
)

type cancelFixture struct {
	appointments *fakeAppointmentRepo
	patients     *fakePatientRepo
	service      *AppointmentService
}

func newCancelFixture() *cancelFixture {
	f := &cancelFixture{
		appointments: newFakeAppointmentRepo(),
		patients:     newFakePatientRepo(),
	}
	f.service = NewAppointmentService(f.appointments, f.patients)
	return f
}

func (f *cancelFixture) seedPatient(t *testing.T, userID int64) uint {
	t.Helper()
	patient := &models.Patient{UserID: &userID, FullName: "Pat Doe"}
	if err := f.patients.Create(context.Background(), patient); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return patient.ID
}

func (f *cancelFixture) seedAppointment(t *testing.T, patientID uint) uint {
	t.Helper()
	appointment := &models.Appointment{
		DoctorID:  1,
		PatientID: patientID,
		Date:      "2024-01-10",
		Time:      "09:30",
		Status:    models.StatusBooked,
	}
	if err := f.appointments.Create(context.Background(), appointment); err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return appointment.ID
}

func TestCancelByOwningPatient(t *testing.T) {
	f := newCancelFixture()
	patientID := f.seedPatient(t, 1)
	appointmentID := f.seedAppointment(t, patientID)

	actor := Actor{UserID: 1, Role: models.RolePatient}
	appointment, err := f.service.Cancel(context.Background(), appointmentID, actor)
	if err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if appointment.Status != models.StatusCancelled {
		t.Errorf("Status = %q, want %q", appointment.Status, models.StatusCancelled)
	}

	stored, err := f.appointments.GetByID(context.Background(), appointmentID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Status != models.StatusCancelled {
		t.Errorf("persisted Status = %q, want %q", stored.Status, models.StatusCancelled)
	}
}

func TestCancelByOtherPatient(t *testing.T) {
	f := newCancelFixture()
	owner := f.seedPatient(t, 1)
	f.seedPatient(t, 2)
	appointmentID := f.seedAppointment(t, owner)

	actor := Actor{UserID: 2, Role: models.RolePatient}
	_, err := f.service.Cancel(context.Background(), appointmentID, actor)
	if !errors.Is(err, httperr.ErrUnauthorized) {
		t.Errorf("Cancel() error = %v, want ErrUnauthorized", err)
	}

	stored, _ := f.appointments.GetByID(context.Background(), appointmentID)
	if stored.Status != models.StatusBooked {
		t.Errorf("Status changed to %q on unauthorized cancel", stored.Status)
	}
}

func TestCancelByAdmin(t *testing.T) {
	f := newCancelFixture()
	patientID := f.seedPatient(t, 1)
	appointmentID := f.seedAppointment(t, patientID)

	actor := Actor{UserID: 50, Role: models.RoleAdmin}
	appointment, err := f.service.Cancel(context.Background(), appointmentID, actor)
	if err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if appointment.Status != models.StatusCancelled {
		t.Errorf("Status = %q, want %q", appointment.Status, models.StatusCancelled)
	}
}

func TestCancelByDoctor(t *testing.T) {
	f := newCancelFixture()
	patientID := f.seedPatient(t, 1)
	appointmentID := f.seedAppointment(t, patientID)

	actor := Actor{UserID: 3, Role: models.RoleDoctor}
	_, err := f.service.Cancel(context.Background(), appointmentID, actor)
	if !errors.Is(err, httperr.ErrUnauthorized) {
		t.Errorf("Cancel() error = %v, want ErrUnauthorized", err)
	}
}

func TestCancelUnknownRole(t *testing.T) {
	f := newCancelFixture()
	patientID := f.seedPatient(t, 1)
	appointmentID := f.seedAppointment(t, patientID)

	actor := Actor{UserID: 1, Role: models.Role("auditor")}
	_, err := f.service.Cancel(context.Background(), appointmentID, actor)
	if !errors.Is(err, httperr.ErrUnauthorized) {
		t.Errorf("Cancel() error = %v, want ErrUnauthorized", err)
	}
}

func TestCancelMissingAppointment(t *testing.T) {
	f := newCancelFixture()
	f.seedPatient(t, 1)

	actor := Actor{UserID: 1, Role: models.RoleAdmin}
	_, err := f.service.Cancel(context.Background(), 404, actor)
	if !errors.Is(err, httperr.ErrNotFound) {
		t.Errorf("Cancel() error = %v, want ErrNotFound", err)
	}
}

func TestListForPatientReturnsOwnOnly(t *testing.T) {
	f := newCancelFixture()
	mine := f.seedPatient(t, 1)
	other := f.seedPatient(t, 2)
	f.seedAppointment(t, mine)

	otherAppointment := &models.Appointment{
		DoctorID: 1, PatientID: other, Date: "2024-01-11", Time: "09:30", Status: models.StatusBooked,
	}
	if err := f.appointments.Create(context.Background(), otherAppointment); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	actor := Actor{UserID: 1, Role: models.RolePatient}
	appointments, err := f.service.ListForPatient(context.Background(), actor)
	if err != nil {
		t.Fatalf("ListForPatient() error = %v", err)
	}
	if len(appointments) != 1 {
		t.Fatalf("got %d appointments, want 1", len(appointments))
	}
	if appointments[0].PatientID != mine {
		t.Errorf("PatientID = %d, want %d", appointments[0].PatientID, mine)
	}
}

func TestListForPatientWithoutProfile(t *testing.T) {
	f := newCancelFixture()

	actor := Actor{UserID: 9, Role: models.RolePatient}
	_, err := f.service.ListForPatient(context.Background(), actor)
	if !errors.Is(err, httperr.ErrUnauthorized) {
		t.Errorf("ListForPatient() error = %v, want ErrUnauthorized", err)
	}
}
