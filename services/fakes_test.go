package services

import (
	"MediBook/httperr"
	"MediBook/models"
	"context"
	"fmt"
	"sort"
	"strings"
)

// In-memory repository fakes. They mirror the documented contracts of
// the gorm implementations, including the unique-slot guarantee.

type fakeDoctorRepo struct {
	doctors map[uint]*models.Doctor
	nextID  uint
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uint]*models.Doctor)}
}

func (r *fakeDoctorRepo) Create(_ context.Context, doctor *models.Doctor) error {
	r.nextID++
	doctor.ID = r.nextID
	copied := *doctor
	r.doctors[doctor.ID] = &copied
	return nil
}

func (r *fakeDoctorRepo) GetByID(_ context.Context, id uint) (*models.Doctor, error) {
	doctor, ok := r.doctors[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	copied := *doctor
	return &copied, nil
}

func (r *fakeDoctorRepo) GetByUserID(_ context.Context, userID int64) (*models.Doctor, error) {
	for _, doctor := range r.doctors {
		if doctor.UserID != nil && *doctor.UserID == userID {
			copied := *doctor
			return &copied, nil
		}
	}
	return nil, httperr.ErrNotFound
}

func (r *fakeDoctorRepo) Search(_ context.Context, q string, page, perPage int, includeBlacklisted bool) ([]models.Doctor, int64, error) {
	var matches []models.Doctor
	needle := strings.ToLower(q)
	for _, doctor := range r.doctors {
		if doctor.IsBlacklisted && !includeBlacklisted {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(doctor.FullName), needle) &&
			!strings.Contains(strings.ToLower(doctor.Specialization), needle) {
			continue
		}
		matches = append(matches, *doctor)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].FullName < matches[j].FullName })

	total := int64(len(matches))
	start := (page - 1) * perPage
	if start > len(matches) {
		start = len(matches)
	}
	end := start + perPage
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], total, nil
}

func (r *fakeDoctorRepo) SetBlacklisted(_ context.Context, id uint, blacklisted bool) error {
	doctor, ok := r.doctors[id]
	if !ok {
		return httperr.ErrNotFound
	}
	doctor.IsBlacklisted = blacklisted
	return nil
}

func (r *fakeDoctorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.doctors)), nil
}

type fakePatientRepo struct {
	patients map[uint]*models.Patient
	nextID   uint
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uint]*models.Patient)}
}

func (r *fakePatientRepo) Create(_ context.Context, patient *models.Patient) error {
	r.nextID++
	patient.ID = r.nextID
	copied := *patient
	r.patients[patient.ID] = &copied
	return nil
}

func (r *fakePatientRepo) GetByID(_ context.Context, id uint) (*models.Patient, error) {
	patient, ok := r.patients[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	copied := *patient
	return &copied, nil
}

func (r *fakePatientRepo) GetByUserID(_ context.Context, userID int64) (*models.Patient, error) {
	for _, patient := range r.patients {
		if patient.UserID != nil && *patient.UserID == userID {
			copied := *patient
			return &copied, nil
		}
	}
	return nil, httperr.ErrNotFound
}

func (r *fakePatientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.patients)), nil
}

type fakeAvailabilityRepo struct {
	windows map[uint]*models.Availability
	nextID  uint
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{windows: make(map[uint]*models.Availability)}
}

func (r *fakeAvailabilityRepo) Create(_ context.Context, window *models.Availability) error {
	r.nextID++
	window.ID = r.nextID
	copied := *window
	r.windows[window.ID] = &copied
	return nil
}

func (r *fakeAvailabilityRepo) GetByID(_ context.Context, id uint) (*models.Availability, error) {
	window, ok := r.windows[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	copied := *window
	return &copied, nil
}

func (r *fakeAvailabilityRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.windows[id]; !ok {
		return httperr.ErrNotFound
	}
	delete(r.windows, id)
	return nil
}

func (r *fakeAvailabilityRepo) ForDoctorOnDate(_ context.Context, doctorID uint, date string) ([]models.Availability, error) {
	var out []models.Availability
	for _, w := range r.windows {
		if w.DoctorID == doctorID && w.Date == date {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (r *fakeAvailabilityRepo) ForDoctorBetween(_ context.Context, doctorID uint, from, to string) ([]models.Availability, error) {
	var out []models.Availability
	for _, w := range r.windows {
		if w.DoctorID == doctorID && w.Date >= from && w.Date <= to {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

type fakeAppointmentRepo struct {
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uint]*models.Appointment)}
}

func slotKey(doctorID uint, date, clock string) string {
	return fmt.Sprintf("%d|%s|%s", doctorID, date, clock)
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *models.Appointment) error {
	// Same guarantee as the composite unique index: occupancy is
	// permanent and status-blind.
	for _, existing := range r.appointments {
		if slotKey(existing.DoctorID, existing.Date, existing.Time) ==
			slotKey(appointment.DoctorID, appointment.Date, appointment.Time) {
			return httperr.ErrSlotTaken
		}
	}
	r.nextID++
	appointment.ID = r.nextID
	copied := *appointment
	r.appointments[appointment.ID] = &copied
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) SlotExists(_ context.Context, doctorID uint, date, clock string) (bool, error) {
	for _, a := range r.appointments {
		if a.DoctorID == doctorID && a.Date == date && a.Time == clock {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	appointment, ok := r.appointments[id]
	if !ok {
		return httperr.ErrNotFound
	}
	appointment.Status = status
	return nil
}

func (r *fakeAppointmentRepo) ForPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out, nil
}

func (r *fakeAppointmentRepo) ForDoctor(_ context.Context, doctorID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r *fakeAppointmentRepo) CountPerDateSince(_ context.Context, date string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, a := range r.appointments {
		if a.Date >= date {
			counts[a.Date]++
		}
	}
	return counts, nil
}

func (r *fakeAppointmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.appointments)), nil
}

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, userID int64) (*models.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return httperr.ErrDuplicateUsername
		}
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateUserPassword(_ context.Context, userID int64, hashedPassword string) error {
	u, ok := r.users[userID]
	if !ok {
		return httperr.ErrNotFound
	}
	u.PasswordHash = hashedPassword
	return nil
}

func (r *fakeUserRepo) DeleteUserCache(_ context.Context, _ string) error {
	return nil
}

type fakeTreatmentRepo struct {
	byAppointment map[uint]*models.Treatment
	nextID        uint
}

func newFakeTreatmentRepo() *fakeTreatmentRepo {
	return &fakeTreatmentRepo{byAppointment: make(map[uint]*models.Treatment)}
}

func (r *fakeTreatmentRepo) Create(_ context.Context, treatment *models.Treatment) error {
	if _, ok := r.byAppointment[treatment.AppointmentID]; ok {
		return httperr.ErrAlreadyCompleted
	}
	r.nextID++
	treatment.ID = r.nextID
	copied := *treatment
	r.byAppointment[treatment.AppointmentID] = &copied
	return nil
}

func (r *fakeTreatmentRepo) ExistsForAppointment(_ context.Context, appointmentID uint) (bool, error) {
	_, ok := r.byAppointment[appointmentID]
	return ok, nil
}

func (r *fakeTreatmentRepo) ForPatient(_ context.Context, patientID uint) ([]models.Treatment, error) {
	var out []models.Treatment
	for _, t := range r.byAppointment {
		if t.PatientID == patientID {
			out = append(out, *t)
		}
	}
	return out, nil
}
