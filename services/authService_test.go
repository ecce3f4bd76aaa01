package services

import (
	"MediBook/httperr"
	"MediBook/models"
	"MediBook/utils"
	"context"
	"errors"
	"testing"
)

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakePatientRepo) {
	users := newFakeUserRepo()
	patients := newFakePatientRepo()
	return NewAuthService(users, patients), users, patients
}

func TestRegisterCreatesUserAndPatientProfile(t *testing.T) {
	service, _, patients := newAuthFixture()

	in := utils.RegistrationInput{
		Username: "newpatient",
		Email:    "new@example.com",
		Password: "Str0ng!pass",
	}
	user, err := service.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Role != models.RolePatient {
		t.Errorf("Role = %q, want %q", user.Role, models.RolePatient)
	}
	if user.PasswordHash == "Str0ng!pass" || user.PasswordHash == "" {
		t.Error("password was not hashed")
	}

	patient, err := patients.GetByUserID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("no patient profile created: %v", err)
	}
	if patient.FullName != "newpatient" {
		t.Errorf("patient FullName = %q, want username", patient.FullName)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service, _, _ := newAuthFixture()

	in := utils.RegistrationInput{
		Username: "newpatient",
		Email:    "new@example.com",
		Password: "Str0ng!pass",
	}
	if _, err := service.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register(): %v", err)
	}

	in.Email = "other@example.com"
	_, err := service.Register(context.Background(), in)
	if !errors.Is(err, httperr.ErrDuplicateUsername) {
		t.Errorf("second Register() error = %v, want ErrDuplicateUsername", err)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	service, users, _ := newAuthFixture()

	in := utils.RegistrationInput{
		Username: "newpatient",
		Email:    "new@example.com",
		Password: "weak",
	}
	_, err := service.Register(context.Background(), in)
	if _, ok := httperr.AsBusiness(err); !ok {
		t.Fatalf("Register() error = %v, want a business error", err)
	}

	exists, _ := users.UsernameExists(context.Background(), "newpatient")
	if exists {
		t.Error("user created despite failed validation")
	}
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	service, _, _ := newAuthFixture()

	in := utils.RegistrationInput{
		Username: "newpatient",
		Email:    "new@example.com",
		Password: "Str0ng!pass",
	}
	if _, err := service.Register(context.Background(), in); err != nil {
		t.Fatalf("Register(): %v", err)
	}

	// No account matches, so no code is issued and no error leaks.
	code, err := service.RequestPasswordReset(context.Background(), "stranger@example.com")
	if err != nil {
		t.Fatalf("RequestPasswordReset() error = %v", err)
	}
	if code != "" {
		t.Errorf("code issued for an unknown address: %q", code)
	}
}

func TestAuthenticate(t *testing.T) {
	service, _, _ := newAuthFixture()

	in := utils.RegistrationInput{
		Username: "newpatient",
		Email:    "new@example.com",
		Password: "Str0ng!pass",
	}
	if _, err := service.Register(context.Background(), in); err != nil {
		t.Fatalf("Register(): %v", err)
	}

	user, err := service.Authenticate(context.Background(), "newpatient", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if user.Username != "newpatient" {
		t.Errorf("Username = %q", user.Username)
	}

	if _, err := service.Authenticate(context.Background(), "newpatient", "wrongpass"); err == nil {
		t.Error("Authenticate() accepted a wrong password")
	}
	if _, err := service.Authenticate(context.Background(), "nobody", "Str0ng!pass"); err == nil {
		t.Error("Authenticate() accepted an unknown username")
	}
}
