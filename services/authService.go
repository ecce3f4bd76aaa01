package services

import (
	"MediBook/httperr"
	"MediBook/models"
	"MediBook/repositories"
	"MediBook/utils"
	"context"
	"errors"
	"fmt"
)

type AuthService struct {
	users    repositories.UserRepository
	patients repositories.PatientRepository
}

func NewAuthService(users repositories.UserRepository, patients repositories.PatientRepository) *AuthService {
	return &AuthService{users: users, patients: patients}
}

// Register creates a patient account: a user row plus a linked patient
// profile named after the username. Duplicate usernames are rejected
// before creation; the unique index backstops the race.
func (s *AuthService) Register(ctx context.Context, in utils.RegistrationInput) (*models.User, error) {
	if err := utils.ValidateRegistration(in); err != nil {
		return nil, httperr.BusinessError{Code: "invalid_input", Message: err.Error()}
	}

	exists, err := s.users.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrDuplicateUsername
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         models.RolePatient,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		UserID:   &user.ID,
		FullName: in.Username,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks credentials and returns the user on success.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, errors.New("invalid username or password")
	}
	return user, nil
}

// RequestPasswordReset issues a reset code for the address, but only
// when it belongs to a known account. An empty code with a nil error
// means no account matched; callers respond identically either way so
// the endpoint does not leak which addresses exist.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, email, code); err != nil {
		return "", err
	}
	return code, nil
}

// ResetPassword swaps a verified reset code for a new password hash.
func (s *AuthService) ResetPassword(ctx context.Context, email, resetCode, newPassword string) error {
	if err := utils.ValidatePasswordReset(resetCode, newPassword); err != nil {
		return httperr.BusinessError{Code: "invalid_input", Message: err.Error()}
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return httperr.ErrNotFound
	}

	stored, err := utils.GetResetCode(ctx, email)
	if err != nil {
		return err
	}
	if stored == nil || *stored != resetCode {
		return httperr.BusinessError{Code: "invalid_input", Message: "invalid reset code"}
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		return err
	}
	return utils.DeleteResetCode(ctx, email)
}
