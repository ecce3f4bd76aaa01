package repositories

import (
	"MediBook/httperr"
	"MediBook/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type TreatmentRepository interface {
	Create(ctx context.Context, treatment *models.Treatment) error
	ExistsForAppointment(ctx context.Context, appointmentID uint) (bool, error)
	ForPatient(ctx context.Context, patientID uint) ([]models.Treatment, error)
}

type treatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepository(db *gorm.DB) TreatmentRepository {
	return &treatmentRepository{db: db}
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *models.Treatment) error {
	if err := r.db.WithContext(ctx).Create(treatment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrAlreadyCompleted
		}
		return fmt.Errorf("failed to create treatment: %w", err)
	}
	return nil
}

func (r *treatmentRepository) ExistsForAppointment(ctx context.Context, appointmentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Treatment{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check treatment: %w", err)
	}
	return count > 0, nil
}

func (r *treatmentRepository) ForPatient(ctx context.Context, patientID uint) ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&treatments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}
	return treatments, nil
}
