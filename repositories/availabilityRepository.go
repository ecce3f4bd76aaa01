package repositories

import (
	"MediBook/httperr"
	"MediBook/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, window *models.Availability) error
	GetByID(ctx context.Context, id uint) (*models.Availability, error)
	Delete(ctx context.Context, id uint) error
	// ForDoctorOnDate returns all windows a doctor declared on one date.
	ForDoctorOnDate(ctx context.Context, doctorID uint, date string) ([]models.Availability, error)
	// ForDoctorBetween returns windows within [from, to] ordered by date.
	ForDoctorBetween(ctx context.Context, doctorID uint, from, to string) ([]models.Availability, error)
}

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Create(ctx context.Context, window *models.Availability) error {
	if err := r.db.WithContext(ctx).Create(window).Error; err != nil {
		return fmt.Errorf("failed to create availability window: %w", err)
	}
	return nil
}

func (r *availabilityRepository) GetByID(ctx context.Context, id uint) (*models.Availability, error) {
	var window models.Availability
	err := r.db.WithContext(ctx).First(&window, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get availability window: %w", err)
	}
	return &window, nil
}

func (r *availabilityRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Availability{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete availability window: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	return nil
}

func (r *availabilityRepository) ForDoctorOnDate(ctx context.Context, doctorID uint, date string) ([]models.Availability, error) {
	var windows []models.Availability
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list availability windows: %w", err)
	}
	return windows, nil
}

func (r *availabilityRepository) ForDoctorBetween(ctx context.Context, doctorID uint, from, to string) ([]models.Availability, error) {
	var windows []models.Availability
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND date >= ? AND date <= ?", doctorID, from, to).
		Order("date ASC, start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list availability windows: %w", err)
	}
	return windows, nil
}
