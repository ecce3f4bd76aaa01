package repositories

import (
	"MediBook/cache"
	"MediBook/database"
	"MediBook/httperr"
	"MediBook/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	// Create inserts a Booked appointment. A duplicate (doctor, date,
	// time) triple fails with httperr.ErrSlotTaken; the database unique
	// index is the authoritative guard against concurrent bookings.
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	// SlotExists reports whether any appointment, in any status,
	// occupies the (doctor, date, time) triple.
	SlotExists(ctx context.Context, doctorID uint, date, clock string) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	ForPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
	ForDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error)
	// CountPerDateSince returns per-date appointment counts for dates on
	// or after the given date.
	CountPerDateSince(ctx context.Context, date string) (map[string]int64, error)
	Count(ctx context.Context) (int64, error)
}

type appointmentRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAppointmentRepository(db *gorm.DB, cache *cache.Cache) AppointmentRepository {
	return &appointmentRepository{db: db, cache: cache}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	// Slot-scoped advisory lock. Narrows the pre-check/insert race so
	// concurrent bookings usually get the friendly SlotExists error; the
	// unique index still catches whatever slips through.
	lockKey := fmt.Sprintf("slot_lock:%d_%s_%s", appointment.DoctorID, appointment.Date, appointment.Time)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		log.Printf("Failed to acquire slot lock: %v", err)
	}
	if locked {
		defer func() {
			if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
				log.Printf("Failed to release slot lock: %v", err)
			}
		}()
	}

	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrSlotTaken
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := r.cache.DeleteAll(ctx, "schedule_cache:*"); err != nil {
		log.Printf("Failed to invalidate schedule cache: %v", err)
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, fullname, contact")
		}).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, fullname, specialization")
		}).
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) SlotExists(ctx context.Context, doctorID uint, date, clock string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time = ?", doctorID, date, clock).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check slot: %w", err)
	}
	return count > 0, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Appointment{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update appointment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	if err := r.cache.DeleteAll(ctx, "schedule_cache:*"); err != nil {
		log.Printf("Failed to invalidate schedule cache: %v", err)
	}
	return nil
}

func (r *appointmentRepository) ForPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, fullname, specialization")
		}).
		Where("patient_id = ?", patientID).
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patient appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ForDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, fullname, contact")
		}).
		Where("doctor_id = ?", doctorID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list doctor appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) CountPerDateSince(ctx context.Context, date string) (map[string]int64, error) {
	rows := []struct {
		Date  string
		Count int64
	}{}
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Select("date, COUNT(id) AS count").
		Where("date >= ?", date).
		Group("date").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments per date: %w", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Date] = row.Count
	}
	return counts, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).Count(&count).Error
	return count, err
}
