package repositories

import (
	"MediBook/cache"
	"MediBook/httperr"
	"MediBook/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	DoctorCacheExpiry = 24 * time.Hour
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id uint) (*models.Doctor, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Doctor, error)
	// Search pages through doctors ordered by full name. Blacklisted
	// doctors are excluded unless includeBlacklisted is set (admin views).
	Search(ctx context.Context, q string, page, perPage int, includeBlacklisted bool) ([]models.Doctor, int64, error)
	SetBlacklisted(ctx context.Context, id uint, blacklisted bool) error
	Count(ctx context.Context) (int64, error)
}

type doctorRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDoctorRepository(db *gorm.DB, cache *cache.Cache) DoctorRepository {
	return &doctorRepository{db: db, cache: cache}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return r.cache.DeleteAll(ctx, "doctor_cache:*")
}

func (r *doctorRepository) GetByID(ctx context.Context, id uint) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getDoctorCacheKey(id)
	cachedDoctor, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedDoctor != "" {
		var doctor models.Doctor
		if err := json.Unmarshal([]byte(cachedDoctor), &doctor); err == nil {
			return &doctor, nil
		}
	} else if err != nil {
		log.Printf("Failed to get doctor from cache: %v", err)
	}

	var doctor models.Doctor
	err = r.db.WithContext(ctx).
		Preload("Department").
		First(&doctor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	doctorJSON, err := json.Marshal(doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal doctor: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, doctorJSON, DoctorCacheExpiry); err != nil {
		log.Printf("Failed to set doctor in cache: %v", err)
	}

	return &doctor, nil
}

func (r *doctorRepository) GetByUserID(ctx context.Context, userID int64) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor by user: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Search(ctx context.Context, q string, page, perPage int, includeBlacklisted bool) ([]models.Doctor, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Doctor{})
	if !includeBlacklisted {
		query = query.Where("is_blacklisted = ?", false)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("fullname ILIKE ? OR specialization ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count doctors: %w", err)
	}

	var doctors []models.Doctor
	err := query.
		Preload("Department").
		Order("fullname ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search doctors: %w", err)
	}

	return doctors, total, nil
}

func (r *doctorRepository) SetBlacklisted(ctx context.Context, id uint, blacklisted bool) error {
	result := r.db.WithContext(ctx).Model(&models.Doctor{}).Where("id = ?", id).
		Update("is_blacklisted", blacklisted)
	if result.Error != nil {
		return fmt.Errorf("failed to update blacklist flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	return r.cache.Delete(ctx, r.getDoctorCacheKey(id))
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Doctor{}).Count(&count).Error
	return count, err
}

func (r *doctorRepository) getDoctorCacheKey(id uint) string {
	return fmt.Sprintf("doctor_cache:%d", id)
}
