package repository

import (
	"context"
	"errors"

	"smart-healthcare-backend/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetDoctorByID retrieves an active doctor by ID
func (r *DoctorRepository) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// ListDoctors retrieves all active doctors ordered by name
func (r *DoctorRepository) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&doctors).Error
	return doctors, err
}

// ListDoctorsByHospital retrieves active doctors attached to a hospital
func (r *DoctorRepository) ListDoctorsByHospital(ctx context.Context, hospitalID uint) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.WithContext(ctx).
		Where("hospital_id = ? AND is_active = ?", hospitalID, true).
		Order("name ASC").
		Find(&doctors).Error
	return doctors, err
}

// ListDoctorsBySpecialization retrieves active doctors with the given specialization
func (r *DoctorRepository) ListDoctorsBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.WithContext(ctx).
		Where("specialization = ? AND is_active = ?", specialization, true).
		Order("name ASC").
		Find(&doctors).Error
	return doctors, err
}
