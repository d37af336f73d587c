package service

import (
	"context"
	"errors"

	"smart-healthcare-backend/internal/models"
	"smart-healthcare-backend/internal/repository"
)

// DoctorService exposes the doctor read model for the discovery screens.
type DoctorService struct {
	doctorRepo   DoctorStore
	hospitalRepo HospitalStore
}

func NewDoctorService(doctorRepo DoctorStore, hospitalRepo HospitalStore) *DoctorService {
	return &DoctorService{
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
	}
}

// GetDoctorByID retrieves a doctor by ID
func (s *DoctorService) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetDoctorByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return doctor, nil
}

// ListDoctors retrieves doctors, optionally filtered by specialization
func (s *DoctorService) ListDoctors(ctx context.Context, specialization string) ([]models.Doctor, error) {
	if specialization != "" {
		return s.doctorRepo.ListDoctorsBySpecialization(ctx, specialization)
	}
	return s.doctorRepo.ListDoctors(ctx)
}

// ListDoctorsByHospital retrieves the doctors attached to a hospital
func (s *DoctorService) ListDoctorsByHospital(ctx context.Context, hospitalID uint) ([]models.Doctor, error) {
	if _, err := s.hospitalRepo.GetHospitalByID(ctx, hospitalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return s.doctorRepo.ListDoctorsByHospital(ctx, hospitalID)
}
