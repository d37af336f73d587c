package service

import (
	"context"
	"errors"

	"smart-healthcare-backend/internal/models"
	"smart-healthcare-backend/internal/repository"
)

// HospitalService exposes the hospital read model to the portal.
type HospitalService struct {
	hospitalRepo HospitalStore
}

func NewHospitalService(hospitalRepo HospitalStore) *HospitalService {
	return &HospitalService{hospitalRepo: hospitalRepo}
}

// GetAllHospitals retrieves all active hospitals
func (s *HospitalService) GetAllHospitals(ctx context.Context) ([]models.Hospital, error) {
	return s.hospitalRepo.ActiveHospitals(ctx)
}

// GetHospitalByID retrieves a hospital by ID
func (s *HospitalService) GetHospitalByID(ctx context.Context, id uint) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.GetHospitalByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return hospital, nil
}
