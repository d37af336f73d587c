package service

import (
	"context"
	"errors"
	"fmt"

	"smart-healthcare-backend/internal/geo"
	"smart-healthcare-backend/internal/models"
	"smart-healthcare-backend/pkg/utils"

	"go.uber.org/zap"
)

// DefaultSearchRadiusKm is used when the caller omits the radius.
const DefaultSearchRadiusKm = 50

// HospitalResult is one ranked entry of an emergency nearest-hospital
// search. Full hospitals stay in the list so the caller never silently
// loses an option.
type HospitalResult struct {
	Hospital   models.Hospital `json:"hospital"`
	DistanceKm float64         `json:"distance_km"`
	Full       bool            `json:"full"`
}

// LocatorService turns a raw geolocation into a vetted, availability-aware
// ranked hospital list for the emergency workflow.
type LocatorService struct {
	index *geo.Index
}

func NewLocatorService(index *geo.Index) *LocatorService {
	return &LocatorService{index: index}
}

// FindNearest returns hospitals within radiusKm of the given point,
// nearest first. radiusKm <= 0 selects the 50 km default. An empty result
// is a valid "no hospitals in range" state, not an error.
func (s *LocatorService) FindNearest(ctx context.Context, lat, lon, radiusKm float64) ([]HospitalResult, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultSearchRadiusKm
	}

	matches, err := s.index.QueryNearby(ctx, lat, lon, radiusKm)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinates) {
			return nil, fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
		}
		return nil, err
	}

	results := make([]HospitalResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, HospitalResult{
			Hospital:   m.Hospital,
			DistanceKm: m.DistanceKm,
			Full:       m.Hospital.AvailableBeds == 0,
		})
	}

	utils.GetLogger().Debug("nearest hospital search",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Float64("radius_km", radiusKm),
		zap.Int("results", len(results)))
	return results, nil
}
