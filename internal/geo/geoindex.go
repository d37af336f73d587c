package geo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"smart-healthcare-backend/internal/models"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidRadius      = errors.New("radius must be greater than zero")
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// HospitalSource provides the hospital snapshot an index query runs over.
// A fresh snapshot is taken on every call so bed counts are never stale
// beyond a single request.
type HospitalSource interface {
	ActiveHospitals(ctx context.Context) ([]models.Hospital, error)
}

// Match is a hospital paired with its great-circle distance from the
// query point.
type Match struct {
	Hospital   models.Hospital
	DistanceKm float64
}

// Index answers distance-bounded queries over the hospital read store.
// Queries are read-only and safe to run concurrently.
type Index struct {
	source HospitalSource
}

func NewIndex(source HospitalSource) *Index {
	return &Index{source: source}
}

// QueryNearby returns every hospital within radiusKm of the query point,
// ordered by ascending distance with ties broken by hospital ID.
func (idx *Index) QueryNearby(ctx context.Context, lat, lon, radiusKm float64) ([]Match, error) {
	if !ValidCoordinates(lat, lon) {
		return nil, fmt.Errorf("%w: lat=%v lon=%v", ErrInvalidCoordinates, lat, lon)
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radiusKm)
	}

	hospitals, err := idx.source.ActiveHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load hospitals: %w", err)
	}

	matches := make([]Match, 0, len(hospitals))
	for _, h := range hospitals {
		d := Distance(lat, lon, h.Latitude, h.Longitude)
		if d <= radiusKm {
			matches = append(matches, Match{Hospital: h, DistanceKm: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].Hospital.ID < matches[j].Hospital.ID
	})

	return matches, nil
}

// ValidCoordinates reports whether lat/lon form a usable geographic point.
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Distance computes the great-circle distance between two points in km
// using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
