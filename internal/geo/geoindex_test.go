package geo

import (
	"context"
	"errors"
	"math"
	"testing"

	"smart-healthcare-backend/internal/models"
)

type stubSource struct {
	hospitals []models.Hospital
	err       error
}

func (s *stubSource) ActiveHospitals(_ context.Context) ([]models.Hospital, error) {
	return s.hospitals, s.err
}

func TestDistanceZeroAtSamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{40.0, -74.0},
		{-33.87, 151.21},
		{89.9, 179.9},
	}
	for _, p := range points {
		if d := Distance(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("Distance(%v, %v) to itself = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	d1 := Distance(40.0, -74.0, 51.5, -0.12)
	d2 := Distance(51.5, -0.12, 40.0, -74.0)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// A hospital at (40.0, -74.0) queried from (40.01, -74.01) is
	// roughly 1.5 km away.
	d := Distance(40.01, -74.01, 40.0, -74.0)
	if d < 1.0 || d > 2.0 {
		t.Errorf("Distance = %v km, want ~1.5 km", d)
	}
}

func TestQueryNearbyFiltersAndOrders(t *testing.T) {
	idx := NewIndex(&stubSource{hospitals: []models.Hospital{
		{ID: 1, Name: "Far", Latitude: 41.0, Longitude: -74.0},     // ~111 km north
		{ID: 2, Name: "Near", Latitude: 40.01, Longitude: -74.0},   // ~1.1 km
		{ID: 3, Name: "Middle", Latitude: 40.05, Longitude: -74.0}, // ~5.6 km
	}})

	matches, err := idx.QueryNearby(context.Background(), 40.0, -74.0, 10)
	if err != nil {
		t.Fatalf("QueryNearby failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Hospital.ID != 2 || matches[1].Hospital.ID != 3 {
		t.Errorf("wrong order: got IDs %d, %d", matches[0].Hospital.ID, matches[1].Hospital.ID)
	}
	for _, m := range matches {
		if m.DistanceKm > 10 {
			t.Errorf("hospital %d outside radius: %v km", m.Hospital.ID, m.DistanceKm)
		}
	}
	if matches[0].DistanceKm > matches[1].DistanceKm {
		t.Errorf("results not sorted ascending: %v then %v", matches[0].DistanceKm, matches[1].DistanceKm)
	}
}

func TestQueryNearbyTieBreaksByID(t *testing.T) {
	// Two hospitals at the identical location must come back in ID order.
	idx := NewIndex(&stubSource{hospitals: []models.Hospital{
		{ID: 7, Latitude: 40.0, Longitude: -74.0},
		{ID: 3, Latitude: 40.0, Longitude: -74.0},
	}})

	matches, err := idx.QueryNearby(context.Background(), 40.0, -74.0, 5)
	if err != nil {
		t.Fatalf("QueryNearby failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Hospital.ID != 3 || matches[1].Hospital.ID != 7 {
		t.Errorf("tie not broken by ID: got %d then %d", matches[0].Hospital.ID, matches[1].Hospital.ID)
	}
}

func TestQueryNearbyInvalidInput(t *testing.T) {
	idx := NewIndex(&stubSource{})

	cases := []struct {
		name     string
		lat, lon float64
		radius   float64
		want     error
	}{
		{"lat too big", 91, 0, 10, ErrInvalidCoordinates},
		{"lat too small", -91, 0, 10, ErrInvalidCoordinates},
		{"lon too big", 0, 181, 10, ErrInvalidCoordinates},
		{"lon too small", 0, -181, 10, ErrInvalidCoordinates},
		{"NaN lat", math.NaN(), 0, 10, ErrInvalidCoordinates},
		{"zero radius", 40, -74, 0, ErrInvalidRadius},
		{"negative radius", 40, -74, -5, ErrInvalidRadius},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := idx.QueryNearby(context.Background(), tc.lat, tc.lon, tc.radius)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestQueryNearbyEmptyIsNotError(t *testing.T) {
	idx := NewIndex(&stubSource{hospitals: []models.Hospital{
		{ID: 1, Latitude: -33.87, Longitude: 151.21}, // other side of the planet
	}})

	matches, err := idx.QueryNearby(context.Background(), 40.0, -74.0, 50)
	if err != nil {
		t.Fatalf("QueryNearby failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want none", len(matches))
	}
}
