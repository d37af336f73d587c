package handler

import (
	"net/http"
	"testing"

	"smart-healthcare-backend/internal/models"
)

func testHospitals() []models.Hospital {
	return []models.Hospital{
		{ID: 1, Name: "City General", Latitude: 40.00, Longitude: -74.00, AvailableBeds: 12, IsActive: true},
		{ID: 2, Name: "Riverside Medical", Latitude: 40.05, Longitude: -74.00, AvailableBeds: 0, IsActive: true},
		{ID: 3, Name: "Far North Clinic", Latitude: 44.00, Longitude: -74.00, AvailableBeds: 5, IsActive: true},
	}
}

func TestGetAllHospitals(t *testing.T) {
	r := newTestRouter(testHospitals()...)

	w := doRequest(t, r, http.MethodGet, "/api/hospitals", "", 0)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].(map[string]interface{})
	if count := data["count"].(float64); count != 3 {
		t.Errorf("count = %v, want 3", count)
	}
}

func TestGetHospital(t *testing.T) {
	r := newTestRouter(testHospitals()...)

	w := doRequest(t, r, http.MethodGet, "/api/hospitals/1", "", 0)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].(map[string]interface{})
	if data["name"] != "City General" {
		t.Errorf("name = %v, want City General", data["name"])
	}

	w = doRequest(t, r, http.MethodGet, "/api/hospitals/99", "", 0)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing hospital: status = %d, want 404", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/api/hospitals/abc", "", 0)
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id: status = %d, want 400", w.Code)
	}
}

func TestFindNearest(t *testing.T) {
	r := newTestRouter(testHospitals()...)

	w := doRequest(t, r, http.MethodGet, "/api/hospitals/find-nearest?lat=40.0&lon=-74.0", "", 0)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].(map[string]interface{})

	// Hospital 3 is hundreds of km away and outside the default 50 km radius.
	if count := data["count"].(float64); count != 2 {
		t.Fatalf("count = %v, want 2", count)
	}
	hospitals := data["hospitals"].([]interface{})

	first := hospitals[0].(map[string]interface{})
	if first["hospital"].(map[string]interface{})["id"].(float64) != 1 {
		t.Errorf("nearest hospital id = %v, want 1", first["hospital"].(map[string]interface{})["id"])
	}
	if first["full"] != false {
		t.Errorf("nearest full = %v, want false", first["full"])
	}

	second := hospitals[1].(map[string]interface{})
	if second["full"] != true {
		t.Errorf("zero-bed hospital full = %v, want true", second["full"])
	}
}

func TestFindNearestRadius(t *testing.T) {
	r := newTestRouter(testHospitals()...)

	// A 3 km radius keeps only the co-located hospital.
	w := doRequest(t, r, http.MethodGet, "/api/hospitals/find-nearest?lat=40.0&lon=-74.0&radius=3", "", 0)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].(map[string]interface{})
	if count := data["count"].(float64); count != 1 {
		t.Errorf("count = %v, want 1", count)
	}
}

func TestFindNearestEmptyResult(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/hospitals/find-nearest?lat=40.0&lon=-74.0", "", 0)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].(map[string]interface{})
	if count := data["count"].(float64); count != 0 {
		t.Errorf("count = %v, want 0", count)
	}
}

func TestFindNearestBadInput(t *testing.T) {
	r := newTestRouter(testHospitals()...)

	tests := []struct {
		name string
		path string
	}{
		{"missing lat", "/api/hospitals/find-nearest?lon=-74.0"},
		{"missing lon", "/api/hospitals/find-nearest?lat=40.0"},
		{"non-numeric lat", "/api/hospitals/find-nearest?lat=abc&lon=-74.0"},
		{"out-of-range lat", "/api/hospitals/find-nearest?lat=91.0&lon=-74.0"},
		{"out-of-range lon", "/api/hospitals/find-nearest?lat=40.0&lon=-181.0"},
		{"negative radius", "/api/hospitals/find-nearest?lat=40.0&lon=-74.0&radius=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, tt.path, "", 0)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestListDoctors(t *testing.T) {
	r := newTestRouter(testHospitals()...)

	w := doRequest(t, r, http.MethodGet, "/api/doctors", "", 0)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].(map[string]interface{})
	if count := data["count"].(float64); count != 1 {
		t.Errorf("count = %v, want 1", count)
	}

	w = doRequest(t, r, http.MethodGet, "/api/doctors?specialization=Dermatology", "", 0)
	body = decodeBody(t, w.Body.Bytes())
	data = body["data"].(map[string]interface{})
	if count := data["count"].(float64); count != 0 {
		t.Errorf("filtered count = %v, want 0", count)
	}

	w = doRequest(t, r, http.MethodGet, "/api/doctors/10", "", 0)
	if w.Code != http.StatusOK {
		t.Errorf("get doctor: status = %d, want 200", w.Code)
	}
	w = doRequest(t, r, http.MethodGet, "/api/doctors/999", "", 0)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing doctor: status = %d, want 404", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/api/hospitals/1/doctors", "", 0)
	if w.Code != http.StatusOK {
		t.Errorf("hospital doctors: status = %d, want 200", w.Code)
	}
	w = doRequest(t, r, http.MethodGet, "/api/hospitals/99/doctors", "", 0)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing hospital's doctors: status = %d, want 404", w.Code)
	}
}
