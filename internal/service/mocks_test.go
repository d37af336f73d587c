package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"smart-healthcare-backend/internal/models"
	"smart-healthcare-backend/internal/repository"
)

// Map-backed store fakes shared across the service tests.

type mockAppointmentStore struct {
	mu     sync.Mutex
	nextID uint
	appts  map[uint]*models.Appointment
}

func newMockAppointmentStore() *mockAppointmentStore {
	return &mockAppointmentStore{appts: make(map[uint]*models.Appointment)}
}

func (m *mockAppointmentStore) CreateBooked(_ context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.DoctorID == appt.DoctorID && a.Date.Equal(appt.Date) &&
			a.TimeSlot == appt.TimeSlot && a.Status == models.StatusBooked {
			return repository.ErrSlotTaken
		}
	}
	m.nextID++
	appt.ID = m.nextID
	appt.Status = models.StatusBooked
	appt.CreatedAt = time.Now()
	stored := *appt
	m.appts[appt.ID] = &stored
	return nil
}

func (m *mockAppointmentStore) FindBookedSlot(_ context.Context, doctorID uint, date time.Time, slot string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Date.Equal(date) &&
			a.TimeSlot == slot && a.Status == models.StatusBooked {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockAppointmentStore) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *a
	return &found, nil
}

func (m *mockAppointmentStore) UpdateStatus(_ context.Context, id uint, status models.AppointmentStatus) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	updated := *a
	return &updated, nil
}

func (m *mockAppointmentStore) ListByPatient(_ context.Context, patientID uint) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Appointment
	for _, a := range m.appts {
		if a.PatientID == patientID {
			result = append(result, *a)
		}
	}
	sortAppointments(result)
	return result, nil
}

func (m *mockAppointmentStore) ListByDoctor(_ context.Context, doctorID uint) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID {
			result = append(result, *a)
		}
	}
	sortAppointments(result)
	return result, nil
}

func sortAppointments(appts []models.Appointment) {
	sort.Slice(appts, func(i, j int) bool {
		if !appts[i].Date.Equal(appts[j].Date) {
			return appts[i].Date.Before(appts[j].Date)
		}
		return appts[i].TimeSlot < appts[j].TimeSlot
	})
}

type mockDoctorStore struct {
	doctors map[uint]*models.Doctor
}

func newMockDoctorStore(doctors ...*models.Doctor) *mockDoctorStore {
	m := &mockDoctorStore{doctors: make(map[uint]*models.Doctor)}
	for _, d := range doctors {
		m.doctors[d.ID] = d
	}
	return m
}

func (m *mockDoctorStore) GetDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return d, nil
}

func (m *mockDoctorStore) ListDoctors(_ context.Context) ([]models.Doctor, error) {
	return m.collect(func(*models.Doctor) bool { return true }), nil
}

func (m *mockDoctorStore) ListDoctorsByHospital(_ context.Context, hospitalID uint) ([]models.Doctor, error) {
	return m.collect(func(d *models.Doctor) bool { return d.HospitalID == hospitalID }), nil
}

func (m *mockDoctorStore) ListDoctorsBySpecialization(_ context.Context, specialization string) ([]models.Doctor, error) {
	return m.collect(func(d *models.Doctor) bool { return d.Specialization == specialization }), nil
}

func (m *mockDoctorStore) collect(keep func(*models.Doctor) bool) []models.Doctor {
	var result []models.Doctor
	for _, d := range m.doctors {
		if keep(d) {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

type mockPatientStore struct {
	patients map[uint]*models.Patient
}

func newMockPatientStore(patients ...*models.Patient) *mockPatientStore {
	m := &mockPatientStore{patients: make(map[uint]*models.Patient)}
	for _, p := range patients {
		m.patients[p.ID] = p
	}
	return m
}

func (m *mockPatientStore) GetPatientByID(_ context.Context, id uint) (*models.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

type mockHospitalStore struct {
	hospitals []models.Hospital
}

func (m *mockHospitalStore) ActiveHospitals(_ context.Context) ([]models.Hospital, error) {
	return m.hospitals, nil
}

func (m *mockHospitalStore) GetHospitalByID(_ context.Context, id uint) (*models.Hospital, error) {
	for i := range m.hospitals {
		if m.hospitals[i].ID == id {
			return &m.hospitals[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

type mockAuditStore struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func (m *mockAuditStore) CreateAuditLog(_ context.Context, patientID *uint, action, details string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, models.AuditLog{PatientID: patientID, Action: action, Details: details})
	return nil
}
