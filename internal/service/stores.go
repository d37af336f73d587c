package service

import (
	"context"
	"time"

	"smart-healthcare-backend/internal/models"
)

// Store contracts consumed by the services. The gorm repositories in
// internal/repository satisfy them in production; tests substitute
// map-backed fakes. Lookup methods return repository.ErrNotFound for
// missing records.

// HospitalStore is the externally owned hospital read model.
type HospitalStore interface {
	ActiveHospitals(ctx context.Context) ([]models.Hospital, error)
	GetHospitalByID(ctx context.Context, id uint) (*models.Hospital, error)
}

// DoctorStore is the externally owned doctor read model.
type DoctorStore interface {
	GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	ListDoctorsByHospital(ctx context.Context, hospitalID uint) ([]models.Doctor, error)
	ListDoctorsBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error)
}

// PatientStore is the identity read model; only existence checks are needed.
type PatientStore interface {
	GetPatientByID(ctx context.Context, id uint) (*models.Patient, error)
}

// AppointmentStore persists appointments. CreateBooked must refuse an insert
// that would put a second BOOKED row on one (doctor, date, slot) tuple by
// returning repository.ErrSlotTaken.
type AppointmentStore interface {
	CreateBooked(ctx context.Context, appt *models.Appointment) error
	FindBookedSlot(ctx context.Context, doctorID uint, date time.Time, slot string) (*models.Appointment, error)
	GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id uint, status models.AppointmentStatus) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error)
}

// AuditStore records booking activity for the audit trail.
type AuditStore interface {
	CreateAuditLog(ctx context.Context, patientID *uint, action, details string) error
}
