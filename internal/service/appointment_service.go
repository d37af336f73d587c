package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-healthcare-backend/internal/models"
	"smart-healthcare-backend/internal/repository"
)

// AppointmentService is the patient-facing coordinator: it enforces
// booking policy, delegates the atomic reservation to the SlotLedger and
// records the audit trail.
type AppointmentService struct {
	ledger      *SlotLedger
	doctorRepo  DoctorStore
	patientRepo PatientStore
	auditRepo   AuditStore
}

func NewAppointmentService(ledger *SlotLedger, doctorRepo DoctorStore, patientRepo PatientStore, auditRepo AuditStore) *AppointmentService {
	return &AppointmentService{
		ledger:      ledger,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
	}
}

// Book validates a booking intent and reserves the slot. Same-day bookings
// are allowed; past dates are not. A slot lost to a concurrent booking
// propagates ErrSlotConflict unchanged.
func (s *AppointmentService) Book(ctx context.Context, patientID, doctorID uint, date time.Time, slot string) (*models.Appointment, error) {
	if err := validateTimeSlot(slot); err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	date = date.Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, fmt.Errorf("%w: appointment date cannot be in the past", ErrValidation)
	}

	if _, err := s.doctorRepo.GetDoctorByID(ctx, doctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: doctor %d does not exist", ErrValidation, doctorID)
		}
		return nil, fmt.Errorf("failed to verify doctor %d: %w", doctorID, err)
	}
	if _, err := s.patientRepo.GetPatientByID(ctx, patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: patient %d does not exist", ErrValidation, patientID)
		}
		return nil, fmt.Errorf("failed to verify patient %d: %w", patientID, err)
	}

	appt, err := s.ledger.TryReserve(ctx, patientID, doctorID, date, slot)
	if err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Booked appointment %d with doctor %d on %s %s",
		appt.ID, doctorID, date.Format("2006-01-02"), slot)
	_ = s.auditRepo.CreateAuditLog(ctx, &patientID, "appointment_book", details)

	return appt, nil
}

// Cancel is a thin pass-through to the ledger's Release with identical
// failure semantics.
func (s *AppointmentService) Cancel(ctx context.Context, appointmentID, requesterID uint) (*models.Appointment, error) {
	appt, err := s.ledger.Release(ctx, appointmentID, requesterID)
	if err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Cancelled appointment %d", appointmentID)
	_ = s.auditRepo.CreateAuditLog(ctx, &requesterID, "appointment_cancel", details)

	return appt, nil
}

// GetByID retrieves a single appointment; only the owning patient may see it.
func (s *AppointmentService) GetByID(ctx context.Context, appointmentID, requesterID uint) (*models.Appointment, error) {
	appt, err := s.ledger.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if appt.PatientID != requesterID {
		return nil, ErrForbidden
	}
	return appt, nil
}

// ListForPatient returns the patient's full booking history, all statuses,
// ordered by date then time slot ascending.
func (s *AppointmentService) ListForPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	return s.ledger.appointments.ListByPatient(ctx, patientID)
}

// ListForDoctor returns a doctor's appointments ordered by date then time slot.
func (s *AppointmentService) ListForDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	if _, err := s.doctorRepo.GetDoctorByID(ctx, doctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return s.ledger.appointments.ListByDoctor(ctx, doctorID)
}

// validateTimeSlot requires a zero-padded 24h "HH:MM" slot so slots compare
// as given, without timezone math.
func validateTimeSlot(slot string) error {
	parsed, err := time.Parse("15:04", slot)
	if err != nil || parsed.Format("15:04") != slot {
		return fmt.Errorf("%w: time slot must be in HH:MM format", ErrValidation)
	}
	return nil
}
