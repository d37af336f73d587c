package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"smart-healthcare-backend/internal/models"
	"smart-healthcare-backend/internal/repository"
	"smart-healthcare-backend/pkg/utils"

	"go.uber.org/zap"
)

// SlotLedger is the single authority on whether a (doctor, date, time slot)
// tuple is occupied. The check-and-create in TryReserve runs under a
// per-tuple lock, so reservations for different tuples never block each
// other, and two concurrent reservations for the same tuple resolve to
// exactly one success.
type SlotLedger struct {
	appointments AppointmentStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSlotLedger(appointments AppointmentStore) *SlotLedger {
	return &SlotLedger{
		appointments: appointments,
		locks:        make(map[string]*sync.Mutex),
	}
}

// slotKey identifies one reservation tuple. The date is reduced to its
// calendar day and the slot string is compared as given.
func slotKey(doctorID uint, date time.Time, slot string) string {
	return fmt.Sprintf("%d|%s|%s", doctorID, date.Format("2006-01-02"), slot)
}

// tupleLock returns the mutex guarding one reservation tuple, creating it
// on first use. Lock granularity is per tuple, never global.
func (l *SlotLedger) tupleLock(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	return lock
}

// TryReserve atomically checks the tuple for an existing BOOKED appointment
// and creates a new one when the slot is free. A lost race returns
// ErrSlotConflict; the caller must not retry the same slot.
func (l *SlotLedger) TryReserve(ctx context.Context, patientID, doctorID uint, date time.Time, slot string) (*models.Appointment, error) {
	key := slotKey(doctorID, date, slot)
	lock := l.tupleLock(key)
	lock.Lock()
	defer lock.Unlock()

	existing, err := l.appointments.FindBookedSlot(ctx, doctorID, date, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot %s: %w", key, err)
	}
	if existing != nil {
		return nil, ErrSlotConflict
	}

	appt := &models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		TimeSlot:  slot,
		Status:    models.StatusBooked,
	}
	if err := l.appointments.CreateBooked(ctx, appt); err != nil {
		// The store re-checks the tuple under a row lock; another process
		// may have taken the slot between our check and the insert.
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	utils.GetLogger().Info("slot reserved",
		zap.Uint("appointment_id", appt.ID),
		zap.String("slot", key))
	return appt, nil
}

// Release cancels a BOOKED appointment on behalf of its owning patient and
// frees the tuple for a new reservation. Cancellation is deliberately not
// idempotent: a second cancel fails with ErrInvalidState so client-side
// double submits surface instead of being masked.
func (l *SlotLedger) Release(ctx context.Context, appointmentID, requesterID uint) (*models.Appointment, error) {
	appt, err := l.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to load appointment %d: %w", appointmentID, err)
	}
	if appt.PatientID != requesterID {
		return nil, ErrForbidden
	}

	// Serialize against reservations on the same tuple so the status check
	// and the transition act as one unit.
	key := slotKey(appt.DoctorID, appt.Date, appt.TimeSlot)
	lock := l.tupleLock(key)
	lock.Lock()
	defer lock.Unlock()

	appt, err = l.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload appointment %d: %w", appointmentID, err)
	}
	if appt.Status != models.StatusBooked {
		return nil, ErrInvalidState
	}

	updated, err := l.appointments.UpdateStatus(ctx, appointmentID, models.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel appointment %d: %w", appointmentID, err)
	}

	utils.GetLogger().Info("slot released",
		zap.Uint("appointment_id", appointmentID),
		zap.String("slot", key))
	return updated, nil
}

// MarkCompleted performs the external completion transition. Only BOOKED
// appointments may complete; there is no route for this, the time-based
// completion process calls it directly.
func (l *SlotLedger) MarkCompleted(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	appt, err := l.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	key := slotKey(appt.DoctorID, appt.Date, appt.TimeSlot)
	lock := l.tupleLock(key)
	lock.Lock()
	defer lock.Unlock()

	appt, err = l.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusBooked {
		return nil, ErrInvalidState
	}
	return l.appointments.UpdateStatus(ctx, appointmentID, models.StatusCompleted)
}
