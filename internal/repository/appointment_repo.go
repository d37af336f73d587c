package repository

import (
	"context"
	"errors"
	"time"

	"smart-healthcare-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// CreateBooked inserts a BOOKED appointment, re-checking the slot inside a
// transaction with the candidate row locked so that two processes racing on
// the same (doctor, date, slot) tuple cannot both insert.
func (r *AppointmentRepository) CreateBooked(ctx context.Context, appt *models.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Appointment
		err := tx.Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("doctor_id = ? AND date = ? AND time_slot = ? AND status = ?",
				appt.DoctorID, appt.Date, appt.TimeSlot, models.StatusBooked).
			Take(&existing).Error

		if err == nil {
			return ErrSlotTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		appt.Status = models.StatusBooked
		return tx.Create(appt).Error
	})
}

// FindBookedSlot returns the BOOKED appointment occupying the tuple, or nil
// when the slot is free.
func (r *AppointmentRepository) FindBookedSlot(ctx context.Context, doctorID uint, date time.Time, slot string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND date = ? AND time_slot = ? AND status = ?",
			doctorID, date, slot, models.StatusBooked).
		First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appt, nil
}

// GetAppointmentByID retrieves an appointment by ID
func (r *AppointmentRepository) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.WithContext(ctx).First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}

// UpdateStatus persists a status transition
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uint, status models.AppointmentStatus) (*models.Appointment, error) {
	var appt models.Appointment
	tx := r.db.WithContext(ctx).Begin()
	if err := tx.First(&appt, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	appt.Status = status
	if err := tx.Save(&appt).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	return &appt, tx.Commit().Error
}

// ListByPatient retrieves a patient's full appointment history, all
// statuses, ordered by date then time slot ascending
func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date ASC, time_slot ASC").
		Find(&appts).Error
	return appts, err
}

// ListByDoctor retrieves a doctor's appointments ordered by date then time slot
func (r *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("date ASC, time_slot ASC").
		Find(&appts).Error
	return appts, err
}
