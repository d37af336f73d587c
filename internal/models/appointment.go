package models

import "time"

// AppointmentStatus is the closed set of appointment states. Statuses are
// never compared as free-form strings outside this set.
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "BOOKED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// Valid reports whether s is one of the known appointment states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusBooked, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment represents a patient's booking of a doctor's time slot.
// For a fixed (DoctorID, Date, TimeSlot) tuple at most one row may hold
// status BOOKED. Rows are never deleted; cancellation is a state
// transition so the booking history stays auditable.
type Appointment struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	PatientID uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint              `gorm:"not null;index:idx_doctor_slot,priority:1" json:"doctor_id"`
	Date      time.Time         `gorm:"type:date;not null;index:idx_doctor_slot,priority:2" json:"date"`
	TimeSlot  string            `gorm:"size:5;not null;index:idx_doctor_slot,priority:3" json:"time"`
	Status    AppointmentStatus `gorm:"type:enum('BOOKED','CANCELLED','COMPLETED');default:'BOOKED'" json:"status"`
	CreatedAt time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
