package service

import "errors"

// Failure taxonomy surfaced to the HTTP boundary. None of these are retried
// inside the core; the handler layer maps each to a status code and a
// user-visible message.
var (
	// ErrValidation covers malformed or policy-violating booking input
	// (past date, bad time slot, unknown doctor or patient).
	ErrValidation = errors.New("validation failed")

	// ErrSlotConflict means a concurrent booking won the slot. The caller
	// must pick another time; the core never re-books silently.
	ErrSlotConflict = errors.New("time slot is already booked")

	// ErrAppointmentNotFound means the appointment ID is unknown.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrForbidden means the requester does not own the appointment.
	ErrForbidden = errors.New("appointment belongs to another patient")

	// ErrInvalidState means the requested transition is illegal, e.g.
	// cancelling an appointment that is already CANCELLED or COMPLETED.
	ErrInvalidState = errors.New("appointment is not in a bookable state for this transition")

	// ErrLocationUnavailable means the caller supplied no usable
	// coordinates for a nearest-hospital search.
	ErrLocationUnavailable = errors.New("usable coordinates are required")

	// ErrHospitalNotFound means the hospital ID is unknown.
	ErrHospitalNotFound = errors.New("hospital not found")

	// ErrDoctorNotFound means the doctor ID is unknown.
	ErrDoctorNotFound = errors.New("doctor not found")
)
