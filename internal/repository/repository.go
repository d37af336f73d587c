package repository

import "errors"

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrSlotTaken is returned when an insert would violate the
	// one-BOOKED-appointment-per-slot invariant.
	ErrSlotTaken = errors.New("slot already booked")
)
