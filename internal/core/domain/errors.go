package domain

import "errors"

var (
	ErrTrainNotFound   = errors.New("train not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrNotAStop         = errors.New("station is not a stop on this train")
	ErrWrongDirection   = errors.New("destination does not come after source on this train")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidSeatCount = errors.New("total seats must be a positive integer")
	ErrLayoutExhausted  = errors.New("coach layout exhausted")

	ErrNoCapacity = errors.New("no seats available for this segment")

	ErrDuplicatePNR = errors.New("pnr already in use")
)
