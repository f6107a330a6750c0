package domain

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

// Confirmed is the only status the allocation engine produces.
// Cancellation and edits are outside the engine.
const BookingConfirmed BookingStatus = "Confirmed"

type Booking struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TrainID         uuid.UUID
	SeatID          uuid.UUID
	Source          string
	Destination     string
	PassengerName   string
	PassengerAge    *int
	PassengerGender *string
	BookingDate     time.Time
	PNR             string
	Status          BookingStatus

	// Joined display fields, populated on lookup.
	TrainName  string
	SeatNumber string
}

// NewPNR returns a random reservation code: a 10-digit numeral with no
// leading zero. Uniqueness is enforced by the bookings table; callers
// regenerate on collision.
func NewPNR() string {
	n := 1_000_000_000 + rand.Int64N(9_000_000_000)
	return strconv.FormatInt(n, 10)
}
