package domain

import (
	"github.com/google/uuid"
)

// Seat is one physical seat on a train. A seat carries at most one
// current booked interval: BookedFrom/BookedTo hold the most recently
// committed segment and are overwritten by the next allocation that
// wins the seat. Earlier segments are not remembered; replacing these
// two fields with an ordered set of disjoint intervals is the natural
// extension point (see OverlapPolicy).
type Seat struct {
	ID         uuid.UUID
	TrainID    uuid.UUID
	SeatNumber string
	IsBooked   bool
	BookedFrom *string
	BookedTo   *string
}

func (s *Seat) IsFree() bool {
	return !s.IsBooked
}
