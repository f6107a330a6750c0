package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/railstack/railseat/internal/core/domain"
)

type TrainRepository interface {
	GetByID(ctx context.Context, trainID uuid.UUID) (*domain.Train, error)
	GetStops(ctx context.Context, trainID uuid.UUID) ([]domain.Stop, error)
}

type SeatRepository interface {
	// ListByTrain returns the train's seats ordered by seat label
	// ascending; allocation scans them in this order.
	ListByTrain(ctx context.Context, trainID uuid.UUID) ([]domain.Seat, error)

	// LastLabel returns the highest coach/sequence label assigned on
	// the train, or "" when the train has no seats.
	LastLabel(ctx context.Context, trainID uuid.UUID) (string, error)

	// InsertSeats adds free seats with the given labels and sets the
	// train's declared total in the same transaction.
	InsertSeats(ctx context.Context, trainID uuid.UUID, labels []string, declaredTotal int) error

	// DeleteUnbooked removes up to toRemove unbooked seats, highest
	// label first, reconciles the train's declared total to the rows
	// that remain, and returns that count. Booked seats are never
	// removed.
	DeleteUnbooked(ctx context.Context, trainID uuid.UUID, toRemove int) (int, error)
}

type BookingRepository interface {
	// Create commits an allocation: the seat's new booked interval and
	// the booking row succeed or fail together. A PNR collision is
	// reported as domain.ErrDuplicatePNR.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetForUser fetches a booking only when it belongs to userID;
	// missing and foreign bookings are indistinguishable.
	GetForUser(ctx context.Context, bookingID, userID uuid.UUID) (*domain.Booking, error)
}
