package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/railstack/railseat/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create writes the seat's new booked interval and the booking row in
// one transaction: a booking never exists without its seat updated,
// and vice versa. The seat's prior interval is overwritten.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	seatQuery := `
	UPDATE seats
	SET is_booked = TRUE, booked_from = $1, booked_to = $2
	WHERE id = $3
	`

	if _, err := tx.ExecContext(ctx, seatQuery, booking.Source, booking.Destination, booking.SeatID); err != nil {
		return fmt.Errorf("failed to update seat interval: %w", err)
	}

	bookingQuery := `
	INSERT INTO bookings
	(id, user_id, train_id, seat_id, source, destination, passenger_name, passenger_age, passenger_gender, booking_date, pnr, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = tx.ExecContext(ctx, bookingQuery,
		booking.ID,
		booking.UserID,
		booking.TrainID,
		booking.SeatID,
		booking.Source,
		booking.Destination,
		booking.PassengerName,
		booking.PassengerAge,
		booking.PassengerGender,
		booking.BookingDate,
		booking.PNR,
		booking.Status,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "pnr") {
			return domain.ErrDuplicatePNR
		}

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetForUser(ctx context.Context, bookingID, userID uuid.UUID) (*domain.Booking, error) {
	query := `
	SELECT b.id, b.user_id, b.train_id, b.seat_id, b.source, b.destination,
	       b.passenger_name, b.passenger_age, b.passenger_gender, b.booking_date, b.pnr, b.status,
	       t.name, s.seat_number
	FROM bookings b
	JOIN trains t ON b.train_id = t.id
	JOIN seats s ON b.seat_id = s.id
	WHERE b.id = $1 AND b.user_id = $2
	`

	var booking domain.Booking
	var age sql.NullInt64
	var gender sql.NullString

	err := r.db.QueryRowContext(ctx, query, bookingID, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TrainID,
		&booking.SeatID,
		&booking.Source,
		&booking.Destination,
		&booking.PassengerName,
		&age,
		&gender,
		&booking.BookingDate,
		&booking.PNR,
		&booking.Status,
		&booking.TrainName,
		&booking.SeatNumber,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}

		return nil, err
	}

	if age.Valid {
		v := int(age.Int64)
		booking.PassengerAge = &v
	}

	if gender.Valid {
		booking.PassengerGender = &gender.String
	}

	return &booking, nil
}
