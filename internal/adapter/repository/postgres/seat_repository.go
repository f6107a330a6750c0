package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/railstack/railseat/internal/core/domain"
)

type SeatRepository struct {
	db *sql.DB
}

func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

// ListByTrain returns seats in layout order: coach letter, then
// numeric sequence. Allocation scans in exactly this order.
func (r *SeatRepository) ListByTrain(ctx context.Context, trainID uuid.UUID) ([]domain.Seat, error) {
	query := `
	SELECT id, train_id, seat_number, is_booked, booked_from, booked_to
	FROM seats
	WHERE train_id = $1
	ORDER BY SUBSTRING(seat_number, 1, 1), CAST(SUBSTRING(seat_number, 2) AS INTEGER)
	`

	rows, err := r.db.QueryContext(ctx, query, trainID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var seats []domain.Seat
	for rows.Next() {
		var seat domain.Seat
		var bookedFrom, bookedTo sql.NullString

		if err := rows.Scan(
			&seat.ID,
			&seat.TrainID,
			&seat.SeatNumber,
			&seat.IsBooked,
			&bookedFrom,
			&bookedTo,
		); err != nil {
			return nil, err
		}

		if bookedFrom.Valid {
			seat.BookedFrom = &bookedFrom.String
		}

		if bookedTo.Valid {
			seat.BookedTo = &bookedTo.String
		}

		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

// LastLabel finds the highest coach with seats and its highest
// sequence number, e.g. "C20" for a train filled through C20.
func (r *SeatRepository) LastLabel(ctx context.Context, trainID uuid.UUID) (string, error) {
	query := `
	SELECT SUBSTRING(seat_number, 1, 1) AS coach,
	       MAX(CAST(SUBSTRING(seat_number, 2) AS INTEGER)) AS max_seat
	FROM seats
	WHERE train_id = $1
	GROUP BY coach
	ORDER BY coach DESC
	LIMIT 1
	`

	var coach string
	var maxSeat int

	err := r.db.QueryRowContext(ctx, query, trainID).Scan(&coach, &maxSeat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", err
	}

	return fmt.Sprintf("%s%d", coach, maxSeat), nil
}

func (r *SeatRepository) InsertSeats(ctx context.Context, trainID uuid.UUID, labels []string, declaredTotal int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	query := `
	INSERT INTO seats (id, train_id, seat_number, is_booked)
	VALUES ($1, $2, $3, FALSE)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare seat statement: %w", err)
	}

	defer stmt.Close()

	for _, label := range labels {
		if _, err := stmt.ExecContext(ctx, uuid.New(), trainID, label); err != nil {
			return fmt.Errorf("failed to insert seat %s: %w", label, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE trains SET total_seats = $1 WHERE id = $2`, declaredTotal, trainID); err != nil {
		return fmt.Errorf("failed to update train capacity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteUnbooked removes up to toRemove unbooked seats, highest seat
// label first (plain lexicographic order, as the label column sorts),
// then reconciles the train's declared total to the rows that remain.
func (r *SeatRepository) DeleteUnbooked(ctx context.Context, trainID uuid.UUID, toRemove int) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	defer tx.Rollback()

	deleteQuery := `
	DELETE FROM seats
	WHERE train_id = $1
	AND is_booked = FALSE
	AND id IN (
		SELECT id FROM seats
		WHERE train_id = $1
		AND is_booked = FALSE
		ORDER BY seat_number DESC
		LIMIT $2
	)
	`

	if _, err := tx.ExecContext(ctx, deleteQuery, trainID, toRemove); err != nil {
		return 0, fmt.Errorf("failed to delete seats: %w", err)
	}

	var remaining int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM seats WHERE train_id = $1`, trainID).Scan(&remaining); err != nil {
		return 0, fmt.Errorf("failed to count remaining seats: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE trains SET total_seats = $1 WHERE id = $2`, remaining, trainID); err != nil {
		return 0, fmt.Errorf("failed to update train capacity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return remaining, nil
}
