package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/railstack/railseat/internal/core/domain"
)

type TrainRepository struct {
	db *sql.DB
}

func NewTrainRepository(db *sql.DB) *TrainRepository {
	return &TrainRepository{db: db}
}

func (r *TrainRepository) GetByID(ctx context.Context, trainID uuid.UUID) (*domain.Train, error) {
	query := `
	SELECT id, name, source, destination, total_seats, created_at
	FROM trains
	WHERE id = $1
	`

	var train domain.Train
	err := r.db.QueryRowContext(ctx, query, trainID).Scan(
		&train.ID,
		&train.Name,
		&train.Source,
		&train.Destination,
		&train.TotalSeats,
		&train.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTrainNotFound
		}

		return nil, err
	}

	return &train, nil
}

func (r *TrainRepository) GetStops(ctx context.Context, trainID uuid.UUID) ([]domain.Stop, error) {
	query := `
	SELECT id, train_id, station_name, distance_from_source, stop_order
	FROM train_stops
	WHERE train_id = $1
	ORDER BY stop_order
	`

	rows, err := r.db.QueryContext(ctx, query, trainID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var stops []domain.Stop
	for rows.Next() {
		var stop domain.Stop
		if err := rows.Scan(
			&stop.ID,
			&stop.TrainID,
			&stop.StationName,
			&stop.DistanceFromSource,
			&stop.StopOrder,
		); err != nil {
			return nil, err
		}

		stops = append(stops, stop)
	}

	return stops, rows.Err()
}
