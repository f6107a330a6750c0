package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/railstack/railseat/internal/core/domain"
	"github.com/railstack/railseat/internal/core/ports"
)

// InventoryService owns a train's seat set: initial generation and
// capacity resizes. It takes the same per-train lock as allocation
// because both mutate the same seats.
type InventoryService struct {
	trainRepo   ports.TrainRepository
	seatRepo    ports.SeatRepository
	redisClient *redis.Client
	locks       *TrainLocks
}

func NewInventoryService(
	trainRepo ports.TrainRepository,
	seatRepo ports.SeatRepository,
	redisClient *redis.Client,
	locks *TrainLocks,
) *InventoryService {
	return &InventoryService{
		trainRepo:   trainRepo,
		seatRepo:    seatRepo,
		redisClient: redisClient,
		locks:       locks,
	}
}

// GenerateSeats materializes the initial layout for a train: A1..A50,
// then coach B, stopping mid-coach once totalSeats is reached.
func (s *InventoryService) GenerateSeats(ctx context.Context, trainID uuid.UUID, totalSeats int) error {
	labels, err := domain.InitialLabels(totalSeats)
	if err != nil {
		return err
	}

	if _, err := s.trainRepo.GetByID(ctx, trainID); err != nil {
		return err
	}

	unlock := s.locks.Lock(trainID)
	defer unlock()

	if err := s.seatRepo.InsertSeats(ctx, trainID, labels, totalSeats); err != nil {
		return fmt.Errorf("failed to generate seats: %w", err)
	}

	s.invalidateSeatCache(ctx, trainID)
	return nil
}

// ResizeSeats grows or shrinks a train to newTotal and returns the
// total actually reached. Growth continues the coach/sequence layout
// from the highest assigned label. A shrink removes only unbooked
// seats, highest label first; when too few are unbooked the declared
// total is reconciled down to the seats that remain, which is why the
// returned total can exceed newTotal.
func (s *InventoryService) ResizeSeats(ctx context.Context, trainID uuid.UUID, newTotal int) (int, error) {
	if newTotal <= 0 {
		return 0, domain.ErrInvalidSeatCount
	}

	// The declared total is the resize baseline, so it must be read
	// inside the critical section: a concurrent resize committing
	// between read and write would leave the declared total out of
	// step with the materialized seat rows.
	unlock := s.locks.Lock(trainID)
	defer unlock()

	train, err := s.trainRepo.GetByID(ctx, trainID)
	if err != nil {
		return 0, err
	}

	current := train.TotalSeats

	switch {
	case newTotal > current:
		last, err := s.seatRepo.LastLabel(ctx, trainID)
		if err != nil {
			return 0, fmt.Errorf("failed to find last seat label: %w", err)
		}

		labels, err := domain.NextLabels(last, newTotal-current)
		if err != nil {
			return 0, err
		}

		if err := s.seatRepo.InsertSeats(ctx, trainID, labels, newTotal); err != nil {
			return 0, fmt.Errorf("failed to grow seats: %w", err)
		}

		s.invalidateSeatCache(ctx, trainID)
		return newTotal, nil

	case newTotal < current:
		actual, err := s.seatRepo.DeleteUnbooked(ctx, trainID, current-newTotal)
		if err != nil {
			return 0, fmt.Errorf("failed to shrink seats: %w", err)
		}

		s.invalidateSeatCache(ctx, trainID)
		return actual, nil

	default:
		return current, nil
	}
}

func (s *InventoryService) invalidateSeatCache(ctx context.Context, trainID uuid.UUID) {
	s.redisClient.Del(ctx, seatCacheKey(trainID))
}
