package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/railstack/railseat/internal/core/domain"
	"github.com/railstack/railseat/internal/core/ports"
)

// maxPNRAttempts bounds regeneration when a generated PNR collides
// with an existing booking.
const maxPNRAttempts = 5

const seatCacheTTL = 30 * time.Second

type AllocateSeatRequest struct {
	UserID          string  `json:"user_id"`
	TrainID         string  `json:"train_id"`
	Source          string  `json:"source"`
	Destination     string  `json:"destination"`
	PassengerName   string  `json:"passenger_name"`
	PassengerAge    *int    `json:"passenger_age,omitempty"`
	PassengerGender *string `json:"passenger_gender,omitempty"`
}

type AllocateSeatResponse struct {
	BookingID   string `json:"booking_id"`
	TrainName   string `json:"train_name"`
	SeatNumber  string `json:"seat_number"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	PNR         string `json:"pnr"`
	Status      string `json:"status"`
}

type SeatView struct {
	SeatNumber string  `json:"seat_number"`
	IsBooked   bool    `json:"is_booked"`
	BookedFrom *string `json:"booked_from,omitempty"`
	BookedTo   *string `json:"booked_to,omitempty"`
}

// AllocationService coordinates one allocation attempt:
// validate the segment against the route, lock the train's seat set,
// scan seats in label order for the first one the overlap policy
// accepts, and commit the seat interval plus the booking row as a
// single transaction.
type AllocationService struct {
	trainRepo   ports.TrainRepository
	seatRepo    ports.SeatRepository
	bookingRepo ports.BookingRepository
	redisClient *redis.Client
	locks       *TrainLocks
	overlap     domain.OverlapPolicy
}

type AllocationOption func(*AllocationService)

// WithOverlapPolicy swaps the default lexicographic overlap test, e.g.
// for the route-order variant.
func WithOverlapPolicy(p domain.OverlapPolicy) AllocationOption {
	return func(s *AllocationService) {
		s.overlap = p
	}
}

func NewAllocationService(
	trainRepo ports.TrainRepository,
	seatRepo ports.SeatRepository,
	bookingRepo ports.BookingRepository,
	redisClient *redis.Client,
	locks *TrainLocks,
	opts ...AllocationOption,
) *AllocationService {
	s := &AllocationService{
		trainRepo:   trainRepo,
		seatRepo:    seatRepo,
		bookingRepo: bookingRepo,
		redisClient: redisClient,
		locks:       locks,
		overlap:     domain.LexicalOverlap{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ValidateSegment checks that source and destination are stops on the
// train and that destination comes after source in travel direction.
func (s *AllocationService) ValidateSegment(ctx context.Context, trainID uuid.UUID, source, destination string) error {
	stops, err := s.trainRepo.GetStops(ctx, trainID)
	if err != nil {
		return err
	}

	route := domain.NewRoute(stops)

	srcOrder, ok := route.StopOrder(source)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotAStop, source)
	}

	dstOrder, ok := route.StopOrder(destination)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotAStop, destination)
	}

	if srcOrder >= dstOrder {
		return domain.ErrWrongDirection
	}

	return nil
}

func (s *AllocationService) AllocateSeat(ctx context.Context, req AllocateSeatRequest) (*AllocateSeatResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrInvalidInput)
	}

	trainID, err := uuid.Parse(req.TrainID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid train id", domain.ErrInvalidInput)
	}

	if len(req.PassengerName) < 2 {
		return nil, fmt.Errorf("%w: passenger name must be at least 2 characters", domain.ErrInvalidInput)
	}

	// Train existence and segment checks run before the lock:
	// a rejected request must never contend for the seat set. The
	// train row only contributes its name to the response; the seat
	// state that matters is re-read inside the critical section.
	train, err := s.trainRepo.GetByID(ctx, trainID)
	if err != nil {
		return nil, err
	}

	if err := s.ValidateSegment(ctx, trainID, req.Source, req.Destination); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(trainID)
	defer unlock()

	seats, err := s.seatRepo.ListByTrain(ctx, trainID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}

	var selected *domain.Seat
	for i := range seats {
		if s.overlap.CanShare(&seats[i], req.Source, req.Destination) {
			selected = &seats[i]
			break
		}
	}

	if selected == nil {
		return nil, domain.ErrNoCapacity
	}

	booking := &domain.Booking{
		ID:              uuid.New(),
		UserID:          userID,
		TrainID:         trainID,
		SeatID:          selected.ID,
		Source:          req.Source,
		Destination:     req.Destination,
		PassengerName:   req.PassengerName,
		PassengerAge:    req.PassengerAge,
		PassengerGender: req.PassengerGender,
		BookingDate:     time.Now(),
		Status:          domain.BookingConfirmed,
	}

	for attempt := 0; ; attempt++ {
		booking.PNR = domain.NewPNR()

		err = s.bookingRepo.Create(ctx, booking)
		if err == nil {
			break
		}

		if errors.Is(err, domain.ErrDuplicatePNR) && attempt+1 < maxPNRAttempts {
			continue
		}

		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidateSeatCache(ctx, trainID)

	return &AllocateSeatResponse{
		BookingID:   booking.ID.String(),
		TrainName:   train.Name,
		SeatNumber:  selected.SeatNumber,
		Source:      booking.Source,
		Destination: booking.Destination,
		PNR:         booking.PNR,
		Status:      string(booking.Status),
	}, nil
}

// LookupBooking returns a booking only to the user who created it.
func (s *AllocationService) LookupBooking(ctx context.Context, bookingID, userID uuid.UUID) (*domain.Booking, error) {
	return s.bookingRepo.GetForUser(ctx, bookingID, userID)
}

// GetSeats lists a train's seats, serving from the redis cache when
// the entry is still warm.
func (s *AllocationService) GetSeats(ctx context.Context, trainID uuid.UUID) ([]SeatView, error) {
	cacheKey := seatCacheKey(trainID)

	if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var views []SeatView
		if err := json.Unmarshal([]byte(cached), &views); err == nil {
			return views, nil
		}
	}

	seats, err := s.seatRepo.ListByTrain(ctx, trainID)
	if err != nil {
		return nil, err
	}

	views := make([]SeatView, 0, len(seats))
	for _, seat := range seats {
		views = append(views, SeatView{
			SeatNumber: seat.SeatNumber,
			IsBooked:   seat.IsBooked,
			BookedFrom: seat.BookedFrom,
			BookedTo:   seat.BookedTo,
		})
	}

	if data, err := json.Marshal(views); err == nil {
		if err := s.redisClient.Set(ctx, cacheKey, data, seatCacheTTL).Err(); err != nil {
			log.Printf("Failed to cache seats for train %s: %v", trainID, err)
		}
	}

	return views, nil
}

func (s *AllocationService) invalidateSeatCache(ctx context.Context, trainID uuid.UUID) {
	if err := s.redisClient.Del(ctx, seatCacheKey(trainID)).Err(); err != nil {
		log.Printf("Failed to invalidate seat cache for train %s: %v", trainID, err)
	}
}

func seatCacheKey(trainID uuid.UUID) string {
	return fmt.Sprintf("seats:%s", trainID)
}
