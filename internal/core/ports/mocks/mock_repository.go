package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/railstack/railseat/internal/core/domain"
)

// MockTrainRepository is a mock implementation of ports.TrainRepository
type MockTrainRepository struct {
	mock.Mock
}

func (m *MockTrainRepository) GetByID(ctx context.Context, trainID uuid.UUID) (*domain.Train, error) {
	args := m.Called(ctx, trainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Train), args.Error(1)
}

func (m *MockTrainRepository) GetStops(ctx context.Context, trainID uuid.UUID) ([]domain.Stop, error) {
	args := m.Called(ctx, trainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stop), args.Error(1)
}

// MockSeatRepository is a mock implementation of ports.SeatRepository
type MockSeatRepository struct {
	mock.Mock
}

func (m *MockSeatRepository) ListByTrain(ctx context.Context, trainID uuid.UUID) ([]domain.Seat, error) {
	args := m.Called(ctx, trainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepository) LastLabel(ctx context.Context, trainID uuid.UUID) (string, error) {
	args := m.Called(ctx, trainID)
	return args.String(0), args.Error(1)
}

func (m *MockSeatRepository) InsertSeats(ctx context.Context, trainID uuid.UUID, labels []string, declaredTotal int) error {
	args := m.Called(ctx, trainID, labels, declaredTotal)
	return args.Error(0)
}

func (m *MockSeatRepository) DeleteUnbooked(ctx context.Context, trainID uuid.UUID, toRemove int) (int, error) {
	args := m.Called(ctx, trainID, toRemove)
	return args.Int(0), args.Error(1)
}

// MockBookingRepository is a mock implementation of ports.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetForUser(ctx context.Context, bookingID, userID uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
