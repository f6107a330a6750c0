package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/railstack/railseat/internal/core/domain"
	"github.com/railstack/railseat/internal/core/ports/mocks"
	"github.com/railstack/railseat/internal/core/services"
)

func TestGenerateSeats_FillsLayout(t *testing.T) {
	mockTrainRepo := new(mocks.MockTrainRepository)
	mockSeatRepo := new(mocks.MockSeatRepository)
	rdb, mockRedis := redismock.NewClientMock()

	service := services.NewInventoryService(mockTrainRepo, mockSeatRepo, rdb, services.NewTrainLocks())

	ctx := context.Background()
	trainID := uuid.New()

	mockTrainRepo.On("GetByID", ctx, trainID).Return(&domain.Train{ID: trainID, Name: "Northern Express"}, nil)
	mockSeatRepo.On("InsertSeats", ctx, trainID, mock.MatchedBy(func(labels []string) bool {
		return len(labels) == 120 &&
			labels[0] == "A1" &&
			labels[49] == "A50" &&
			labels[50] == "B1" &&
			labels[119] == "C20"
	}), 120).Return(nil)

	mockRedis.ExpectDel(fmt.Sprintf("seats:%s", trainID)).SetVal(1)

	err := service.GenerateSeats(ctx, trainID, 120)
	require.NoError(t, err)

	mockSeatRepo.AssertExpectations(t)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestGenerateSeats_RejectsBadCounts(t *testing.T) {
	mockTrainRepo := new(mocks.MockTrainRepository)
	mockSeatRepo := new(mocks.MockSeatRepository)
	rdb, _ := redismock.NewClientMock()

	service := services.NewInventoryService(mockTrainRepo, mockSeatRepo, rdb, services.NewTrainLocks())

	ctx := context.Background()
	trainID := uuid.New()

	assert.ErrorIs(t, service.GenerateSeats(ctx, trainID, 0), domain.ErrInvalidSeatCount)
	assert.ErrorIs(t, service.GenerateSeats(ctx, trainID, -10), domain.ErrInvalidSeatCount)
	assert.ErrorIs(t, service.GenerateSeats(ctx, trainID, domain.MaxSeats+1), domain.ErrLayoutExhausted)

	mockTrainRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	mockSeatRepo.AssertNotCalled(t, "InsertSeats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResizeSeats_GrowContinuesFromLastLabel(t *testing.T) {
	mockTrainRepo := new(mocks.MockTrainRepository)
	mockSeatRepo := new(mocks.MockSeatRepository)
	rdb, mockRedis := redismock.NewClientMock()

	service := services.NewInventoryService(mockTrainRepo, mockSeatRepo, rdb, services.NewTrainLocks())

	ctx := context.Background()
	trainID := uuid.New()

	mockTrainRepo.On("GetByID", ctx, trainID).Return(&domain.Train{ID: trainID, TotalSeats: 120}, nil)
	mockSeatRepo.On("LastLabel", ctx, trainID).Return("C20", nil)
	mockSeatRepo.On("InsertSeats", ctx, trainID, mock.MatchedBy(func(labels []string) bool {
		return len(labels) == 50 &&
			labels[0] == "C21" &&
			labels[29] == "C50" &&
			labels[30] == "D1" &&
			labels[49] == "D20"
	}), 170).Return(nil)

	mockRedis.ExpectDel(fmt.Sprintf("seats:%s", trainID)).SetVal(1)

	actual, err := service.ResizeSeats(ctx, trainID, 170)
	require.NoError(t, err)
	assert.Equal(t, 170, actual)

	mockSeatRepo.AssertExpectations(t)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestResizeSeats_GrowFreshTrainStartsAtA1(t *testing.T) {
	mockTrainRepo := new(mocks.MockTrainRepository)
	mockSeatRepo := new(mocks.MockSeatRepository)
	rdb, mockRedis := redismock.NewClientMock()

	service := services.NewInventoryService(mockTrainRepo, mockSeatRepo, rdb, services.NewTrainLocks())

	ctx := context.Background()
	trainID := uuid.New()

	mockTrainRepo.On("GetByID", ctx, trainID).Return(&domain.Train{ID: trainID, TotalSeats: 0}, nil)
	mockSeatRepo.On("LastLabel", ctx, trainID).Return("", nil)
	mockSeatRepo.On("InsertSeats", ctx, trainID, []string{"A1", "A2", "A3"}, 3).Return(nil)

	mockRedis.ExpectDel(fmt.Sprintf("seats:%s", trainID)).SetVal(1)

	actual, err := service.ResizeSeats(ctx, trainID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, actual)
}

func TestResizeSeats_ShrinkReconcilesToRemainingSeats(t *testing.T) {
	mockTrainRepo := new(mocks.MockTrainRepository)
	mockSeatRepo := new(mocks.MockSeatRepository)
	rdb, mockRedis := redismock.NewClientMock()

	service := services.NewInventoryService(mockTrainRepo, mockSeatRepo, rdb, services.NewTrainLocks())

	ctx := context.Background()
	trainID := uuid.New()

	// 80 seats but only 10 unbooked: asking for 50 frees those 10 and
	// settles at 70. Silent repair, not an error.
	mockTrainRepo.On("GetByID", ctx, trainID).Return(&domain.Train{ID: trainID, TotalSeats: 80}, nil)
	mockSeatRepo.On("DeleteUnbooked", ctx, trainID, 30).Return(70, nil)

	mockRedis.ExpectDel(fmt.Sprintf("seats:%s", trainID)).SetVal(1)

	actual, err := service.ResizeSeats(ctx, trainID, 50)
	require.NoError(t, err)
	assert.Equal(t, 70, actual)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestResizeSeats_NoChange(t *testing.T) {
	mockTrainRepo := new(mocks.MockTrainRepository)
	mockSeatRepo := new(mocks.MockSeatRepository)
	rdb, _ := redismock.NewClientMock()

	service := services.NewInventoryService(mockTrainRepo, mockSeatRepo, rdb, services.NewTrainLocks())

	ctx := context.Background()
	trainID := uuid.New()

	mockTrainRepo.On("GetByID", ctx, trainID).Return(&domain.Train{ID: trainID, TotalSeats: 120}, nil)

	actual, err := service.ResizeSeats(ctx, trainID, 120)
	require.NoError(t, err)
	assert.Equal(t, 120, actual)

	mockSeatRepo.AssertNotCalled(t, "InsertSeats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockSeatRepo.AssertNotCalled(t, "DeleteUnbooked", mock.Anything, mock.Anything, mock.Anything)
}

func TestResizeSeats_RejectsNonPositiveTotal(t *testing.T) {
	mockTrainRepo := new(mocks.MockTrainRepository)
	rdb, _ := redismock.NewClientMock()

	service := services.NewInventoryService(mockTrainRepo, new(mocks.MockSeatRepository), rdb, services.NewTrainLocks())

	_, err := service.ResizeSeats(context.Background(), uuid.New(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidSeatCount)
	mockTrainRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
