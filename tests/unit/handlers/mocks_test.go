package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"librental-backend/internal/domain"
)

// MockBorrowingService
type MockBorrowingService struct {
	mock.Mock
}

func (m *MockBorrowingService) Create(ctx context.Context, actor domain.Actor, bookID int32, expectedReturnDate, today time.Time) (*domain.Borrowing, *domain.Payment, error) {
	args := m.Called(ctx, actor, bookID, expectedReturnDate, today)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Borrowing), args.Get(1).(*domain.Payment), args.Error(2)
}
func (m *MockBorrowingService) Return(ctx context.Context, actor domain.Actor, borrowingID int32, today time.Time) (domain.ReturnOutcome, *domain.Payment, error) {
	args := m.Called(ctx, actor, borrowingID, today)
	if args.Get(1) == nil {
		return args.Get(0).(domain.ReturnOutcome), nil, args.Error(2)
	}
	return args.Get(0).(domain.ReturnOutcome), args.Get(1).(*domain.Payment), args.Error(2)
}
func (m *MockBorrowingService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) List(ctx context.Context, actor domain.Actor, filterUserID int32, activeOnly bool) ([]domain.Borrowing, error) {
	args := m.Called(ctx, actor, filterUserID, activeOnly)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) ScanOverdue(ctx context.Context, today time.Time) ([]domain.Borrowing, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) OpenRentalSession(ctx context.Context, b *domain.Borrowing) (*domain.Payment, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) OpenFineSession(ctx context.Context, b *domain.Borrowing) (*domain.Payment, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ConfirmSuccess(ctx context.Context, borrowingID int32) error {
	args := m.Called(ctx, borrowingID)
	return args.Error(0)
}
func (m *MockPaymentService) ConfirmCancel(ctx context.Context, borrowingID int32) error {
	args := m.Called(ctx, borrowingID)
	return args.Error(0)
}
func (m *MockPaymentService) DetectExpiredSessions(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) List(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, actor domain.Actor, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, actor, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

// MockBookService
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) Create(ctx context.Context, actor domain.Actor, book *domain.Book) error {
	args := m.Called(ctx, actor, book)
	return args.Error(0)
}
func (m *MockBookService) Get(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Book), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookService) Update(ctx context.Context, actor domain.Actor, book *domain.Book) error {
	args := m.Called(ctx, actor, book)
	return args.Error(0)
}
func (m *MockBookService) Delete(ctx context.Context, actor domain.Actor, id int32) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
