package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"librental-backend/internal/domain"
	"librental-backend/internal/stripe"
)

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Book), args.Get(1).(int32), args.Error(2)
}

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) TryReserve(ctx context.Context, bookID int32) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}
func (m *MockInventoryRepo) Release(ctx context.Context, bookID int32) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}

// MockBorrowingRepo
type MockBorrowingRepo struct {
	mock.Mock
}

func (m *MockBorrowingRepo) CreateWithReservation(ctx context.Context, b *domain.Borrowing) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBorrowingRepo) GetByID(ctx context.Context, id int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBorrowingRepo) MarkReturned(ctx context.Context, id int32, returned time.Time) (bool, error) {
	args := m.Called(ctx, id, returned)
	return args.Bool(0), args.Error(1)
}
func (m *MockBorrowingRepo) List(ctx context.Context, userID int32, activeOnly bool) ([]domain.Borrowing, error) {
	args := m.Called(ctx, userID, activeOnly)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingRepo) ListOverdue(ctx context.Context, today time.Time) ([]domain.Borrowing, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetPendingByBorrowing(ctx context.Context, borrowingID int32) (*domain.Payment, error) {
	args := m.Called(ctx, borrowingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetLatestByBorrowing(ctx context.Context, borrowingID int32) (*domain.Payment, error) {
	args := m.Called(ctx, borrowingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) MarkPaid(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockPaymentRepo) MarkExpired(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockPaymentRepo) SettleFine(ctx context.Context, paymentID, bookID int32) (bool, error) {
	args := m.Called(ctx, paymentID, bookID)
	return args.Bool(0), args.Error(1)
}
func (m *MockPaymentRepo) ListPending(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) List(ctx context.Context, userID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

// MockCheckoutClient
type MockCheckoutClient struct {
	mock.Mock
}

func (m *MockCheckoutClient) CreateCheckoutSession(ctx context.Context, p stripe.CheckoutParams) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}
func (m *MockCheckoutClient) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
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

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BorrowingCreated(ctx context.Context, b *domain.Borrowing, book *domain.Book) {
	m.Called(ctx, b, book)
}
func (m *MockNotifier) PaymentRequested(ctx context.Context, p *domain.Payment, b *domain.Borrowing) {
	m.Called(ctx, p, b)
}
func (m *MockNotifier) OverdueBorrowing(ctx context.Context, b *domain.Borrowing) {
	m.Called(ctx, b)
}
func (m *MockNotifier) SessionExpired(ctx context.Context, p *domain.Payment, b *domain.Borrowing) {
	m.Called(ctx, p, b)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(ctx context.Context, toEmail, toName, subject, body string) error {
	args := m.Called(ctx, toEmail, toName, subject, body)
	return args.Error(0)
}
