package repository

import (
	"context"
	"time"

	"librental-backend/internal/domain"
)

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error)
}

// InventoryRepository is the ledger over each book's available-copy counter.
// Both operations are single guarded statements so concurrent callers can
// never drive inventory negative.
type InventoryRepository interface {
	// TryReserve atomically decrements the book's inventory by one.
	// Returns domain.ErrBookUnavailable when no copy is available.
	TryReserve(ctx context.Context, bookID int32) error
	// Release atomically increments the book's inventory by one. Called on
	// an on-time return, on fine settlement, or as reservation rollback.
	Release(ctx context.Context, bookID int32) error
}

type BorrowingRepository interface {
	// CreateWithReservation reserves a copy and inserts the borrowing in a
	// single transaction. Either both happen or neither does.
	CreateWithReservation(ctx context.Context, b *domain.Borrowing) error
	GetByID(ctx context.Context, id int32) (*domain.Borrowing, error)
	// Delete removes a borrowing record. Only used for compensating
	// rollback when the rental payment session could not be opened.
	Delete(ctx context.Context, id int32) error
	// MarkReturned sets actual_return_date if and only if it is still
	// unset. Returns false when the borrowing was already returned.
	MarkReturned(ctx context.Context, id int32, returned time.Time) (bool, error)
	// List returns borrowings, newest borrow date first. userID 0 means
	// all users; activeOnly limits to unreturned borrowings.
	List(ctx context.Context, userID int32, activeOnly bool) ([]domain.Borrowing, error)
	// ListOverdue returns active borrowings whose expected return date is
	// before the given day.
	ListOverdue(ctx context.Context, today time.Time) ([]domain.Borrowing, error)
}

type PaymentRepository interface {
	// Create inserts a PENDING payment. Returns domain.ErrPaymentPending
	// when the borrowing already has one.
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	GetPendingByBorrowing(ctx context.Context, borrowingID int32) (*domain.Payment, error)
	GetLatestByBorrowing(ctx context.Context, borrowingID int32) (*domain.Payment, error)
	// MarkPaid transitions PENDING to PAID and zeroes the amount due.
	// Returns false when the payment was not PENDING (idempotent callers
	// treat that as a no-op).
	MarkPaid(ctx context.Context, id int32) (bool, error)
	// MarkExpired transitions PENDING to EXPIRED. Returns false when the
	// payment was not PENDING.
	MarkExpired(ctx context.Context, id int32) (bool, error)
	// SettleFine transitions a fine payment PENDING to PAID and releases the
	// reserved copy in one transaction. Returns false when the payment was
	// not PENDING; a failed release rolls the transition back so the
	// callback stays retryable.
	SettleFine(ctx context.Context, paymentID, bookID int32) (bool, error)
	ListPending(ctx context.Context) ([]domain.Payment, error)
	// List returns payments ordered by the borrow date of their borrowing.
	// userID 0 means all users.
	List(ctx context.Context, userID int32) ([]domain.Payment, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
}
