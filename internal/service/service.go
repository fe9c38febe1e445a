package service

import (
	"context"
	"time"

	"librental-backend/internal/domain"
	"librental-backend/internal/stripe"
)

type BorrowingService interface {
	// Create checks out a book for the acting user: it reserves a copy,
	// persists the borrowing and opens the upfront rental checkout
	// session. A payment-provider failure rolls the whole operation back.
	Create(ctx context.Context, actor domain.Actor, bookID int32, expectedReturnDate, today time.Time) (*domain.Borrowing, *domain.Payment, error)
	// Return settles a borrowing. On-time returns put the copy back into
	// inventory immediately; late returns open a fine session and the copy
	// re-enters inventory only once the fine is paid.
	Return(ctx context.Context, actor domain.Actor, borrowingID int32, today time.Time) (domain.ReturnOutcome, *domain.Payment, error)
	Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Borrowing, error)
	List(ctx context.Context, actor domain.Actor, filterUserID int32, activeOnly bool) ([]domain.Borrowing, error)
	// ScanOverdue is a pure read used by the scheduler; fines are only
	// assessed at actual return time.
	ScanOverdue(ctx context.Context, today time.Time) ([]domain.Borrowing, error)
}

type PaymentService interface {
	OpenRentalSession(ctx context.Context, b *domain.Borrowing) (*domain.Payment, error)
	OpenFineSession(ctx context.Context, b *domain.Borrowing) (*domain.Payment, error)
	// ConfirmSuccess handles the provider success callback. Idempotent:
	// confirming an already-paid borrowing is a no-op.
	ConfirmSuccess(ctx context.Context, borrowingID int32) error
	// ConfirmCancel handles the provider cancel redirect. The payment
	// stays PENDING so the user can retry from the same session.
	ConfirmCancel(ctx context.Context, borrowingID int32) error
	// DetectExpiredSessions sweeps PENDING payments against the provider
	// and expires the stale ones, notifying each affected user once.
	DetectExpiredSessions(ctx context.Context) ([]domain.Payment, error)
	Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Payment, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.Payment, error)
}

type BookService interface {
	Create(ctx context.Context, actor domain.Actor, book *domain.Book) error
	Get(ctx context.Context, id int32) (*domain.Book, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error)
	Update(ctx context.Context, actor domain.Actor, book *domain.Book) error
	Delete(ctx context.Context, actor domain.Actor, id int32) error
}

// NotificationService reads a user's in-app notification feed.
type NotificationService interface {
	List(ctx context.Context, actor domain.Actor, limit, offset int32) ([]domain.Notification, int32, error)
}

// CheckoutClient is the payment-provider boundary, implemented by
// internal/stripe.Client.
type CheckoutClient interface {
	CreateCheckoutSession(ctx context.Context, p stripe.CheckoutParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)
}

// Notifier is the fire-and-forget notification collaborator. Delivery
// failures are logged by implementations and never surface to callers.
type Notifier interface {
	BorrowingCreated(ctx context.Context, b *domain.Borrowing, book *domain.Book)
	PaymentRequested(ctx context.Context, p *domain.Payment, b *domain.Borrowing)
	OverdueBorrowing(ctx context.Context, b *domain.Borrowing)
	SessionExpired(ctx context.Context, p *domain.Payment, b *domain.Borrowing)
}

type EmailService interface {
	Send(ctx context.Context, toEmail, toName, subject, body string) error
}
