package domain

import "errors"

// Sentinel errors for the borrowing-payment lifecycle. Handlers map these to
// HTTP statuses and reason strings with errors.Is, so services must wrap
// rather than replace them.
var (
	// ErrNotFound covers unknown book, borrowing and payment ids.
	ErrNotFound = errors.New("not found")

	// ErrBookUnavailable is returned when a reservation fails because the
	// book has no available copies.
	ErrBookUnavailable = errors.New("book is not available for borrowing")

	// ErrInvalidReturnDate is returned when the expected return date is in
	// the past at borrow creation.
	ErrInvalidReturnDate = errors.New("expected return date cannot be in the past")

	// ErrAlreadyReturned is returned on a second return attempt for the
	// same borrowing.
	ErrAlreadyReturned = errors.New("borrowing was already returned")

	// ErrPaymentPending is returned when opening a session would violate
	// the one-pending-payment-per-borrowing invariant.
	ErrPaymentPending = errors.New("borrowing already has a pending payment")

	// ErrPaymentProvider is returned when the payment provider call fails
	// or times out. The operation is retryable.
	ErrPaymentProvider = errors.New("payment provider is unavailable")

	// ErrForbidden is returned when the acting user may not see or mutate
	// the requested record.
	ErrForbidden = errors.New("forbidden")
)
