package domain

import "time"

// Borrowing tracks one copy of a book checked out by a user. A borrowing is
// active while ActualReturnDate is nil; the return transition is one-way and
// the date is never cleared once set.
type Borrowing struct {
	ID                 int32      `json:"id"`
	BookID             int32      `json:"book_id"`
	UserID             int32      `json:"user_id"`
	BorrowDate         time.Time  `json:"borrow_date"`
	ExpectedReturnDate time.Time  `json:"expected_return_date"`
	ActualReturnDate   *time.Time `json:"actual_return_date,omitempty"`
}

// IsActive reports whether the book has not been returned yet.
func (b *Borrowing) IsActive() bool {
	return b.ActualReturnDate == nil
}

// IsOverdue reports whether an active borrowing is past its expected return.
func (b *Borrowing) IsOverdue(today time.Time) bool {
	return b.IsActive() && b.ExpectedReturnDate.Before(today)
}

// ReturnOutcome describes how a return request was settled.
type ReturnOutcome string

const (
	// ReturnedOnTime means the copy went straight back into inventory.
	ReturnedOnTime ReturnOutcome = "RETURNED_ON_TIME"
	// ReturnedLateFinePending means a fine checkout session was opened and
	// the copy re-enters inventory only once that fine is paid.
	ReturnedLateFinePending ReturnOutcome = "RETURNED_LATE_FINE_PENDING"
)
