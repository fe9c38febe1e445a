package domain

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusExpired PaymentStatus = "EXPIRED"
)

type PaymentKind string

const (
	PaymentKindRental PaymentKind = "RENTAL"
	PaymentKindFine   PaymentKind = "FINE"
)

// Payment is one checkout session opened against a borrowing, either the
// upfront rental fee or a late-return fine. A borrowing accumulates payments
// sequentially over its life; at most one of them is PENDING at any time
// (enforced by a partial unique index on borrowing_id). Status transitions
// are monotonic: PENDING goes to PAID or EXPIRED and never back.
type Payment struct {
	ID             int32         `json:"id"`
	BorrowingID    int32         `json:"borrowing_id"`
	Status         PaymentStatus `json:"status"`
	Kind           PaymentKind   `json:"kind"`
	SessionID      string        `json:"session_id"`
	SessionURL     string        `json:"session_url"`
	AmountDueCents int32         `json:"amount_due_cents"`
	CreatedOn      string        `json:"created_on"`
}
