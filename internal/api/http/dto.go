package http

import (
	"librental-backend/internal/domain"
	"librental-backend/internal/utils"
)

// Typed request/response structs per operation; nothing here reaches into
// persistence types directly.

type CreateBorrowingRequest struct {
	BookID             int32  `json:"book_id"`
	ExpectedReturnDate string `json:"expected_return_date"`
}

type BorrowingResponse struct {
	ID                 int32   `json:"id"`
	BookID             int32   `json:"book_id"`
	UserID             int32   `json:"user_id"`
	BorrowDate         string  `json:"borrow_date"`
	ExpectedReturnDate string  `json:"expected_return_date"`
	ActualReturnDate   *string `json:"actual_return_date,omitempty"`
	IsActive           bool    `json:"is_active"`
}

type CreateBorrowingResponse struct {
	Borrowing BorrowingResponse `json:"borrowing"`
	Payment   PaymentResponse   `json:"payment"`
}

type ReturnBorrowingResponse struct {
	Outcome     string            `json:"outcome"`
	Borrowing   BorrowingResponse `json:"borrowing"`
	FinePayment *PaymentResponse  `json:"fine_payment,omitempty"`
}

type PaymentResponse struct {
	ID             int32  `json:"id"`
	BorrowingID    int32  `json:"borrowing_id"`
	Status         string `json:"status"`
	Kind           string `json:"kind"`
	SessionURL     string `json:"session_url"`
	AmountDueCents int32  `json:"amount_due_cents"`
}

type BookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Cover         string `json:"cover"`
	Inventory     int32  `json:"inventory"`
	DailyFeeCents int32  `json:"daily_fee_cents"`
}

type BookResponse struct {
	ID            int32  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Cover         string `json:"cover"`
	Inventory     int32  `json:"inventory"`
	DailyFeeCents int32  `json:"daily_fee_cents"`
}

type BookListResponse struct {
	Books []BookResponse `json:"books"`
	Total int32          `json:"total"`
}

type NotificationResponse struct {
	ID         int32             `json:"id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedOn  string            `json:"created_on"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int32                  `json:"total"`
}

func toBorrowingResponse(b *domain.Borrowing) BorrowingResponse {
	resp := BorrowingResponse{
		ID:                 b.ID,
		BookID:             b.BookID,
		UserID:             b.UserID,
		BorrowDate:         utils.FormatDate(b.BorrowDate),
		ExpectedReturnDate: utils.FormatDate(b.ExpectedReturnDate),
		IsActive:           b.IsActive(),
	}
	if b.ActualReturnDate != nil {
		d := utils.FormatDate(*b.ActualReturnDate)
		resp.ActualReturnDate = &d
	}
	return resp
}

func toPaymentResponse(p *domain.Payment) PaymentResponse {
	kind := string(p.Kind)
	// A settled fine reads as FINE_PAID; the stored kind stays stable.
	if p.Kind == domain.PaymentKindFine && p.Status == domain.PaymentStatusPaid {
		kind = "FINE_PAID"
	}
	return PaymentResponse{
		ID:             p.ID,
		BorrowingID:    p.BorrowingID,
		Status:         string(p.Status),
		Kind:           kind,
		SessionURL:     p.SessionURL,
		AmountDueCents: p.AmountDueCents,
	}
}

func toNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		IsRead:     n.IsRead,
		Attributes: n.Attributes,
		CreatedOn:  n.CreatedOn,
	}
}

func toBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Cover:         string(b.Cover),
		Inventory:     b.Inventory,
		DailyFeeCents: b.DailyFeeCents,
	}
}
