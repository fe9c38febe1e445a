package service

import (
	"context"
	"fmt"

	"librental-backend/internal/domain"
	"librental-backend/internal/logger"
	"librental-backend/internal/repository"
	"librental-backend/internal/utils"
)

// notifier persists an in-app notification row and sends a best-effort
// email for each lifecycle event. Both channels are fire-and-forget:
// every failure is logged and swallowed so notification delivery can never
// fail a borrow, return or payment operation.
type notifier struct {
	userRepo repository.UserRepository
	noteRepo repository.NotificationRepository
	emailSvc EmailService
}

func NewNotifier(userRepo repository.UserRepository, noteRepo repository.NotificationRepository, emailSvc EmailService) Notifier {
	return &notifier{
		userRepo: userRepo,
		noteRepo: noteRepo,
		emailSvc: emailSvc,
	}
}

func (n *notifier) BorrowingCreated(ctx context.Context, b *domain.Borrowing, book *domain.Book) {
	n.deliver(ctx, b.UserID, "Borrowing Created",
		fmt.Sprintf("You borrowed %q until %s.", book.Title, utils.FormatDate(b.ExpectedReturnDate)),
		map[string]string{
			"type":         "BORROWING_CREATED",
			"borrowing_id": fmt.Sprintf("%d", b.ID),
		})
}

func (n *notifier) PaymentRequested(ctx context.Context, p *domain.Payment, b *domain.Borrowing) {
	title := "Rental Payment Due"
	message := fmt.Sprintf("Please pay %s for your borrowing: %s", formatCents(p.AmountDueCents), p.SessionURL)
	if p.Kind == domain.PaymentKindFine {
		title = "Overdue Fine Due"
		message = fmt.Sprintf("Your return was overdue. Please pay the %s fine: %s", formatCents(p.AmountDueCents), p.SessionURL)
	}

	n.deliver(ctx, b.UserID, title, message, map[string]string{
		"type":         "PAYMENT_REQUESTED",
		"kind":         string(p.Kind),
		"borrowing_id": fmt.Sprintf("%d", b.ID),
		"payment_id":   fmt.Sprintf("%d", p.ID),
	})
}

func (n *notifier) OverdueBorrowing(ctx context.Context, b *domain.Borrowing) {
	n.deliver(ctx, b.UserID, "Borrowing Overdue",
		fmt.Sprintf("Your borrowing was due on %s. Please return it as soon as possible.", utils.FormatDate(b.ExpectedReturnDate)),
		map[string]string{
			"type":         "BORROWING_OVERDUE",
			"borrowing_id": fmt.Sprintf("%d", b.ID),
		})
}

func (n *notifier) SessionExpired(ctx context.Context, p *domain.Payment, b *domain.Borrowing) {
	n.deliver(ctx, b.UserID, "Payment Session Expired",
		"Your payment session expired. Please contact the library to issue a new one.",
		map[string]string{
			"type":         "SESSION_EXPIRED",
			"borrowing_id": fmt.Sprintf("%d", b.ID),
			"payment_id":   fmt.Sprintf("%d", p.ID),
		})
}

func (n *notifier) deliver(ctx context.Context, userID int32, title, message string, attrs map[string]string) {
	note := &domain.Notification{
		UserID:     userID,
		Title:      title,
		Message:    message,
		Attributes: attrs,
	}
	if err := n.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to persist notification", "user_id", userID, "title", title, "error", err)
	}

	user, err := n.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load user for notification email", "user_id", userID, "error", err)
		return
	}
	if err := n.emailSvc.Send(ctx, user.Email, user.Name, title, message); err != nil {
		logger.Error("Failed to send notification email", "user_id", userID, "title", title, "error", err)
	}
}

func formatCents(cents int32) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
