package service

import (
	"context"
	"errors"
	"fmt"

	"librental-backend/internal/domain"
	"librental-backend/internal/logger"
	"librental-backend/internal/repository"
	"librental-backend/internal/stripe"
	"librental-backend/internal/utils"
)

type paymentService struct {
	paymentRepo   repository.PaymentRepository
	borrowingRepo repository.BorrowingRepository
	bookRepo      repository.BookRepository
	checkout      CheckoutClient
	notifier      Notifier

	callbackBaseURL       string
	fineMultiplierPercent int
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	borrowingRepo repository.BorrowingRepository,
	bookRepo repository.BookRepository,
	checkout CheckoutClient,
	notifier Notifier,
	callbackBaseURL string,
	fineMultiplierPercent int,
) PaymentService {
	return &paymentService{
		paymentRepo:           paymentRepo,
		borrowingRepo:         borrowingRepo,
		bookRepo:              bookRepo,
		checkout:              checkout,
		notifier:              notifier,
		callbackBaseURL:       callbackBaseURL,
		fineMultiplierPercent: fineMultiplierPercent,
	}
}

func (s *paymentService) OpenRentalSession(ctx context.Context, b *domain.Borrowing) (*domain.Payment, error) {
	book, err := s.bookRepo.GetByID(ctx, b.BookID)
	if err != nil {
		return nil, err
	}

	amount, err := utils.RentalAmountCents(book.DailyFeeCents, b.BorrowDate, b.ExpectedReturnDate)
	if err != nil {
		return nil, err
	}

	return s.openSession(ctx, b, domain.PaymentKindRental, amount, book.Title,
		fmt.Sprintf("%s/payments/%d/success", s.callbackBaseURL, b.ID))
}

func (s *paymentService) OpenFineSession(ctx context.Context, b *domain.Borrowing) (*domain.Payment, error) {
	if b.ActualReturnDate == nil {
		return nil, fmt.Errorf("cannot open a fine session for an active borrowing %d", b.ID)
	}

	book, err := s.bookRepo.GetByID(ctx, b.BookID)
	if err != nil {
		return nil, err
	}

	amount := utils.FineAmountCents(book.DailyFeeCents, b.ExpectedReturnDate, *b.ActualReturnDate, s.fineMultiplierPercent)

	return s.openSession(ctx, b, domain.PaymentKindFine, amount, "Fine for overdue return of "+book.Title,
		fmt.Sprintf("%s/payments/%d/success-fine", s.callbackBaseURL, b.ID))
}

func (s *paymentService) openSession(ctx context.Context, b *domain.Borrowing, kind domain.PaymentKind, amountCents int32, productName, successURL string) (*domain.Payment, error) {
	session, err := s.checkout.CreateCheckoutSession(ctx, stripe.CheckoutParams{
		AmountCents: int64(amountCents),
		Currency:    "usd",
		ProductName: productName,
		SuccessURL:  successURL,
		CancelURL:   fmt.Sprintf("%s/payments/%d/cancel", s.callbackBaseURL, b.ID),
	})
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		BorrowingID:    b.ID,
		Status:         domain.PaymentStatusPending,
		Kind:           kind,
		SessionID:      session.ID,
		SessionURL:     session.URL,
		AmountDueCents: amountCents,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.notifier.PaymentRequested(ctx, payment, b)

	return payment, nil
}

func (s *paymentService) ConfirmSuccess(ctx context.Context, borrowingID int32) error {
	payment, err := s.paymentRepo.GetPendingByBorrowing(ctx, borrowingID)
	if errors.Is(err, domain.ErrNotFound) {
		// Nothing pending: a repeated success callback for a settled
		// payment is a no-op, anything else is a genuine miss.
		latest, lerr := s.paymentRepo.GetLatestByBorrowing(ctx, borrowingID)
		if lerr != nil {
			return lerr
		}
		if latest.Status == domain.PaymentStatusPaid {
			return nil
		}
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if payment.Kind == domain.PaymentKindFine {
		borrowing, err := s.borrowingRepo.GetByID(ctx, borrowingID)
		if err != nil {
			return err
		}
		// The PAID transition and the inventory release commit together; a
		// failed release leaves the payment PENDING so the callback can be
		// retried.
		settled, err := s.paymentRepo.SettleFine(ctx, payment.ID, borrowing.BookID)
		if err != nil {
			return err
		}
		if settled {
			logger.Info("Fine settled, copy released", "payment_id", payment.ID, "borrowing_id", borrowingID, "book_id", borrowing.BookID)
		}
		return nil
	}

	paid, err := s.paymentRepo.MarkPaid(ctx, payment.ID)
	if err != nil {
		return err
	}
	if paid {
		logger.Info("Payment confirmed", "payment_id", payment.ID, "borrowing_id", borrowingID, "kind", payment.Kind)
	}
	return nil
}

func (s *paymentService) ConfirmCancel(ctx context.Context, borrowingID int32) error {
	// The user backed out of checkout. The session stays PENDING so the
	// same payment URL can be retried; only the expiry sweep retires it.
	payment, err := s.paymentRepo.GetPendingByBorrowing(ctx, borrowingID)
	if err != nil {
		return err
	}

	logger.Info("Payment cancelled by user, session left open", "payment_id", payment.ID, "borrowing_id", borrowingID)
	return nil
}

func (s *paymentService) DetectExpiredSessions(ctx context.Context) ([]domain.Payment, error) {
	pending, err := s.paymentRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	var expired []domain.Payment
	for i := range pending {
		p := pending[i]

		session, err := s.checkout.GetCheckoutSession(ctx, p.SessionID)
		if err != nil {
			// Provider unreachable; this payment is re-checked on the
			// next sweep.
			logger.Warn("Failed to query checkout session", "payment_id", p.ID, "session_id", p.SessionID, "error", err)
			continue
		}
		if session.Status != stripe.SessionStatusExpired {
			continue
		}

		transitioned, err := s.paymentRepo.MarkExpired(ctx, p.ID)
		if err != nil {
			logger.Error("Failed to expire payment", "payment_id", p.ID, "error", err)
			continue
		}
		if !transitioned {
			continue
		}
		p.Status = domain.PaymentStatusExpired

		// Notification is keyed to the transition, so re-running the
		// sweep cannot notify twice for the same session.
		if borrowing, err := s.borrowingRepo.GetByID(ctx, p.BorrowingID); err == nil {
			s.notifier.SessionExpired(ctx, &p, borrowing)
		} else {
			logger.Error("Failed to load borrowing for expired session", "payment_id", p.ID, "error", err)
		}

		expired = append(expired, p)
	}

	return expired, nil
}

func (s *paymentService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff {
		borrowing, err := s.borrowingRepo.GetByID(ctx, payment.BorrowingID)
		if err != nil {
			return nil, err
		}
		if borrowing.UserID != actor.UserID {
			return nil, domain.ErrForbidden
		}
	}
	return payment, nil
}

func (s *paymentService) List(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	userID := actor.UserID
	if actor.IsStaff {
		userID = 0
	}
	return s.paymentRepo.List(ctx, userID)
}
