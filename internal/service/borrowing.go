package service

import (
	"context"
	"time"

	"librental-backend/internal/domain"
	"librental-backend/internal/logger"
	"librental-backend/internal/repository"
	"librental-backend/internal/utils"
)

type borrowingService struct {
	borrowingRepo repository.BorrowingRepository
	bookRepo      repository.BookRepository
	inventoryRepo repository.InventoryRepository
	payments      PaymentService
	notifier      Notifier
}

func NewBorrowingService(
	borrowingRepo repository.BorrowingRepository,
	bookRepo repository.BookRepository,
	inventoryRepo repository.InventoryRepository,
	payments PaymentService,
	notifier Notifier,
) BorrowingService {
	return &borrowingService{
		borrowingRepo: borrowingRepo,
		bookRepo:      bookRepo,
		inventoryRepo: inventoryRepo,
		payments:      payments,
		notifier:      notifier,
	}
}

func (s *borrowingService) Create(ctx context.Context, actor domain.Actor, bookID int32, expectedReturnDate, today time.Time) (*domain.Borrowing, *domain.Payment, error) {
	today = utils.DateOnly(today)
	expectedReturnDate = utils.DateOnly(expectedReturnDate)

	if expectedReturnDate.Before(today) {
		return nil, nil, domain.ErrInvalidReturnDate
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, nil, err
	}

	borrowing := &domain.Borrowing{
		BookID:             bookID,
		UserID:             actor.UserID,
		BorrowDate:         today,
		ExpectedReturnDate: expectedReturnDate,
	}

	// Reservation and borrowing row commit together; after this point any
	// failure needs a compensating rollback, not a transaction abort.
	if err := s.borrowingRepo.CreateWithReservation(ctx, borrowing); err != nil {
		return nil, nil, err
	}

	payment, err := s.payments.OpenRentalSession(ctx, borrowing)
	if err != nil {
		s.rollbackCreate(borrowing)
		return nil, nil, err
	}

	s.notifier.BorrowingCreated(ctx, borrowing, book)

	return borrowing, payment, nil
}

// rollbackCreate undoes a committed reservation whose rental session could
// not be opened. It runs on a detached context so that the caller hanging up
// mid-request cannot leave inventory decremented without a live borrowing.
func (s *borrowingService) rollbackCreate(b *domain.Borrowing) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.borrowingRepo.Delete(ctx, b.ID); err != nil {
		logger.Error("Failed to delete borrowing during rollback", "borrowing_id", b.ID, "error", err)
		return
	}
	if err := s.inventoryRepo.Release(ctx, b.BookID); err != nil {
		logger.Error("Failed to release reservation during rollback", "book_id", b.BookID, "error", err)
	}
}

func (s *borrowingService) Return(ctx context.Context, actor domain.Actor, borrowingID int32, today time.Time) (domain.ReturnOutcome, *domain.Payment, error) {
	borrowing, err := s.borrowingRepo.GetByID(ctx, borrowingID)
	if err != nil {
		return "", nil, err
	}
	if !actor.IsStaff && borrowing.UserID != actor.UserID {
		return "", nil, domain.ErrForbidden
	}
	if borrowing.ActualReturnDate != nil {
		return "", nil, domain.ErrAlreadyReturned
	}

	today = utils.DateOnly(today)

	// The guarded update is the real gate; the check above only exists to
	// fail fast. Losing the race to a concurrent return surfaces the same
	// error.
	returned, err := s.borrowingRepo.MarkReturned(ctx, borrowingID, today)
	if err != nil {
		return "", nil, err
	}
	if !returned {
		return "", nil, domain.ErrAlreadyReturned
	}
	borrowing.ActualReturnDate = &today

	if !today.After(borrowing.ExpectedReturnDate) {
		if err := s.inventoryRepo.Release(ctx, borrowing.BookID); err != nil {
			return "", nil, err
		}
		return domain.ReturnedOnTime, nil, nil
	}

	// Late: the copy stays out of circulation until the fine settles.
	payment, err := s.payments.OpenFineSession(ctx, borrowing)
	if err != nil {
		// The return itself is durable and one-way. Surface the provider
		// failure so the caller knows the fine session must be reopened.
		return "", nil, err
	}

	return domain.ReturnedLateFinePending, payment, nil
}

func (s *borrowingService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Borrowing, error) {
	borrowing, err := s.borrowingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff && borrowing.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return borrowing, nil
}

func (s *borrowingService) List(ctx context.Context, actor domain.Actor, filterUserID int32, activeOnly bool) ([]domain.Borrowing, error) {
	// Non-staff users only ever see their own borrowings.
	userID := filterUserID
	if !actor.IsStaff {
		userID = actor.UserID
	}
	return s.borrowingRepo.List(ctx, userID, activeOnly)
}

func (s *borrowingService) ScanOverdue(ctx context.Context, today time.Time) ([]domain.Borrowing, error) {
	return s.borrowingRepo.ListOverdue(ctx, utils.DateOnly(today))
}
