package postgres

import (
	"context"
	"database/sql"

	"librental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookRepository
	repository.InventoryRepository
	repository.BorrowingRepository
	repository.PaymentRepository
	repository.UserRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		BookRepository:         NewBookRepository(db),
		InventoryRepository:    NewInventoryRepository(db),
		BorrowingRepository:    NewBorrowingRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		UserRepository:         NewUserRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// execQueryer is satisfied by both *sql.DB and *sql.Tx so the guarded
// inventory statements can run standalone or inside a transaction.
type execQueryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
