package postgres

import (
	"context"
	"database/sql"
	"errors"

	"librental-backend/internal/domain"
	"librental-backend/internal/repository"
)

type inventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

// reserveCopy is the serializable decrement: the availability check and the
// decrement are one statement, so two concurrent reservations on a book with
// one copy left resolve to exactly one success.
func reserveCopy(ctx context.Context, q execQueryer, bookID int32) error {
	res, err := q.ExecContext(ctx,
		`UPDATE books SET inventory = inventory - 1, updated_on = NOW() WHERE id = $1 AND inventory >= 1`,
		bookID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either out of stock or an unknown book; tell them apart.
		var exists bool
		err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, bookID).Scan(&exists)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrBookUnavailable
	}
	return nil
}

func (r *inventoryRepository) TryReserve(ctx context.Context, bookID int32) error {
	return reserveCopy(ctx, r.db, bookID)
}

// releaseCopy puts one copy back into circulation. Same execQueryer shape as
// reserveCopy so fine settlement can run it inside a transaction.
func releaseCopy(ctx context.Context, q execQueryer, bookID int32) error {
	res, err := q.ExecContext(ctx,
		`UPDATE books SET inventory = inventory + 1, updated_on = NOW() WHERE id = $1`,
		bookID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) Release(ctx context.Context, bookID int32) error {
	return releaseCopy(ctx, r.db, bookID)
}
