package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"librental-backend/internal/domain"
	"librental-backend/internal/repository"
)

type borrowingRepository struct {
	db *sql.DB
}

func NewBorrowingRepository(db *sql.DB) repository.BorrowingRepository {
	return &borrowingRepository{db: db}
}

func (r *borrowingRepository) CreateWithReservation(ctx context.Context, b *domain.Borrowing) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := reserveCopy(ctx, tx, b.BookID); err != nil {
		return err
	}

	query := `INSERT INTO borrowings (book_id, user_id, borrow_date, expected_return_date)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, b.BookID, b.UserID, b.BorrowDate, b.ExpectedReturnDate).Scan(&b.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *borrowingRepository) GetByID(ctx context.Context, id int32) (*domain.Borrowing, error) {
	b := &domain.Borrowing{}
	query := `SELECT id, book_id, user_id, borrow_date, expected_return_date, actual_return_date
	          FROM borrowings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.BookID, &b.UserID, &b.BorrowDate, &b.ExpectedReturnDate, &b.ActualReturnDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *borrowingRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM borrowings WHERE id = $1`, id)
	return err
}

func (r *borrowingRepository) MarkReturned(ctx context.Context, id int32, returned time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE borrowings SET actual_return_date = $2 WHERE id = $1 AND actual_return_date IS NULL`,
		id, returned)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *borrowingRepository) List(ctx context.Context, userID int32, activeOnly bool) ([]domain.Borrowing, error) {
	query := `SELECT id, book_id, user_id, borrow_date, expected_return_date, actual_return_date
	          FROM borrowings WHERE 1=1`

	var args []interface{}
	if userID != 0 {
		query += ` AND user_id = $1`
		args = append(args, userID)
	}
	if activeOnly {
		query += ` AND actual_return_date IS NULL`
	}
	query += ` ORDER BY borrow_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBorrowings(rows)
}

func (r *borrowingRepository) ListOverdue(ctx context.Context, today time.Time) ([]domain.Borrowing, error) {
	query := `SELECT id, book_id, user_id, borrow_date, expected_return_date, actual_return_date
	          FROM borrowings
	          WHERE actual_return_date IS NULL AND expected_return_date < $1
	          ORDER BY expected_return_date ASC`

	rows, err := r.db.QueryContext(ctx, query, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBorrowings(rows)
}

func scanBorrowings(rows *sql.Rows) ([]domain.Borrowing, error) {
	var borrowings []domain.Borrowing
	for rows.Next() {
		var b domain.Borrowing
		if err := rows.Scan(&b.ID, &b.BookID, &b.UserID, &b.BorrowDate, &b.ExpectedReturnDate, &b.ActualReturnDate); err != nil {
			return nil, err
		}
		borrowings = append(borrowings, b)
	}
	return borrowings, rows.Err()
}
