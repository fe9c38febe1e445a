package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"librental-backend/internal/domain"
	"librental-backend/internal/repository"

	"github.com/lib/pq"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (borrowing_id, status, kind, session_id, session_url, amount_due_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, p.BorrowingID, p.Status, p.Kind, p.SessionID, p.SessionURL, p.AmountDueCents, time.Now()).Scan(&p.ID)
	if err != nil {
		// The partial unique index on (borrowing_id) WHERE status='PENDING'
		// enforces at most one open session per borrowing.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrPaymentPending
		}
		return err
	}
	return nil
}

const paymentColumns = `id, borrowing_id, status, kind, session_id, session_url, amount_due_cents, created_on`

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	return r.getOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
}

func (r *paymentRepository) GetPendingByBorrowing(ctx context.Context, borrowingID int32) (*domain.Payment, error) {
	return r.getOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE borrowing_id = $1 AND status = 'PENDING'`, borrowingID)
}

func (r *paymentRepository) GetLatestByBorrowing(ctx context.Context, borrowingID int32) (*domain.Payment, error) {
	return r.getOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE borrowing_id = $1 ORDER BY id DESC LIMIT 1`, borrowingID)
}

func (r *paymentRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&p.ID, &p.BorrowingID, &p.Status, &p.Kind, &p.SessionID, &p.SessionURL, &p.AmountDueCents, &p.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, id int32) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE payments SET status = 'PAID', amount_due_cents = 0 WHERE id = $1 AND status = 'PENDING'`,
		id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *paymentRepository) SettleFine(ctx context.Context, paymentID, bookID int32) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE payments SET status = 'PAID', amount_due_cents = 0 WHERE id = $1 AND status = 'PENDING'`,
		paymentID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if err := releaseCopy(ctx, tx, bookID); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

func (r *paymentRepository) MarkExpired(ctx context.Context, id int32) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE payments SET status = 'EXPIRED' WHERE id = $1 AND status = 'PENDING'`,
		id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *paymentRepository) ListPending(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = 'PENDING' ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *paymentRepository) List(ctx context.Context, userID int32) ([]domain.Payment, error) {
	query := `SELECT p.id, p.borrowing_id, p.status, p.kind, p.session_id, p.session_url, p.amount_due_cents, p.created_on
	          FROM payments p
	          JOIN borrowings b ON p.borrowing_id = b.id`

	var args []interface{}
	if userID != 0 {
		query += ` WHERE b.user_id = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY b.borrow_date ASC, p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func scanPayments(rows *sql.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BorrowingID, &p.Status, &p.Kind, &p.SessionID, &p.SessionURL, &p.AmountDueCents, &p.CreatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
