package transactionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/vcarvalho/fiado/internal/domain"
	"github.com/vcarvalho/fiado/internal/sqlite"
)

type Repository struct {
	db sqlite.Database
}

func New(db sqlite.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Insert(ctx context.Context, t *domain.Transaction) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO transactions (customer_id, date, purchase_amount, paid_amount) VALUES (?, ?, ?, ?)",
		t.CustomerID, t.Date, t.PurchaseAmount, t.PaidAmount)
	if err != nil {
		zap.L().Error("can't insert transaction", zap.Error(err))
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID int64, order domain.SortOrder) ([]domain.Transaction, error) {
	query := "SELECT id, customer_id, date, purchase_amount, paid_amount FROM transactions WHERE customer_id = ? ORDER BY date DESC, id DESC"
	if order == domain.Chronological {
		query = "SELECT id, customer_id, date, purchase_amount, paid_amount FROM transactions WHERE customer_id = ? ORDER BY date ASC, id ASC"
	}

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.CustomerID, &t.Date, &t.PurchaseAmount, &t.PaidAmount); err != nil {
			zap.L().Error("can't scan transaction", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

// Delete is a no-op when the row is already gone; undo may call it more
// than once.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id); err != nil {
		zap.L().Error("can't delete transaction", zap.Error(err))
		return err
	}
	return nil
}

// ReinsertWithID restores a transaction under its original id, overwriting
// any conflicting row.
func (r *Repository) ReinsertWithID(ctx context.Context, t *domain.Transaction) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO transactions (id, customer_id, date, purchase_amount, paid_amount) VALUES (?, ?, ?, ?, ?)",
		t.ID, t.CustomerID, t.Date, t.PurchaseAmount, t.PaidAmount)
	if err != nil {
		zap.L().Error("can't reinsert transaction", zap.Error(err))
		return err
	}
	return nil
}
