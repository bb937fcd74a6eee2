package customerrepo

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/vcarvalho/fiado/internal/apperrors"
	"github.com/vcarvalho/fiado/internal/domain"
	"github.com/vcarvalho/fiado/internal/sqlite"
)

type Repository struct {
	db        sqlite.Database
	txManager sqlite.TXManager
}

func New(db sqlite.Database, txManager sqlite.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO customers (name) VALUES (?)", name)
	if err != nil {
		zap.L().Error("can't create customer", zap.Error(err))
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM customers WHERE id = ?", id).
		Scan(&customer.ID, &customer.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find customer", zap.Error(err))
		return nil, err
	}
	return &customer, nil
}

// ListWithBalances derives every aggregate from the transaction rows. The
// outer join keeps customers with zero transactions in the result with
// all-zero sums.
func (r *Repository) ListWithBalances(ctx context.Context) ([]domain.CustomerBalance, error) {
	query := `
        SELECT customers.id,
               customers.name,
               COALESCE(SUM(transactions.purchase_amount), 0) AS total_purchased,
               COALESCE(SUM(transactions.paid_amount), 0) AS total_paid,
               COALESCE(SUM(transactions.purchase_amount), 0) - COALESCE(SUM(transactions.paid_amount), 0) AS balance
        FROM customers
        LEFT JOIN transactions ON customers.id = transactions.customer_id
        GROUP BY customers.id, customers.name
        ORDER BY customers.name COLLATE NOCASE
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		zap.L().Error("can't list customer balances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var balances []domain.CustomerBalance
	for rows.Next() {
		var b domain.CustomerBalance
		if err := rows.Scan(&b.ID, &b.Name, &b.TotalPurchased, &b.TotalPaid, &b.Balance); err != nil {
			zap.L().Error("can't scan customer balance", zap.Error(err))
			return nil, err
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return balances, nil
}

func (r *Repository) UpdateName(ctx context.Context, id int64, name string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE customers SET name = ? WHERE id = ?", name, id)
	if err != nil {
		zap.L().Error("can't rename customer", zap.Error(err))
		return err
	}
	return nil
}

// DeleteCascade removes the customer and all its transactions in a single
// transaction and returns the removed rows so the caller can snapshot them.
func (r *Repository) DeleteCascade(ctx context.Context, id int64) (*domain.Customer, []domain.Transaction, error) {
	var (
		customer     domain.Customer
		transactions []domain.Transaction
	)

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRowContext(ctx, "SELECT id, name FROM customers WHERE id = ?", id).
			Scan(&customer.ID, &customer.Name)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return err
		}

		rows, err := r.db.QueryContext(ctx,
			"SELECT id, customer_id, date, purchase_amount, paid_amount FROM transactions WHERE customer_id = ? ORDER BY id",
			id)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var t domain.Transaction
			if err := rows.Scan(&t.ID, &t.CustomerID, &t.Date, &t.PurchaseAmount, &t.PaidAmount); err != nil {
				return err
			}
			transactions = append(transactions, t)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		if _, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE customer_id = ?", id); err != nil {
			return err
		}
		if _, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			zap.L().Error("can't delete customer", zap.Int64("id", id), zap.Error(err))
		}
		return nil, nil, err
	}
	return &customer, transactions, nil
}

// ReinsertWithID restores a customer under its original id, overwriting any
// conflicting row so that repeated restores stay idempotent.
func (r *Repository) ReinsertWithID(ctx context.Context, customer *domain.Customer) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO customers (id, name) VALUES (?, ?)",
		customer.ID, customer.Name)
	if err != nil {
		zap.L().Error("can't reinsert customer", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Totals(ctx context.Context) (*domain.LedgerTotals, error) {
	query := `
        SELECT (SELECT COUNT(*) FROM customers) AS customers,
               COALESCE(SUM(purchase_amount), 0) AS total_purchased,
               COALESCE(SUM(paid_amount), 0) AS total_paid
        FROM transactions
    `
	var totals domain.LedgerTotals
	err := r.db.QueryRowContext(ctx, query).
		Scan(&totals.Customers, &totals.TotalPurchased, &totals.TotalPaid)
	if err != nil {
		zap.L().Error("can't load ledger totals", zap.Error(err))
		return nil, err
	}
	totals.TotalOwed = totals.TotalPurchased.Sub(totals.TotalPaid)
	return &totals, nil
}
