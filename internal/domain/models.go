package domain

import "github.com/shopspring/decimal"

// DateLayout is the calendar-date format stored on transactions.
const DateLayout = "2006-01-02"

type Customer struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Transaction struct {
	ID             int64           `db:"id" json:"id"`
	CustomerID     int64           `db:"customer_id" json:"customer_id"`
	Date           string          `db:"date" json:"date"`
	PurchaseAmount decimal.Decimal `db:"purchase_amount" json:"purchase_amount"`
	PaidAmount     decimal.Decimal `db:"paid_amount" json:"paid_amount"`
}

// CustomerBalance is the per-customer aggregate derived from transaction
// rows. It is never persisted.
type CustomerBalance struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	TotalPurchased decimal.Decimal `db:"total_purchased"`
	TotalPaid      decimal.Decimal `db:"total_paid"`
	Balance        decimal.Decimal `db:"balance"`
}

// LedgerTotals feeds the dashboard summary cards.
type LedgerTotals struct {
	Customers      int64           `db:"customers"`
	TotalPurchased decimal.Decimal `db:"total_purchased"`
	TotalPaid      decimal.Decimal `db:"total_paid"`
	TotalOwed      decimal.Decimal `db:"total_owed"`
}

type Account struct {
	ID           int64  `db:"id"`
	Login        string `db:"login"`
	PasswordHash string `db:"password_hash"`
}

type SortOrder string

const (
	MostRecentFirst SortOrder = "most_recent_first"
	Chronological   SortOrder = "chronological"
)
