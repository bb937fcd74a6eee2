package dto

// ChargeRequestDTO records a purchase, optionally with a partial payment
// made at the same time. An empty date means today; empty amounts mean zero.
type ChargeRequestDTO struct {
	Date           string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PurchaseAmount string `json:"purchase_amount,omitempty"`
	PaidAmount     string `json:"paid_amount,omitempty"`
}

type PaymentRequestDTO struct {
	Amount string `json:"amount" validate:"required"`
}

type TransactionDTO struct {
	ID             int64  `json:"id"`
	Date           string `json:"date"`
	PurchaseAmount string `json:"purchase_amount"`
	PaidAmount     string `json:"paid_amount"`
}

// HistoryResponseDTO is the GET /cliente/{id} payload: the customer's
// transactions newest first plus the balances derived from them.
type HistoryResponseDTO struct {
	CustomerID     int64            `json:"customer_id"`
	CustomerName   string           `json:"customer_name"`
	Transactions   []TransactionDTO `json:"transactions"`
	TotalPurchased string           `json:"total_purchased"`
	TotalPaid      string           `json:"total_paid"`
	Balance        string           `json:"balance"`
}

// RecordedResponseDTO acknowledges a ledger mutation. Undoable reports
// whether the session's undo slot now holds this operation.
type RecordedResponseDTO struct {
	Message       string `json:"message"`
	TransactionID int64  `json:"transaction_id,omitempty"`
	Undoable      bool   `json:"undoable"`
}

type UndoResponseDTO struct {
	Message  string `json:"message"`
	Reversed bool   `json:"reversed"`
}
