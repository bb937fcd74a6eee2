package domain

// UndoKind tags the variant stored in a session's undo slot.
type UndoKind string

const (
	// UndoChargeOrPayment reverses a charge or payment by deleting the
	// transaction row it created.
	UndoChargeOrPayment UndoKind = "charge_or_payment"
	// UndoCustomerDeletion reverses a cascading customer delete by
	// reinserting the customer and every captured transaction with their
	// original ids.
	UndoCustomerDeletion UndoKind = "customer_deletion"
)

// UndoRecord captures the single most recent mutating action of a session.
// Only the fields for its Kind are populated.
type UndoRecord struct {
	Kind          UndoKind      `json:"kind"`
	TransactionID int64         `json:"transaction_id,omitempty"`
	Customer      *Customer     `json:"customer,omitempty"`
	Transactions  []Transaction `json:"transactions,omitempty"`
}

func NewChargeOrPaymentUndo(transactionID int64) UndoRecord {
	return UndoRecord{
		Kind:          UndoChargeOrPayment,
		TransactionID: transactionID,
	}
}

func NewCustomerDeletionUndo(customer *Customer, transactions []Transaction) UndoRecord {
	return UndoRecord{
		Kind:         UndoCustomerDeletion,
		Customer:     customer,
		Transactions: transactions,
	}
}
