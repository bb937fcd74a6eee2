package dto

type CreateCustomerRequestDTO struct {
	Name string `json:"name" validate:"required"`
}

type RenameCustomerRequestDTO struct {
	Name string `json:"name" validate:"required"`
}

type CreateCustomerResponseDTO struct {
	Message    string `json:"message"`
	CustomerID int64  `json:"customer_id"`
}

// CustomerBalanceDTO is one dashboard row. All money fields are decimal
// strings with two fraction digits.
type CustomerBalanceDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	TotalPurchased string `json:"total_purchased"`
	TotalPaid      string `json:"total_paid"`
	Balance        string `json:"balance"`
}

// DashboardResponseDTO is the GET / payload: the per-customer rows, the
// ledger totals, and parallel name/balance arrays for the balance chart.
type DashboardResponseDTO struct {
	Customers      []CustomerBalanceDTO `json:"customers"`
	TotalPurchased string               `json:"total_purchased"`
	TotalPaid      string               `json:"total_paid"`
	TotalOwed      string               `json:"total_owed"`
	ChartNames     []string             `json:"chart_names"`
	ChartBalances  []string             `json:"chart_balances"`
}
