package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/vcarvalho/fiado/internal/apperrors"
	"github.com/vcarvalho/fiado/internal/domain"
	"github.com/vcarvalho/fiado/internal/dto"
	"github.com/vcarvalho/fiado/internal/service/undoservice"
	"github.com/vcarvalho/fiado/pkg/auth"
	"github.com/vcarvalho/fiado/pkg/utils"
)

type Service interface {
	CreateCustomer(ctx context.Context, name string) (int64, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomersWithBalances(ctx context.Context) ([]domain.CustomerBalance, error)
	Totals(ctx context.Context) (*domain.LedgerTotals, error)
	ListTransactions(ctx context.Context, customerID int64, order domain.SortOrder) ([]domain.Transaction, error)
	RecordCharge(ctx context.Context, customerID int64, date string, purchaseAmount, paidAmount decimal.Decimal) (int64, error)
	RecordPayment(ctx context.Context, customerID int64, amount decimal.Decimal) (int64, error)
	RenameCustomer(ctx context.Context, id int64, name string) error
	DeleteCustomer(ctx context.Context, id int64) (*domain.Customer, []domain.Transaction, error)
}

type UndoService interface {
	Record(ctx context.Context, sessionID string, record domain.UndoRecord) error
	Undo(ctx context.Context, sessionID string) (undoservice.Result, error)
}

type LedgerHandler struct {
	ledgerService Service
	undoService   UndoService
	validator     *validator.Validate
}

func New(ledgerService Service, undoService UndoService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		undoService:   undoService,
		validator:     validator.New(),
	}
}

// Dashboard godoc
//
//	@Summary		Ledger dashboard
//	@Description	Per-customer balances, summary totals and chart series
//	@Tags			Ledger
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/ [get]
func (h *LedgerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	balances, err := h.ledgerService.ListCustomersWithBalances(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	totals, err := h.ledgerService.Totals(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.DashboardResponseDTO{
		Customers:      make([]dto.CustomerBalanceDTO, 0, len(balances)),
		TotalPurchased: totals.TotalPurchased.StringFixed(2),
		TotalPaid:      totals.TotalPaid.StringFixed(2),
		TotalOwed:      totals.TotalOwed.StringFixed(2),
		ChartNames:     make([]string, 0, len(balances)),
		ChartBalances:  make([]string, 0, len(balances)),
	}
	for _, b := range balances {
		resp.Customers = append(resp.Customers, dto.CustomerBalanceDTO{
			ID:             b.ID,
			Name:           b.Name,
			TotalPurchased: b.TotalPurchased.StringFixed(2),
			TotalPaid:      b.TotalPaid.StringFixed(2),
			Balance:        b.Balance.StringFixed(2),
		})
		resp.ChartNames = append(resp.ChartNames, b.Name)
		resp.ChartBalances = append(resp.ChartBalances, b.Balance.StringFixed(2))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CustomerForm godoc
//
//	@Summary		Customer form
//	@Tags			Customers
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Router			/cliente [get]
func (h *LedgerHandler) CustomerForm(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: "Envie o nome do cliente via POST para cadastrar",
	})
}

// CreateCustomer godoc
//
//	@Summary		Register customer
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCustomerRequestDTO	true	"Customer name"
//	@Success		200		{object}	dto.CreateCustomerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/cliente [post]
func (h *LedgerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Nome do cliente é obrigatório")
		return
	}

	id, err := h.ledgerService.CreateCustomer(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, "Nome do cliente é obrigatório")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateCustomerResponseDTO{
		Message:    "Cliente cadastrado com sucesso",
		CustomerID: id,
	})
}

// History godoc
//
//	@Summary		Customer history
//	@Description	Transactions most recent first plus derived balances
//	@Tags			Customers
//	@Produce		json
//	@Param			id	path		int	true	"Customer id"
//	@Success		200	{object}	dto.HistoryResponseDTO
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/cliente/{id} [get]
func (h *LedgerHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}

	customer, err := h.ledgerService.GetCustomer(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	transactions, err := h.ledgerService.ListTransactions(r.Context(), id, domain.MostRecentFirst)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.HistoryResponseDTO{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Transactions: make([]dto.TransactionDTO, 0, len(transactions)),
	}
	totalPurchased := decimal.Zero
	totalPaid := decimal.Zero
	for _, t := range transactions {
		resp.Transactions = append(resp.Transactions, dto.TransactionDTO{
			ID:             t.ID,
			Date:           t.Date,
			PurchaseAmount: t.PurchaseAmount.StringFixed(2),
			PaidAmount:     t.PaidAmount.StringFixed(2),
		})
		totalPurchased = totalPurchased.Add(t.PurchaseAmount)
		totalPaid = totalPaid.Add(t.PaidAmount)
	}
	resp.TotalPurchased = totalPurchased.StringFixed(2)
	resp.TotalPaid = totalPaid.StringFixed(2)
	resp.Balance = totalPurchased.Sub(totalPaid).StringFixed(2)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ChargeForm godoc
//
//	@Summary		Charge form
//	@Tags			Transactions
//	@Produce		json
//	@Param			id	path		int	true	"Customer id"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Router			/lancar/{id} [get]
func (h *LedgerHandler) ChargeForm(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}
	customer, err := h.ledgerService.GetCustomer(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: "Envie data e valores via POST para lançar para " + customer.Name,
	})
}

// RecordCharge godoc
//
//	@Summary		Record charge
//	@Description	Append a purchase row, optionally with a payment made on the spot
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Customer id"
//	@Param			request	body		dto.ChargeRequestDTO	true	"Charge request body"
//	@Success		200		{object}	dto.RecordedResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date or amount"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/lancar/{id} [post]
func (h *LedgerHandler) RecordCharge(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}

	var req dto.ChargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Data inválida, use AAAA-MM-DD")
		return
	}
	purchase, err := parseAmount(req.PurchaseAmount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Valor de compra inválido")
		return
	}
	paid, err := parseAmount(req.PaidAmount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Valor pago inválido")
		return
	}

	txID, err := h.ledgerService.RecordCharge(r.Context(), id, req.Date, purchase, paid)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	undoable := h.recordUndo(r, domain.NewChargeOrPaymentUndo(txID))
	utils.RespondWithJSON(w, http.StatusOK, dto.RecordedResponseDTO{
		Message:       "Lançamento registrado, pode desfazer",
		TransactionID: txID,
		Undoable:      undoable,
	})
}

// RecordPayment godoc
//
//	@Summary		Record payment
//	@Description	Append a payment-only row dated today
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Customer id"
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment request body"
//	@Success		200		{object}	dto.RecordedResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/pagamento/{id} [post]
func (h *LedgerHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}

	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Valor de pagamento inválido")
		return
	}

	txID, err := h.ledgerService.RecordPayment(r.Context(), id, amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	undoable := h.recordUndo(r, domain.NewChargeOrPaymentUndo(txID))
	utils.RespondWithJSON(w, http.StatusOK, dto.RecordedResponseDTO{
		Message:       "Pagamento registrado, pode desfazer",
		TransactionID: txID,
		Undoable:      undoable,
	})
}

// DeleteCustomer godoc
//
//	@Summary		Delete customer
//	@Description	Remove the customer and every transaction, keeping a snapshot in the undo slot
//	@Tags			Customers
//	@Produce		json
//	@Param			id	path		int	true	"Customer id"
//	@Success		200	{object}	dto.RecordedResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/excluir/{id} [get]
func (h *LedgerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}

	customer, transactions, err := h.ledgerService.DeleteCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithJSON(w, http.StatusOK, utils.Response{
				Message: "Cliente não encontrado",
			})
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	undoable := h.recordUndo(r, domain.NewCustomerDeletionUndo(customer, transactions))
	utils.RespondWithJSON(w, http.StatusOK, dto.RecordedResponseDTO{
		Message:  "Cliente excluído, pode desfazer",
		Undoable: undoable,
	})
}

// Undo godoc
//
//	@Summary		Undo last operation
//	@Description	Reverse the session's last recorded mutation, if any
//	@Tags			Ledger
//	@Produce		json
//	@Success		200	{object}	dto.UndoResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/desfazer [post]
func (h *LedgerHandler) Undo(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	result, err := h.undoService.Undo(r.Context(), sess.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if result == undoservice.NothingToUndo {
		utils.RespondWithJSON(w, http.StatusOK, dto.UndoResponseDTO{
			Message:  "Nada para desfazer",
			Reversed: false,
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UndoResponseDTO{
		Message:  "Operação desfeita",
		Reversed: true,
	})
}

// RenameForm godoc
//
//	@Summary		Rename form
//	@Tags			Customers
//	@Produce		json
//	@Param			id	path		int	true	"Customer id"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Router			/editar/{id} [get]
func (h *LedgerHandler) RenameForm(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}
	customer, err := h.ledgerService.GetCustomer(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: "Envie o novo nome via POST para renomear " + customer.Name,
	})
}

// RenameCustomer godoc
//
//	@Summary		Rename customer
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Customer id"
//	@Param			request	body		dto.RenameCustomerRequestDTO	true	"New name"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/editar/{id} [post]
func (h *LedgerHandler) RenameCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}

	var req dto.RenameCustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Nome do cliente é obrigatório")
		return
	}

	if err := h.ledgerService.RenameCustomer(r.Context(), id, req.Name); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: "Cliente atualizado com sucesso",
	})
}

// recordUndo stores the record in the session's slot. A failure here must
// not fail the mutation that already happened, so it only downgrades the
// response's undoable flag.
func (h *LedgerHandler) recordUndo(r *http.Request, record domain.UndoRecord) bool {
	sess := auth.SessionFromContext(r.Context())
	if sess == nil {
		return false
	}
	return h.undoService.Record(r.Context(), sess.ID, record) == nil
}

func customerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Cliente não encontrado")
		return 0, false
	}
	return id, true
}

// parseAmount follows the form semantics: an empty field means zero.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Cliente não encontrado")
	case errors.Is(err, apperrors.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
