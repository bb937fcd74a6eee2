package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/vcarvalho/fiado/internal/apperrors"
	"github.com/vcarvalho/fiado/internal/domain"
	"github.com/vcarvalho/fiado/internal/dto"
	"github.com/vcarvalho/fiado/internal/service/undoservice"
	"github.com/vcarvalho/fiado/internal/session"
	"github.com/vcarvalho/fiado/pkg/auth"
	"github.com/vcarvalho/fiado/pkg/utils"
)

func NewMock(t *testing.T) (*LedgerHandler, *MockService, *MockUndoService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := NewMockService(ctrl)
	undoService := NewMockUndoService(ctrl)
	handler := New(service, undoService)
	return handler, service, undoService
}

func newRequest(t *testing.T, method, target, body string, id int64) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)

	ctx := context.WithValue(req.Context(), auth.SessionKey, &session.Session{ID: "sess-1", AccountID: 1})
	if id > 0 {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", fmt.Sprintf("%d", id))
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestDashboardHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().ListCustomersWithBalances(gomock.Any()).Return([]domain.CustomerBalance{
		{
			ID:             1,
			Name:           "Maria",
			TotalPurchased: decimal.RequireFromString("100"),
			TotalPaid:      decimal.RequireFromString("35.5"),
			Balance:        decimal.RequireFromString("64.5"),
		},
	}, nil)
	service.EXPECT().Totals(gomock.Any()).Return(&domain.LedgerTotals{
		Customers:      1,
		TotalPurchased: decimal.RequireFromString("100"),
		TotalPaid:      decimal.RequireFromString("35.5"),
		TotalOwed:      decimal.RequireFromString("64.5"),
	}, nil)

	rr := httptest.NewRecorder()
	handler.Dashboard(rr, newRequest(t, "GET", "/", "", 0))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp dto.DashboardResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "64.50", resp.TotalOwed)
	require.Len(t, resp.Customers, 1)
	assert.Equal(t, "Maria", resp.Customers[0].Name)
	assert.Equal(t, "64.50", resp.Customers[0].Balance)
	assert.Equal(t, []string{"Maria"}, resp.ChartNames)
	assert.Equal(t, []string{"64.50"}, resp.ChartBalances)
}

func TestCreateCustomerHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"name":"Maria"}`,
			prepareMock: func() {
				service.EXPECT().CreateCustomer(gomock.Any(), "Maria").Return(int64(1), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing name",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Nome do cliente é obrigatório",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.CreateCustomer(rr, newRequest(t, "POST", "/cliente", tt.body, 0))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestHistoryHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Happy path", func(t *testing.T) {
		service.EXPECT().GetCustomer(gomock.Any(), int64(1)).
			Return(&domain.Customer{ID: 1, Name: "Maria"}, nil)
		service.EXPECT().ListTransactions(gomock.Any(), int64(1), domain.MostRecentFirst).
			Return([]domain.Transaction{
				{ID: 2, CustomerID: 1, Date: "2025-06-10", PurchaseAmount: decimal.Zero, PaidAmount: decimal.RequireFromString("35.5")},
				{ID: 1, CustomerID: 1, Date: "2025-06-01", PurchaseAmount: decimal.RequireFromString("100"), PaidAmount: decimal.Zero},
			}, nil)

		rr := httptest.NewRecorder()
		handler.History(rr, newRequest(t, "GET", "/cliente/1", "", 1))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp dto.HistoryResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Maria", resp.CustomerName)
		require.Len(t, resp.Transactions, 2)
		assert.Equal(t, "2025-06-10", resp.Transactions[0].Date)
		assert.Equal(t, "100.00", resp.TotalPurchased)
		assert.Equal(t, "35.50", resp.TotalPaid)
		assert.Equal(t, "64.50", resp.Balance)
	})

	t.Run("Unknown customer", func(t *testing.T) {
		service.EXPECT().GetCustomer(gomock.Any(), int64(9)).
			Return(nil, fmt.Errorf("customer 9: %w", apperrors.ErrNotFound))

		rr := httptest.NewRecorder()
		handler.History(rr, newRequest(t, "GET", "/cliente/9", "", 9))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Malformed id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cliente/abc", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "abc")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rr := httptest.NewRecorder()
		handler.History(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRecordChargeHandler(t *testing.T) {
	handler, service, undoService := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Charge with explicit date",
			body: `{"date":"2025-06-01","purchase_amount":"100.00","paid_amount":"20.00"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordCharge(gomock.Any(), int64(1), "2025-06-01",
						decimal.RequireFromString("100.00"), decimal.RequireFromString("20.00")).
					Return(int64(7), nil)
				undoService.EXPECT().
					Record(gomock.Any(), "sess-1", domain.NewChargeOrPaymentUndo(7)).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Empty amounts default to zero",
			body: `{"date":"2025-06-01"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordCharge(gomock.Any(), int64(1), "2025-06-01", decimal.Zero, decimal.Zero).
					Return(int64(8), nil)
				undoService.EXPECT().
					Record(gomock.Any(), "sess-1", domain.NewChargeOrPaymentUndo(8)).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Malformed date",
			body:          `{"date":"01/06/2025","purchase_amount":"100.00"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Data inválida, use AAAA-MM-DD",
		},
		{
			name:          "Non-numeric amount",
			body:          `{"purchase_amount":"abc"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Valor de compra inválido",
		},
		{
			name: "Unknown customer",
			body: `{"purchase_amount":"100.00"}`,
			prepareMock: func() {
				service.EXPECT().
					RecordCharge(gomock.Any(), int64(1), "", decimal.RequireFromString("100.00"), decimal.Zero).
					Return(int64(0), fmt.Errorf("customer 1: %w", apperrors.ErrNotFound))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Cliente não encontrado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.RecordCharge(rr, newRequest(t, "POST", "/lancar/1", tt.body, 1))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.RecordedResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.True(t, resp.Undoable)
			}
		})
	}
}

func TestRecordPaymentHandler(t *testing.T) {
	handler, service, undoService := NewMock(t)

	service.EXPECT().
		RecordPayment(gomock.Any(), int64(1), decimal.RequireFromString("35.50")).
		Return(int64(9), nil)
	undoService.EXPECT().
		Record(gomock.Any(), "sess-1", domain.NewChargeOrPaymentUndo(9)).
		Return(nil)

	rr := httptest.NewRecorder()
	handler.RecordPayment(rr, newRequest(t, "POST", "/pagamento/1", `{"amount":"35.50"}`, 1))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp dto.RecordedResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(9), resp.TransactionID)
	assert.True(t, resp.Undoable)
}

func TestDeleteCustomerHandler(t *testing.T) {
	handler, service, undoService := NewMock(t)

	t.Run("Snapshot goes to the undo slot", func(t *testing.T) {
		customer := &domain.Customer{ID: 1, Name: "Maria"}
		transactions := []domain.Transaction{
			{ID: 1, CustomerID: 1, Date: "2025-06-01", PurchaseAmount: decimal.RequireFromString("100"), PaidAmount: decimal.Zero},
		}
		service.EXPECT().DeleteCustomer(gomock.Any(), int64(1)).
			Return(customer, transactions, nil)
		undoService.EXPECT().
			Record(gomock.Any(), "sess-1", domain.NewCustomerDeletionUndo(customer, transactions)).
			Return(nil)

		rr := httptest.NewRecorder()
		handler.DeleteCustomer(rr, newRequest(t, "GET", "/excluir/1", "", 1))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp dto.RecordedResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Undoable)
	})

	t.Run("Unknown customer downgrades to a message", func(t *testing.T) {
		service.EXPECT().DeleteCustomer(gomock.Any(), int64(9)).
			Return(nil, nil, fmt.Errorf("customer 9: %w", apperrors.ErrNotFound))

		rr := httptest.NewRecorder()
		handler.DeleteCustomer(rr, newRequest(t, "GET", "/excluir/9", "", 9))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Cliente não encontrado", resp.Message)
	})
}

func TestUndoHandler(t *testing.T) {
	handler, _, undoService := NewMock(t)

	t.Run("Reversed", func(t *testing.T) {
		undoService.EXPECT().Undo(gomock.Any(), "sess-1").Return(undoservice.Reversed, nil)

		rr := httptest.NewRecorder()
		handler.Undo(rr, newRequest(t, "POST", "/desfazer", "", 0))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp dto.UndoResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Reversed)
	})

	t.Run("Empty slot", func(t *testing.T) {
		undoService.EXPECT().Undo(gomock.Any(), "sess-1").Return(undoservice.NothingToUndo, nil)

		rr := httptest.NewRecorder()
		handler.Undo(rr, newRequest(t, "POST", "/desfazer", "", 0))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp dto.UndoResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.False(t, resp.Reversed)
		assert.Equal(t, "Nada para desfazer", resp.Message)
	})
}

func TestRenameCustomerHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Successful rename", func(t *testing.T) {
		service.EXPECT().RenameCustomer(gomock.Any(), int64(1), "Maria Silva").Return(nil)

		rr := httptest.NewRecorder()
		handler.RenameCustomer(rr, newRequest(t, "POST", "/editar/1", `{"name":"Maria Silva"}`, 1))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown customer", func(t *testing.T) {
		service.EXPECT().RenameCustomer(gomock.Any(), int64(9), "Maria").
			Return(fmt.Errorf("customer 9: %w", apperrors.ErrNotFound))

		rr := httptest.NewRecorder()
		handler.RenameCustomer(rr, newRequest(t, "POST", "/editar/9", `{"name":"Maria"}`, 9))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
