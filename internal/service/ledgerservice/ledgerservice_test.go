package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/vcarvalho/fiado/internal/apperrors"
	"github.com/vcarvalho/fiado/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockCustomerRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	customerRepo := NewMockCustomerRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	service := New(customerRepo, transactionRepo)
	t.Cleanup(ctrl.Finish)
	return service, customerRepo, transactionRepo
}

func TestCreateCustomer(t *testing.T) {
	service, customerRepo, _ := NewMock(t)

	tests := []struct {
		name        string
		input       string
		prepareMock func()
		expectedID  int64
		expectedErr error
	}{
		{
			name:  "Creates customer with trimmed name",
			input: "  Maria  ",
			prepareMock: func() {
				customerRepo.EXPECT().Create(gomock.Any(), "Maria").Return(int64(1), nil)
			},
			expectedID: 1,
		},
		{
			name:        "Empty name fails validation",
			input:       "   ",
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:  "Repository error",
			input: "Maria",
			prepareMock: func() {
				customerRepo.EXPECT().Create(gomock.Any(), "Maria").Return(int64(0), errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			id, err := service.CreateCustomer(context.Background(), tt.input)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, apperrors.ErrValidation) {
					assert.ErrorIs(t, err, apperrors.ErrValidation)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
		})
	}
}

func TestGetCustomer(t *testing.T) {
	service, customerRepo, _ := NewMock(t)

	t.Run("Existing customer", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&domain.Customer{ID: 1, Name: "Maria"}, nil)

		customer, err := service.GetCustomer(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Maria", customer.Name)
	})

	t.Run("Missing customer", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := service.GetCustomer(context.Background(), 99)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestRecordCharge(t *testing.T) {
	service, customerRepo, transactionRepo := NewMock(t)
	customer := &domain.Customer{ID: 1, Name: "Maria"}

	t.Run("Explicit date", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(customer, nil)
		transactionRepo.EXPECT().Insert(gomock.Any(), &domain.Transaction{
			CustomerID:     1,
			Date:           "2025-01-02",
			PurchaseAmount: decimal.RequireFromString("100.00"),
			PaidAmount:     decimal.RequireFromString("20.00"),
		}).Return(int64(10), nil)

		id, err := service.RecordCharge(context.Background(), 1, "2025-01-02",
			decimal.RequireFromString("100.00"), decimal.RequireFromString("20.00"))
		assert.NoError(t, err)
		assert.Equal(t, int64(10), id)
	})

	t.Run("Missing date defaults to today", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(customer, nil)

		var inserted *domain.Transaction
		transactionRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *domain.Transaction) (int64, error) {
				inserted = tr
				return 11, nil
			})

		_, err := service.RecordCharge(context.Background(), 1, "",
			decimal.NewFromInt(50), decimal.Zero)
		require.NoError(t, err)
		require.NotNil(t, inserted)
		assert.Equal(t, time.Now().Format(domain.DateLayout), inserted.Date)
	})

	t.Run("Malformed date fails validation", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(customer, nil)

		_, err := service.RecordCharge(context.Background(), 1, "02/01/2025",
			decimal.NewFromInt(50), decimal.Zero)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Negative amount fails validation", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(customer, nil)

		_, err := service.RecordCharge(context.Background(), 1, "2025-01-02",
			decimal.NewFromInt(-5), decimal.Zero)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Unknown customer", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := service.RecordCharge(context.Background(), 99, "2025-01-02",
			decimal.NewFromInt(50), decimal.Zero)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestRecordPayment(t *testing.T) {
	service, customerRepo, transactionRepo := NewMock(t)
	customer := &domain.Customer{ID: 1, Name: "Maria"}

	t.Run("Payment inserts purchase zero dated today", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(customer, nil)

		var inserted *domain.Transaction
		transactionRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *domain.Transaction) (int64, error) {
				inserted = tr
				return 12, nil
			})

		id, err := service.RecordPayment(context.Background(), 1, decimal.RequireFromString("15.50"))
		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
		assert.True(t, inserted.PurchaseAmount.IsZero())
		assert.True(t, inserted.PaidAmount.Equal(decimal.RequireFromString("15.50")))
		assert.Equal(t, time.Now().Format(domain.DateLayout), inserted.Date)
	})

	t.Run("Negative payment fails validation", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(customer, nil)

		_, err := service.RecordPayment(context.Background(), 1, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestBalanceDerivation(t *testing.T) {
	// Recording a payment of 15.50 on top of purchased=100.00/paid=20.00
	// must yield paid=35.50 and balance=64.50, computed from the rows.
	service, customerRepo, _ := NewMock(t)

	customerRepo.EXPECT().ListWithBalances(gomock.Any()).Return([]domain.CustomerBalance{
		{
			ID:             1,
			Name:           "Maria",
			TotalPurchased: decimal.RequireFromString("100.00"),
			TotalPaid:      decimal.RequireFromString("35.50"),
			Balance:        decimal.RequireFromString("64.50"),
		},
	}, nil)

	balances, err := service.ListCustomersWithBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.True(t, balances[0].Balance.Equal(balances[0].TotalPurchased.Sub(balances[0].TotalPaid)))
}

func TestRenameCustomer(t *testing.T) {
	service, customerRepo, _ := NewMock(t)

	t.Run("Renames existing customer", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(1)).
			Return(&domain.Customer{ID: 1, Name: "Maria"}, nil)
		customerRepo.EXPECT().UpdateName(gomock.Any(), int64(1), "Maria Silva").Return(nil)

		assert.NoError(t, service.RenameCustomer(context.Background(), 1, " Maria Silva "))
	})

	t.Run("Empty name fails validation", func(t *testing.T) {
		err := service.RenameCustomer(context.Background(), 1, " ")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Missing customer", func(t *testing.T) {
		customerRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		err := service.RenameCustomer(context.Background(), 99, "Maria")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestDeleteCustomer(t *testing.T) {
	service, customerRepo, _ := NewMock(t)

	t.Run("Returns snapshot of removed rows", func(t *testing.T) {
		transactions := []domain.Transaction{
			{ID: 10, CustomerID: 1, Date: "2025-01-02", PurchaseAmount: decimal.NewFromInt(100)},
		}
		customerRepo.EXPECT().DeleteCascade(gomock.Any(), int64(1)).
			Return(&domain.Customer{ID: 1, Name: "Maria"}, transactions, nil)

		customer, snapshot, err := service.DeleteCustomer(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), customer.ID)
		assert.Equal(t, transactions, snapshot)
	})

	t.Run("Missing customer", func(t *testing.T) {
		customerRepo.EXPECT().DeleteCascade(gomock.Any(), int64(99)).
			Return(nil, nil, apperrors.ErrNotFound)

		_, _, err := service.DeleteCustomer(context.Background(), 99)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
