package undoservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/vcarvalho/fiado/internal/domain"
	"github.com/vcarvalho/fiado/internal/session"
)

func NewMock(t *testing.T) (*Service, *MockCustomerRepo, *MockTransactionRepo, *session.Store) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	sessions := session.NewStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), time.Hour)
	customerRepo := NewMockCustomerRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(customerRepo, transactionRepo, txManager, sessions)
	return service, customerRepo, transactionRepo, sessions
}

func TestUndo_EmptySlot(t *testing.T) {
	service, _, _, sessions := NewMock(t)
	ctx := context.Background()

	sess, err := sessions.Create(ctx, 1)
	require.NoError(t, err)

	result, err := service.Undo(ctx, sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, NothingToUndo, result)
}

func TestUndo_ChargeOrPayment(t *testing.T) {
	service, _, transactionRepo, sessions := NewMock(t)
	ctx := context.Background()

	sess, err := sessions.Create(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, service.Record(ctx, sess.ID, domain.NewChargeOrPaymentUndo(42)))

	transactionRepo.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)

	result, err := service.Undo(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, Reversed, result)

	// The slot is consumed; a second undo is a no-op.
	result, err = service.Undo(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, NothingToUndo, result)
}

func TestUndo_CustomerDeletion(t *testing.T) {
	service, customerRepo, transactionRepo, sessions := NewMock(t)
	ctx := context.Background()

	sess, err := sessions.Create(ctx, 1)
	require.NoError(t, err)

	customer := &domain.Customer{ID: 3, Name: "Maria"}
	transactions := []domain.Transaction{
		{ID: 10, CustomerID: 3, Date: "2025-01-02", PurchaseAmount: decimal.NewFromInt(100)},
		{ID: 11, CustomerID: 3, Date: "2025-01-10", PaidAmount: decimal.RequireFromString("15.50")},
	}
	require.NoError(t, service.Record(ctx, sess.ID, domain.NewCustomerDeletionUndo(customer, transactions)))

	var restoredCustomer *domain.Customer
	var restored []domain.Transaction
	customerRepo.EXPECT().ReinsertWithID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Customer) error {
			restoredCustomer = c
			return nil
		})
	transactionRepo.EXPECT().ReinsertWithID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *domain.Transaction) error {
			restored = append(restored, *tr)
			return nil
		}).Times(2)

	result, err := service.Undo(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, Reversed, result)

	// Ids and values survive the round trip through the session store.
	assert.Equal(t, customer, restoredCustomer)
	require.Len(t, restored, 2)
	assert.Equal(t, int64(10), restored[0].ID)
	assert.Equal(t, int64(11), restored[1].ID)
	assert.True(t, restored[0].PurchaseAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, restored[1].PaidAmount.Equal(decimal.RequireFromString("15.50")))
}

func TestRecord_OverwritesPreviousSlot(t *testing.T) {
	service, _, transactionRepo, sessions := NewMock(t)
	ctx := context.Background()

	sess, err := sessions.Create(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, service.Record(ctx, sess.ID, domain.NewChargeOrPaymentUndo(1)))
	require.NoError(t, service.Record(ctx, sess.ID, domain.NewChargeOrPaymentUndo(2)))

	// Only the most recent action is reversible.
	transactionRepo.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)

	result, err := service.Undo(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, Reversed, result)
}

func TestUndo_SlotClearedEvenOnFailure(t *testing.T) {
	service, _, transactionRepo, sessions := NewMock(t)
	ctx := context.Background()

	sess, err := sessions.Create(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, service.Record(ctx, sess.ID, domain.NewChargeOrPaymentUndo(42)))

	transactionRepo.EXPECT().Delete(gomock.Any(), int64(42)).Return(errors.New("db error"))

	_, err = service.Undo(ctx, sess.ID)
	assert.Error(t, err)

	result, err := service.Undo(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, NothingToUndo, result)
}

func TestUndo_SessionsAreIsolated(t *testing.T) {
	service, _, transactionRepo, sessions := NewMock(t)
	ctx := context.Background()

	first, err := sessions.Create(ctx, 1)
	require.NoError(t, err)
	second, err := sessions.Create(ctx, 2)
	require.NoError(t, err)

	require.NoError(t, service.Record(ctx, first.ID, domain.NewChargeOrPaymentUndo(7)))

	result, err := service.Undo(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, NothingToUndo, result)

	transactionRepo.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
	result, err = service.Undo(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, Reversed, result)
}
