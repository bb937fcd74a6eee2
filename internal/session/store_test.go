package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcarvalho/fiado/internal/apperrors"
	"github.com/vcarvalho/fiado/internal/domain"
)

func setupTestStore(t *testing.T) (*miniredis.Miniredis, *Store) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewStore(rdb, time.Hour)
}

func TestStore_CreateAndGet(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, int64(1), loaded.AccountID)
	assert.Nil(t, loaded.Undo)
}

func TestStore_GetUnknown(t *testing.T) {
	_, store := setupTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_UndoSlotRoundTrip(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, 1)
	require.NoError(t, err)

	rec := domain.NewCustomerDeletionUndo(
		&domain.Customer{ID: 3, Name: "Maria"},
		[]domain.Transaction{{
			ID:             10,
			CustomerID:     3,
			Date:           "2025-01-02",
			PurchaseAmount: decimal.RequireFromString("15.50"),
			PaidAmount:     decimal.Zero,
		}},
	)
	sess.Undo = &rec
	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Undo)
	assert.Equal(t, domain.UndoCustomerDeletion, loaded.Undo.Kind)
	assert.Equal(t, int64(3), loaded.Undo.Customer.ID)
	require.Len(t, loaded.Undo.Transactions, 1)
	assert.True(t, loaded.Undo.Transactions[0].PurchaseAmount.Equal(decimal.RequireFromString("15.50")))
}

func TestStore_SlotsAreSessionScoped(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, 1)
	require.NoError(t, err)
	second, err := store.Create(ctx, 1)
	require.NoError(t, err)

	rec := domain.NewChargeOrPaymentUndo(42)
	first.Undo = &rec
	require.NoError(t, store.Save(ctx, first))

	loaded, err := store.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.Undo, "one session's undo slot must not leak into another")
}

func TestStore_Expiry(t *testing.T) {
	mr, store := setupTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, 1)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
