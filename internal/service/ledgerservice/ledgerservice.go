package ledgerservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vcarvalho/fiado/internal/apperrors"
	"github.com/vcarvalho/fiado/internal/domain"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

type CustomerRepo interface {
	Create(ctx context.Context, name string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	ListWithBalances(ctx context.Context) ([]domain.CustomerBalance, error)
	UpdateName(ctx context.Context, id int64, name string) error
	DeleteCascade(ctx context.Context, id int64) (*domain.Customer, []domain.Transaction, error)
	Totals(ctx context.Context) (*domain.LedgerTotals, error)
}

type TransactionRepo interface {
	Insert(ctx context.Context, t *domain.Transaction) (int64, error)
	ListByCustomer(ctx context.Context, customerID int64, order domain.SortOrder) ([]domain.Transaction, error)
}

// Service records ledger mutations and serves the derived views. Balances
// are always computed from the persisted transaction rows.
type Service struct {
	customerRepo    CustomerRepo
	transactionRepo TransactionRepo
}

func New(customerRepo CustomerRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *Service) CreateCustomer(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("customer name is required: %w", apperrors.ErrValidation)
	}

	id, err := s.customerRepo.Create(ctx, name)
	if err != nil {
		zap.L().Error("failed to create customer", zap.Error(err))
		return 0, err
	}
	zap.L().Info("customer created", zap.Int64("id", id), zap.String("name", name))
	return id, nil
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get customer", zap.Error(err))
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %d: %w", id, apperrors.ErrNotFound)
	}
	return customer, nil
}

func (s *Service) ListCustomersWithBalances(ctx context.Context) ([]domain.CustomerBalance, error) {
	balances, err := s.customerRepo.ListWithBalances(ctx)
	if err != nil {
		zap.L().Error("failed to list customer balances", zap.Error(err))
		return nil, err
	}
	return balances, nil
}

func (s *Service) Totals(ctx context.Context) (*domain.LedgerTotals, error) {
	totals, err := s.customerRepo.Totals(ctx)
	if err != nil {
		zap.L().Error("failed to load ledger totals", zap.Error(err))
		return nil, err
	}
	return totals, nil
}

func (s *Service) ListTransactions(ctx context.Context, customerID int64, order domain.SortOrder) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListByCustomer(ctx, customerID, order)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// RecordCharge appends a "lançamento" row: a purchase, optionally combined
// with a payment made on the spot. An empty date defaults to today.
func (s *Service) RecordCharge(ctx context.Context, customerID int64, date string, purchaseAmount, paidAmount decimal.Decimal) (int64, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return 0, err
	}

	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, apperrors.ErrValidation)
	}
	if purchaseAmount.IsNegative() || paidAmount.IsNegative() {
		return 0, fmt.Errorf("amounts must not be negative: %w", apperrors.ErrValidation)
	}

	id, err := s.transactionRepo.Insert(ctx, &domain.Transaction{
		CustomerID:     customerID,
		Date:           date,
		PurchaseAmount: purchaseAmount,
		PaidAmount:     paidAmount,
	})
	if err != nil {
		zap.L().Error("failed to record charge", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// RecordPayment appends a pure payment row: purchase amount zero, dated
// today. Payments are never backdated.
func (s *Service) RecordPayment(ctx context.Context, customerID int64, amount decimal.Decimal) (int64, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return 0, err
	}
	if amount.IsNegative() {
		return 0, fmt.Errorf("payment must not be negative: %w", apperrors.ErrValidation)
	}

	id, err := s.transactionRepo.Insert(ctx, &domain.Transaction{
		CustomerID:     customerID,
		Date:           time.Now().Format(domain.DateLayout),
		PurchaseAmount: decimal.Zero,
		PaidAmount:     amount,
	})
	if err != nil {
		zap.L().Error("failed to record payment", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (s *Service) RenameCustomer(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("customer name is required: %w", apperrors.ErrValidation)
	}
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}

	if err := s.customerRepo.UpdateName(ctx, id, name); err != nil {
		zap.L().Error("failed to rename customer", zap.Error(err))
		return err
	}
	return nil
}

// DeleteCustomer removes the customer and its transactions, returning the
// removed rows so the caller can stash them in the undo slot.
func (s *Service) DeleteCustomer(ctx context.Context, id int64) (*domain.Customer, []domain.Transaction, error) {
	customer, transactions, err := s.customerRepo.DeleteCascade(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	zap.L().Info("customer deleted",
		zap.Int64("id", customer.ID),
		zap.Int("transactions", len(transactions)))
	return customer, transactions, nil
}
