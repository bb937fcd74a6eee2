package undoservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vcarvalho/fiado/internal/domain"
	"github.com/vcarvalho/fiado/internal/session"
)

//go:generate mockgen -source=undoservice.go -destination=undoservice_mock.go -package=undoservice

type CustomerRepo interface {
	ReinsertWithID(ctx context.Context, customer *domain.Customer) error
}

type TransactionRepo interface {
	Delete(ctx context.Context, id int64) error
	ReinsertWithID(ctx context.Context, t *domain.Transaction) error
}

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Sessions interface {
	Get(ctx context.Context, id string) (*session.Session, error)
	Save(ctx context.Context, sess *session.Session) error
}

// Result reports the outcome of an undo attempt.
type Result string

const (
	// Reversed means the slot held a record and it was applied.
	Reversed Result = "reversed"
	// NothingToUndo means the slot was empty. It is a reportable no-op,
	// not an error.
	NothingToUndo Result = "nothing_to_undo"
)

// Service is the undo controller: a two-state machine (empty slot /
// holding one record) scoped to a single session.
type Service struct {
	customerRepo    CustomerRepo
	transactionRepo TransactionRepo
	txManager       TXManager
	sessions        Sessions
}

func New(customerRepo CustomerRepo, transactionRepo TransactionRepo, txManager TXManager, sessions Sessions) *Service {
	return &Service{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		sessions:        sessions,
	}
}

// Record stores the record in the session's undo slot, discarding whatever
// the slot held before.
func (s *Service) Record(ctx context.Context, sessionID string, record domain.UndoRecord) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		zap.L().Error("can't load session for undo record", zap.Error(err))
		return err
	}
	sess.Undo = &record
	if err := s.sessions.Save(ctx, sess); err != nil {
		return err
	}
	return nil
}

// Undo consumes the session's undo slot and reverses the action it
// captured. The slot is cleared even when the reversal fails, so a retry
// never applies it twice.
func (s *Service) Undo(ctx context.Context, sessionID string) (Result, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		zap.L().Error("can't load session for undo", zap.Error(err))
		return "", err
	}
	if sess.Undo == nil {
		return NothingToUndo, nil
	}

	record := *sess.Undo
	sess.Undo = nil
	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", err
	}

	if err := s.reverse(ctx, record); err != nil {
		zap.L().Error("failed to reverse last action", zap.Error(err))
		return "", err
	}
	return Reversed, nil
}

func (s *Service) reverse(ctx context.Context, record domain.UndoRecord) error {
	switch record.Kind {
	case domain.UndoChargeOrPayment:
		return s.transactionRepo.Delete(ctx, record.TransactionID)
	case domain.UndoCustomerDeletion:
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			if err := s.customerRepo.ReinsertWithID(ctx, record.Customer); err != nil {
				return err
			}
			for i := range record.Transactions {
				if err := s.transactionRepo.ReinsertWithID(ctx, &record.Transactions[i]); err != nil {
					return err
				}
			}
			return nil
		})
	default:
		return fmt.Errorf("unknown undo record kind %q", record.Kind)
	}
}
