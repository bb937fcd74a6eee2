package service

import (
	"time"

	"github.com/vcarvalho/fiado/internal/repo"
	"github.com/vcarvalho/fiado/internal/service/authservice"
	"github.com/vcarvalho/fiado/internal/service/ledgerservice"
	"github.com/vcarvalho/fiado/internal/service/statementservice"
	"github.com/vcarvalho/fiado/internal/service/undoservice"
	"github.com/vcarvalho/fiado/internal/session"
	"github.com/vcarvalho/fiado/internal/sqlite"
	"github.com/vcarvalho/fiado/pkg/auth"
)

type Services struct {
	AuthService      *authservice.Service
	LedgerService    *ledgerservice.Service
	UndoService      *undoservice.Service
	StatementService *statementservice.Service
}

func New(repos *repo.Repositories, sessions *session.Store, txManager sqlite.TXManager, sessionTTL time.Duration) *Services {
	return &Services{
		AuthService:      authservice.New(repos.Accounts, sessions, &auth.HashService{}, &auth.TokenService{}, sessionTTL),
		LedgerService:    ledgerservice.New(repos.Customers, repos.Transactions),
		UndoService:      undoservice.New(repos.Customers, repos.Transactions, txManager, sessions),
		StatementService: statementservice.New(repos.Customers, repos.Transactions),
	}
}
