package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/vcarvalho/fiado/internal/domain"
	"github.com/vcarvalho/fiado/internal/session"
	"github.com/vcarvalho/fiado/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type AccountRepo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Count(ctx context.Context) (int64, error)
}

type Sessions interface {
	Create(ctx context.Context, accountID int64) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}

// ErrInvalidCredentials deliberately covers both unknown login and wrong
// password.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	accountRepo  AccountRepo
	sessions     Sessions
	hashService  auth.HashServiceInterface
	tokenService auth.TokenServiceInterface
	sessionTTL   time.Duration
}

func New(accountRepo AccountRepo, sessions Sessions, hashService auth.HashServiceInterface, tokenService auth.TokenServiceInterface, sessionTTL time.Duration) *Service {
	return &Service{
		accountRepo:  accountRepo,
		sessions:     sessions,
		hashService:  hashService,
		tokenService: tokenService,
		sessionTTL:   sessionTTL,
	}
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	if account == nil || !s.hashService.ComparePassword(account.PasswordHash, password) {
		zap.L().Info("failed login attempt", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("operator authenticated", zap.String("login", login))
	return account, nil
}

// CreateSession opens a server-side session for the account and returns
// the signed token that goes into the cookie.
func (s *Service) CreateSession(ctx context.Context, accountID int64) (string, error) {
	sess, err := s.sessions.Create(ctx, accountID)
	if err != nil {
		zap.L().Error("can't create session", zap.Error(err))
		return "", err
	}

	token, err := s.tokenService.GenerateSessionToken(sess.ID, time.Now().Add(s.sessionTTL))
	if err != nil {
		zap.L().Error("can't sign session token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		zap.L().Error("can't delete session", zap.Error(err))
		return err
	}
	return nil
}

// SeedDefault creates the default operator account on first start, when no
// account exists yet.
func (s *Service) SeedDefault(ctx context.Context, login, password string) error {
	count, err := s.accountRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.accountRepo.Create(ctx, &domain.Account{Login: login, PasswordHash: hash}); err != nil {
		return err
	}
	zap.L().Info("default operator account created", zap.String("login", login))
	return nil
}
