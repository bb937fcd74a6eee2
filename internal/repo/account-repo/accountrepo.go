package accountrepo

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/vcarvalho/fiado/internal/domain"
	"github.com/vcarvalho/fiado/internal/sqlite"
)

type Repository struct {
	db sqlite.Database
}

func New(db sqlite.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRowContext(ctx,
		"SELECT id, login, password_hash FROM accounts WHERE login = ?", login).
		Scan(&account.ID, &account.Login, &account.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO accounts (login, password_hash) VALUES (?, ?)",
		account.Login, account.PasswordHash)
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	account.ID = id
	return account, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM accounts").Scan(&count); err != nil {
		zap.L().Error("can't count accounts", zap.Error(err))
		return 0, err
	}
	return count, nil
}
