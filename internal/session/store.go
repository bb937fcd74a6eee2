package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vcarvalho/fiado/internal/apperrors"
	"github.com/vcarvalho/fiado/internal/domain"
)

const keyPrefix = "session:"

// Session is the server-side state behind one login cookie. The undo slot
// lives here so that concurrent sessions never share it.
type Session struct {
	ID        string             `json:"id"`
	AccountID int64              `json:"account_id"`
	Undo      *domain.UndoRecord `json:"undo,omitempty"`
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s *Store) Create(ctx context.Context, accountID int64) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		AccountID: accountID,
	}
	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		zap.L().Error("can't load session", zap.Error(err))
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("can't decode session: %w", err)
	}
	return &sess, nil
}

// Save writes the session back and refreshes its TTL.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("can't encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, keyPrefix+sess.ID, data, s.ttl).Err(); err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		zap.L().Error("can't delete session", zap.Error(err))
		return err
	}
	return nil
}
