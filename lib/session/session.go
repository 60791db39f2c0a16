package session

import (
	"context"
	"time"

	"broilink-backend/lib/utils/kvstore"

	"github.com/pkg/errors"
)

// Provider - sesi login di sisi server. Token JWT hanya berlaku selama sesinya ada,
// sehingga logout langsung mencabut token.
type Provider interface {
	Create(ctx context.Context, sessionID string, data Data, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*Data, error)
	Delete(ctx context.Context, sessionID string) error
}

type Data struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

var Instance Provider

func NewHandler(store kvstore.Provider) {
	Instance = NewInstance(store)
}

func NewInstance(store kvstore.Provider) Provider {
	return impl{
		store: store,
	}
}

type impl struct {
	store kvstore.Provider
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (i impl) Create(ctx context.Context, sessionID string, data Data, ttl time.Duration) error {
	if sessionID == "" {
		return errors.New("id sesi kosong")
	}
	return kvstore.SetJSON(ctx, i.store, sessionKey(sessionID), data, ttl)
}

func (i impl) Get(ctx context.Context, sessionID string) (*Data, error) {
	if sessionID == "" {
		return nil, nil
	}
	data := Data{}
	found, err := kvstore.GetJSON(ctx, i.store, sessionKey(sessionID), &data)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &data, nil
}

func (i impl) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return i.store.Delete(ctx, sessionKey(sessionID))
}
