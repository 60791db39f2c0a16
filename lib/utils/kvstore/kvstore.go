package kvstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Provider - penyimpanan key/value dengan TTL untuk sesi dan OTP.
// Redis dipakai bila dikonfigurasi, selain itu cache in-memory.
type Provider interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Delete(ctx context.Context, key string) error
	// Incr menaikkan counter; TTL dipasang hanya saat key baru dibuat
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

var Instance Provider

func SetJSON(ctx context.Context, store Provider, key string, value interface{}, ttl time.Duration) error {
	body, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "gagal serialisasi nilai")
	}
	return store.Set(ctx, key, body, ttl)
}

func GetJSON(ctx context.Context, store Provider, key string, out interface{}) (found bool, err error) {
	body, found, err := store.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err = json.Unmarshal(body, out); err != nil {
		return false, errors.Wrap(err, "gagal membaca nilai")
	}
	return true, nil
}
