package lock

import (
	"context"
	"sync"
	"time"
)

var lockMap sync.Map

// WithKey menjalankan safeCode secara eksklusif untuk key tertentu.
// success=false bila lock tidak didapat dalam waktu wait atau ctx selesai.
func WithKey(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	timeout := time.NewTimer(wait)
	defer timeout.Stop()
	for {
		released := make(chan struct{})
		holder, loaded := lockMap.LoadOrStore(key, released)
		if !loaded {
			defer func() {
				lockMap.Delete(key)
				close(released)
			}()
			return true, safeCode()
		}
		select {
		case <-holder.(chan struct{}):
		case <-timeout.C:
			return false, nil
		case <-ctx.Done():
			return false, nil
		}
	}
}
