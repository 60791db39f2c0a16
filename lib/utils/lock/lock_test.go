package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithKey(t *testing.T) {
	t.Run("serializes same key", func(t *testing.T) {
		counter := 0
		wg := sync.WaitGroup{}
		for n := 0; n < 20; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := WithKey(context.Background(), "counter", time.Second*5, func() error {
					value := counter
					time.Sleep(time.Millisecond)
					counter = value + 1
					return nil
				})
				require.True(t, ok)
				require.NoError(t, err)
			}()
		}
		wg.Wait()
		require.Equal(t, 20, counter)
	})

	t.Run("timeout while held", func(t *testing.T) {
		hold := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithKey(context.Background(), "busy", time.Second, func() error {
				close(started)
				<-hold
				return nil
			})
		}()
		<-started
		ok, err := WithKey(context.Background(), "busy", 20*time.Millisecond, func() error {
			return nil
		})
		require.False(t, ok)
		require.NoError(t, err)
		close(hold)
	})
}
