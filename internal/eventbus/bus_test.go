package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_PublishNextInOrder(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	for i := uint64(1); i <= 3; i++ {
		require.NoError(t, eb.Publish(context.Background(), RequestCompleted{ID: i}))
	}
	for i := uint64(1); i <= 3; i++ {
		ev, ok := eb.Next()
		require.True(t, ok)
		assert.Equal(t, i, ev.(RequestCompleted).ID)
	}
}

func TestEventBus_PublishWaitsInsteadOfDropping(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	const total = 250 // more than the buffer
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			assert.NoError(t, eb.Publish(context.Background(), RequestCompleted{ID: uint64(i)}))
		}
	}()

	for i := 0; i < total; i++ {
		ev, ok := eb.Next()
		require.True(t, ok)
		assert.Equal(t, uint64(i), ev.(RequestCompleted).ID)
	}
	wg.Wait()
}

func TestEventBus_Close(t *testing.T) {
	eb := NewEventBus()

	var reported []EventBusError
	eb.SetErrorCallback(func(e EventBusError) { reported = append(reported, e) })

	eb.Close()
	eb.Close()

	_, ok := eb.Next()
	assert.False(t, ok)

	err := eb.Publish(context.Background(), RequestCompleted{ID: 1})
	assert.ErrorIs(t, err, ErrClosed)
	require.Len(t, reported, 1)
	assert.Equal(t, "Publish", reported[0].Operation)
}

func TestEventBus_PublishHonoursContext(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	for i := 0; i < cap(eb.coreToUI); i++ {
		require.NoError(t, eb.Publish(context.Background(), RequestCompleted{}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, eb.Publish(ctx, RequestCompleted{}), context.DeadlineExceeded)
}
