package bus

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got []any
	_, err := b.Subscribe("stage.changed", func(e Event) error {
		got = append(got, e.Data())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("stage.changed", "world", 1)))
	require.NoError(t, b.Publish(NewEvent("other", "world", 2)))
	assert.Equal(t, []any{1}, got)
}

func TestDeliveryOrderFollowsSubscription(t *testing.T) {
	b := New()
	var order []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		_, err := b.Subscribe("ev", func(Event) error {
			order = append(order, name)
			return nil
		})
		require.NoError(t, err)
	}
	require.NoError(t, b.Publish(NewEvent("ev", "src", nil)))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	_, _ = b.Subscribe("ev", func(Event) error { return errA })
	_, _ = b.Subscribe("ev", func(Event) error { return errB })

	err := b.Publish(NewEvent("ev", "src", nil))
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	count := 0
	sub, err := b.Subscribe("ev", func(Event) error { count++; return nil })
	require.NoError(t, err)
	assert.Equal(t, 1, b.Subscribers("ev"))

	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	assert.False(t, sub.IsActive())
	assert.Equal(t, 0, b.Subscribers("ev"))

	require.NoError(t, b.Publish(NewEvent("ev", "src", nil)))
	assert.Equal(t, 0, count)
	assert.NoError(t, b.Unsubscribe(nil))
}

func TestSubscribeNilHandler(t *testing.T) {
	_, err := New().Subscribe("ev", nil)
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestCancelDuringPublish(t *testing.T) {
	b := New()
	var delivered atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		sub, err := b.Subscribe("ev", func(Event) error {
			delivered.Add(1)
			return nil
		})
		require.NoError(t, err)

		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = b.Publish(NewEvent("ev", "src", nil))
		}()
		go func() {
			defer wg.Done()
			_ = sub.Cancel()
			_ = sub.IsActive()
		}()
	}
	wg.Wait()

	assert.Zero(t, b.Subscribers("ev"))
	assert.LessOrEqual(t, delivered.Load(), int64(50*50))
}
