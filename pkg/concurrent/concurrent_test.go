package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesOrder(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out, err := Map(context.Background(), in, 3, StopAllOnError, func(_ context.Context, v int) (int, error) {
		return v * v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9, 16, 25, 36, 49, 64}, out)
}

func TestMapStopAllReturnsError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Map(context.Background(), []int{1, 2, 3}, 1, StopAllOnError, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestMapCollectErrorsFinishesAll(t *testing.T) {
	errOdd := errors.New("odd")
	var calls atomic.Int32
	out, err := Map(context.Background(), []int{1, 2, 3, 4}, 0, CollectErrors, func(_ context.Context, v int) (int, error) {
		calls.Add(1)
		if v%2 == 1 {
			return 0, errOdd
		}
		return v, nil
	})
	assert.ErrorIs(t, err, errOdd)
	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, []int{0, 2, 0, 4}, out)
}
