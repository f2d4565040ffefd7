package sys

import (
	"testing"

	"github.com/stealthrocket/sysabi/internal/assert"
	"github.com/stealthrocket/sysabi/result"
)

func TestRetryIsBounded(t *testing.T) {
	calls := 0
	_, err := retryEINTR(func() (int, error) {
		calls++
		return 0, EINTR
	})
	assert.Error(t, err, EINTR)
	assert.Equal(t, calls, MaxInterruptRetries+1)
}

func TestRetryStopsOnSuccess(t *testing.T) {
	calls := 0
	n, err := retryEINTR(func() (int, error) {
		if calls++; calls < 3 {
			return 0, EINTR
		}
		return 42, nil
	})
	assert.OK(t, err)
	assert.Equal(t, n, 42)
	assert.Equal(t, calls, 3)
}

func TestRetryDoesNotHideOtherErrors(t *testing.T) {
	calls := 0
	_, _, err := retryEINTR3(func() (int, int, error) {
		calls++
		return 0, 0, result.EAGAIN
	})
	assert.Error(t, err, result.EAGAIN)
	assert.Equal(t, calls, 1)
}
