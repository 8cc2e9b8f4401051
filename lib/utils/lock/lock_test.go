package lock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInflightLock(t *testing.T) {
	t.Run(`second acquire fails until release`, func(t *testing.T) {
		require.Equal(t, true, TryAcquire("assign:1:2"))
		require.Equal(t, false, TryAcquire("assign:1:2"))

		Release("assign:1:2")
		require.Equal(t, true, TryAcquire("assign:1:2"))
		Release("assign:1:2")
	})

	t.Run(`keys are independent`, func(t *testing.T) {
		require.Equal(t, true, TryAcquire("assign:1:2"))
		require.Equal(t, true, TryAcquire("assign:1:3"))
		Release("assign:1:2")
		Release("assign:1:3")
	})
}
