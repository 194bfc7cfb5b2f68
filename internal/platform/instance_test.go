package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockPortInRange(t *testing.T) {
	for _, name := range []string{"", "cpbutton", "another-name"} {
		port := lockPort(name)
		assert.GreaterOrEqual(t, port, minLockPort)
		assert.LessOrEqual(t, port, maxLockPort)
	}
	assert.Equal(t, lockPort("cpbutton"), lockPort("cpbutton"))
}

func TestStateLockExclusive(t *testing.T) {
	name := "cpbutton-test-" + t.Name()
	lock, err := AcquireStateLock(name)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	defer func() { _ = lock.Release() }()
	assert.NotEmpty(t, lock.Address())

	_, err = AcquireStateLock(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, lock.Release())
	require.NoError(t, lock.Release())

	again, err := AcquireStateLock(name)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestNilLockRelease(t *testing.T) {
	var lock *StateLock
	assert.NoError(t, lock.Release())
	assert.Empty(t, lock.Address())
}
