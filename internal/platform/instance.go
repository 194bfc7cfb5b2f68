package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another demo process owns the saved state.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// StateLock keeps a second process from writing the same state file.
type StateLock struct {
	listener net.Listener
}

// AcquireStateLock binds a localhost port derived from name.
func AcquireStateLock(name string) (*StateLock, error) {
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(name))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("lock %s on %s: %w", name, address, errors.Join(ErrAlreadyRunning, err))
	}
	return &StateLock{listener: listener}, nil
}

// Address returns the bound address.
func (lock *StateLock) Address() string {
	if lock == nil || lock.listener == nil {
		return ""
	}
	return lock.listener.Addr().String()
}

// Release frees the lock. It is safe on a nil lock.
func (lock *StateLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

func lockPort(name string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(name))
	return minLockPort + int(hash.Sum32()%uint32(maxLockPort-minLockPort+1))
}
