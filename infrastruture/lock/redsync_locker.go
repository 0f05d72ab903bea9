package lock

import (
	"errors"

	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedsyncLocker implements i.Locker with Redis-backed distributed mutexes,
// so replicas sharing one Redis agree on who holds a key.
type RedsyncLocker struct {
	locker *redsync.Redsync
}

// NewRedsyncLocker initializes a RedsyncLocker over the provided Redis client.
func NewRedsyncLocker(client *redis.Client) (i.Locker, error) {
	if client == nil {
		return nil, errors.New("locker: nil redis client")
	}
	pool := goredis.NewPool(client)
	return &RedsyncLocker{
		locker: redsync.New(pool),
	}, nil
}

// Lock acquires the named mutex and returns its release function.
func (l *RedsyncLocker) Lock(key string) (func() error, error) {
	mutex := l.locker.NewMutex(key)
	if err := mutex.Lock(); err != nil {
		return nil, err
	}
	return func() error {
		_, err := mutex.Unlock()
		return err
	}, nil
}
