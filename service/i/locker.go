package i

// Locker serializes work on a shared key across service replicas.
type Locker interface {
	// Lock acquires the named lock and returns the function releasing
	// it. Callers must release the lock once done.
	Lock(key string) (release func() error, err error)
}
