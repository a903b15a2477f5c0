package steward

import (
	"sync"

	"github.com/raceleague/steward/internal/model"
)

// driverLocks provides one mutex per driver so that the
// read-decide-write sequences inside point mutation and ban
// reconciliation never interleave for the same driver. Operations on
// different drivers proceed independently.
//
// Locks are created on first use and never released; the set of
// drivers a league tracks is small and bounded.
type driverLocks struct {
	mu    sync.Mutex
	locks map[model.DriverID]*sync.Mutex
}

func newDriverLocks() *driverLocks {
	return &driverLocks{
		locks: make(map[model.DriverID]*sync.Mutex),
	}
}

// get returns the mutex for a driver, creating it if needed
func (d *driverLocks) get(id model.DriverID) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	lock, ok := d.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		d.locks[id] = lock
	}
	return lock
}
