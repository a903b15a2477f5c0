package memory

import (
	"context"
	"sync"

	"github.com/raceleague/steward/internal/model"
	"github.com/raceleague/steward/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	drivers   map[model.DriverID]*model.Driver
	penalties map[model.PenaltyID]*model.PenaltyEntry
	bans      map[model.BanID]*model.Ban
	stewards  map[string]*model.Steward

	nextPenaltyID model.PenaltyID
	nextBanID     model.BanID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		drivers:   make(map[model.DriverID]*model.Driver),
		penalties: make(map[model.PenaltyID]*model.PenaltyEntry),
		bans:      make(map[model.BanID]*model.Ban),
		stewards:  make(map[string]*model.Steward),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Driver operations

func (s *Storage) SaveDriver(ctx context.Context, driver *model.Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers[driver.ID] = driver
	return nil
}

func (s *Storage) GetDriver(ctx context.Context, id model.DriverID) (*model.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	driver, ok := s.drivers[id]
	if !ok {
		return nil, model.ErrDriverNotFound
	}
	return driver, nil
}

func (s *Storage) ListDrivers(ctx context.Context) ([]*model.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	drivers := make([]*model.Driver, 0, len(s.drivers))
	for _, driver := range s.drivers {
		drivers = append(drivers, driver)
	}
	return drivers, nil
}

func (s *Storage) DeleteDriver(ctx context.Context, id model.DriverID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drivers, id)
	return nil
}

// Penalty operations

func (s *Storage) NextPenaltyID(ctx context.Context) (model.PenaltyID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPenaltyID++
	return s.nextPenaltyID, nil
}

func (s *Storage) SavePenaltyEntry(ctx context.Context, entry *model.PenaltyEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.penalties[entry.ID] = entry
	return nil
}

func (s *Storage) GetPenaltyEntries(ctx context.Context, driverID model.DriverID) ([]*model.PenaltyEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []*model.PenaltyEntry
	for _, entry := range s.penalties {
		if entry.DriverID == driverID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (s *Storage) DeletePenaltyEntry(ctx context.Context, driverID model.DriverID, id model.PenaltyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.penalties[id]
	if !ok || entry.DriverID != driverID {
		return nil
	}
	delete(s.penalties, id)
	return nil
}

func (s *Storage) DeletePenaltyEntriesForDriver(ctx context.Context, driverID model.DriverID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.penalties {
		if entry.DriverID == driverID {
			delete(s.penalties, id)
		}
	}
	return nil
}

// Ban operations

func (s *Storage) NextBanID(ctx context.Context) (model.BanID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextBanID++
	return s.nextBanID, nil
}

func (s *Storage) SaveBan(ctx context.Context, ban *model.Ban) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bans[ban.ID] = ban
	return nil
}

func (s *Storage) ListBans(ctx context.Context) ([]*model.Ban, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bans := make([]*model.Ban, 0, len(s.bans))
	for _, ban := range s.bans {
		bans = append(bans, ban)
	}
	return bans, nil
}

func (s *Storage) GetBansForDriver(ctx context.Context, driverID model.DriverID) ([]*model.Ban, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bans []*model.Ban
	for _, ban := range s.bans {
		if ban.DriverID == driverID {
			bans = append(bans, ban)
		}
	}
	return bans, nil
}

func (s *Storage) DeleteBan(ctx context.Context, id model.BanID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bans, id)
	return nil
}

func (s *Storage) DeleteBansForDriver(ctx context.Context, driverID model.DriverID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ban := range s.bans {
		if ban.DriverID == driverID {
			delete(s.bans, id)
		}
	}
	return nil
}

// Steward operations

func (s *Storage) SaveSteward(ctx context.Context, steward *model.Steward) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stewards[steward.Username] = steward
	return nil
}

func (s *Storage) GetSteward(ctx context.Context, username string) (*model.Steward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	steward, ok := s.stewards[username]
	if !ok {
		return nil, model.ErrStewardNotFound
	}
	return steward, nil
}
