package ban

import (
	"context"
	"log/slog"
	"sort"

	"github.com/raceleague/steward/internal/dependencies/clock"
	"github.com/raceleague/steward/internal/model"
	"github.com/raceleague/steward/internal/storage"
)

// Config holds the point thresholds at which automatic bans are derived
type Config struct {
	QualiThreshold int
	RaceThreshold  int
}

// DefaultConfig returns the league's standard thresholds
func DefaultConfig() Config {
	return Config{
		QualiThreshold: 10,
		RaceThreshold:  15,
	}
}

// Service is the ban store plus the automatic ban deriver and the
// expiry sweeper built on top of it.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	cfg     Config
	logger  *slog.Logger
}

// New creates a new ban service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.QualiThreshold == 0 && cfg.RaceThreshold == 0 {
		cfg = DefaultConfig()
	}
	return &Service{
		storage: storage,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
	}
}

// Add inserts a ban unconditionally; duplicates of the same kind are allowed
func (s *Service) Add(ctx context.Context, driverID model.DriverID, kind model.BanKind, reason string) (*model.Ban, error) {
	if _, err := model.ParseBanKind(string(kind)); err != nil {
		return nil, err
	}
	if reason == "" {
		reason = model.DefaultBanReason
	}

	id, err := s.storage.NextBanID(ctx)
	if err != nil {
		return nil, err
	}

	ban := &model.Ban{
		ID:       id,
		DriverID: driverID,
		Kind:     kind,
		Reason:   reason,
		IssuedAt: s.clock.Now().UTC().Format(model.BanTimeLayout),
	}

	if err := s.storage.SaveBan(ctx, ban); err != nil {
		return nil, err
	}

	s.logger.Info("ban added",
		slog.String("driver_id", string(driverID)),
		slog.String("kind", string(kind)),
		slog.String("reason", reason),
	)

	return ban, nil
}

// Remove deletes every ban of the given driver and kind, manual or
// automatic, and returns how many were deleted. Zero deletions is a
// benign no-op, not an error.
func (s *Service) Remove(ctx context.Context, driverID model.DriverID, kind model.BanKind) (int, error) {
	if _, err := model.ParseBanKind(string(kind)); err != nil {
		return 0, err
	}

	bans, err := s.storage.GetBansForDriver(ctx, driverID)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, b := range bans {
		if b.Kind != kind {
			continue
		}
		if err := s.storage.DeleteBan(ctx, b.ID); err != nil {
			return removed, err
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("bans removed",
			slog.String("driver_id", string(driverID)),
			slog.String("kind", string(kind)),
			slog.Int("count", removed),
		)
	}

	return removed, nil
}

// Has reports whether the driver holds at least one ban of the kind
func (s *Service) Has(ctx context.Context, driverID model.DriverID, kind model.BanKind) (bool, error) {
	bans, err := s.storage.GetBansForDriver(ctx, driverID)
	if err != nil {
		return false, err
	}

	for _, b := range bans {
		if b.Kind == kind {
			return true, nil
		}
	}
	return false, nil
}

// ListActive returns all stored bans ordered by id.
// Callers wanting only unexpired bans must run Sweep first; the store
// does not self-expire on read.
func (s *Service) ListActive(ctx context.Context) ([]*model.Ban, error) {
	bans, err := s.storage.ListBans(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(bans, func(i, j int) bool {
		return bans[i].ID < bans[j].ID
	})
	return bans, nil
}

// RemoveAllForDriver deletes every ban held by the driver
func (s *Service) RemoveAllForDriver(ctx context.Context, driverID model.DriverID) error {
	return s.storage.DeleteBansForDriver(ctx, driverID)
}
