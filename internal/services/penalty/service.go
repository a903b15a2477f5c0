package penalty

import (
	"context"
	"log/slog"
	"sort"

	"github.com/raceleague/steward/internal/dependencies/clock"
	"github.com/raceleague/steward/internal/model"
	"github.com/raceleague/steward/internal/storage"
)

// Service is the penalty ledger: append-only point records per driver,
// with a deterministic partial-removal algorithm.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new penalty ledger service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Award appends a new penalty entry for the driver.
// Points must be a positive integer.
func (s *Service) Award(ctx context.Context, driverID model.DriverID, points int, reason string) (*model.PenaltyEntry, error) {
	if points <= 0 {
		return nil, model.ErrInvalidPoints
	}
	if reason == "" {
		reason = model.DefaultPenaltyReason
	}

	id, err := s.storage.NextPenaltyID(ctx)
	if err != nil {
		return nil, err
	}

	entry := &model.PenaltyEntry{
		ID:       id,
		DriverID: driverID,
		Points:   points,
		Reason:   reason,
		IssuedAt: s.clock.Now(),
	}

	if err := s.storage.SavePenaltyEntry(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("penalty awarded",
		slog.String("driver_id", string(driverID)),
		slog.Int("points", points),
		slog.String("reason", reason),
	)

	return entry, nil
}

// TotalPoints returns the sum of all entries for the driver, 0 if none exist
func (s *Service) TotalPoints(ctx context.Context, driverID model.DriverID) (int, error) {
	entries, err := s.storage.GetPenaltyEntries(ctx, driverID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, entry := range entries {
		total += entry.Points
	}
	return total, nil
}

// History returns the driver's entries ordered most recent first
func (s *Service) History(ctx context.Context, driverID model.DriverID) ([]*model.PenaltyEntry, error) {
	entries, err := s.storage.GetPenaltyEntries(ctx, driverID)
	if err != nil {
		return nil, err
	}

	sortNewestFirst(entries)
	return entries, nil
}

// Remove reduces the driver's total by up to amount points and returns
// how many were actually removed (less than amount when the total is
// smaller; zero for an empty ledger).
//
// Entries are consumed newest first: an entry worth no more than the
// outstanding amount is deleted outright, otherwise it is reduced in
// place and the walk stops. Storage never holds a zero-point entry.
func (s *Service) Remove(ctx context.Context, driverID model.DriverID, amount int, reason string) (int, error) {
	if amount <= 0 {
		return 0, model.ErrInvalidPoints
	}
	if reason == "" {
		reason = model.DefaultAdjustmentReason
	}

	entries, err := s.storage.GetPenaltyEntries(ctx, driverID)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	sortNewestFirst(entries)

	remaining := amount
	removed := 0

	for _, entry := range entries {
		if remaining == 0 {
			break
		}
		if entry.Points <= remaining {
			if err := s.storage.DeletePenaltyEntry(ctx, driverID, entry.ID); err != nil {
				return removed, err
			}
			removed += entry.Points
			remaining -= entry.Points
		} else {
			entry.Points -= remaining
			if err := s.storage.SavePenaltyEntry(ctx, entry); err != nil {
				return removed, err
			}
			removed += remaining
			remaining = 0
		}
	}

	s.logger.Info("penalty points removed",
		slog.String("driver_id", string(driverID)),
		slog.Int("requested", amount),
		slog.Int("removed", removed),
		slog.String("reason", reason),
	)

	return removed, nil
}

// sortNewestFirst orders entries by timestamp descending, breaking
// timestamp ties by id descending so removal is reproducible.
func sortNewestFirst(entries []*model.PenaltyEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IssuedAt.Equal(entries[j].IssuedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].IssuedAt.After(entries[j].IssuedAt)
	})
}
