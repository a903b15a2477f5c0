package roster

import (
	"context"
	"errors"
	"log/slog"

	"github.com/raceleague/steward/internal/dependencies/clock"
	"github.com/raceleague/steward/internal/model"
	"github.com/raceleague/steward/internal/storage"
)

// Service manages the registry of known drivers
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new roster service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Ensure registers a driver if it is not already known.
// An existing driver's display name is never overwritten.
func (s *Service) Ensure(ctx context.Context, id model.DriverID, displayName string) (*model.Driver, error) {
	driver, err := s.storage.GetDriver(ctx, id)
	if err == nil {
		return driver, nil
	}
	if !errors.Is(err, model.ErrDriverNotFound) {
		return nil, err
	}

	if displayName == "" {
		displayName = string(id)
	}

	driver = &model.Driver{
		ID:          id,
		DisplayName: displayName,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SaveDriver(ctx, driver); err != nil {
		return nil, err
	}

	s.logger.Info("driver registered",
		slog.String("driver_id", string(id)),
		slog.String("display_name", displayName),
	)

	return driver, nil
}

// Get retrieves a driver by id
func (s *Service) Get(ctx context.Context, id model.DriverID) (*model.Driver, error) {
	return s.storage.GetDriver(ctx, id)
}

// List returns all registered drivers
func (s *Service) List(ctx context.Context) ([]*model.Driver, error) {
	return s.storage.ListDrivers(ctx)
}

// Remove deletes a driver along with all of its penalty entries and bans.
// Removing an unknown driver is a no-op.
func (s *Service) Remove(ctx context.Context, id model.DriverID) error {
	if err := s.storage.DeletePenaltyEntriesForDriver(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteBansForDriver(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteDriver(ctx, id); err != nil {
		return err
	}

	s.logger.Info("driver removed", slog.String("driver_id", string(id)))
	return nil
}
