package steward

import (
	"context"
	"log/slog"
	"time"

	"github.com/raceleague/steward/internal/model"
	"github.com/raceleague/steward/internal/services/ban"
	"github.com/raceleague/steward/internal/services/penalty"
	"github.com/raceleague/steward/internal/services/roster"
)

// Config holds controller settings
type Config struct {
	// BanRetention is how long bans stay active before expiring
	BanRetention time.Duration
}

// DefaultConfig returns the league's standard retention window
func DefaultConfig() Config {
	return Config{
		BanRetention: ban.DefaultRetention,
	}
}

// Controller is the operation surface of the steward service. It
// orchestrates the roster, the penalty ledger, and the ban store:
// every point mutation re-derives automatic bans, and every ban
// listing sweeps expired bans first.
type Controller struct {
	roster    *roster.Service
	penalties *penalty.Service
	bans      *ban.Service
	cfg       Config
	logger    *slog.Logger
	locks     *driverLocks
}

// NewController creates a new steward controller
func NewController(
	roster *roster.Service,
	penalties *penalty.Service,
	bans *ban.Service,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	if cfg.BanRetention == 0 {
		cfg = DefaultConfig()
	}
	return &Controller{
		roster:    roster,
		penalties: penalties,
		bans:      bans,
		cfg:       cfg,
		logger:    logger,
		locks:     newDriverLocks(),
	}
}

// RegisterDriver adds a driver to the roster.
// Registering a known driver is a no-op that keeps the existing name.
func (c *Controller) RegisterDriver(ctx context.Context, id model.DriverID, displayName string) (*model.Driver, error) {
	lock := c.locks.get(id)
	lock.Lock()
	defer lock.Unlock()

	return c.roster.Ensure(ctx, id, displayName)
}

// GetDriver retrieves a driver by id
func (c *Controller) GetDriver(ctx context.Context, id model.DriverID) (*model.Driver, error) {
	return c.roster.Get(ctx, id)
}

// ListDrivers returns all registered drivers
func (c *Controller) ListDrivers(ctx context.Context) ([]*model.Driver, error) {
	return c.roster.List(ctx)
}

// RemoveDriver deletes a driver, cascading to its penalties and bans
func (c *Controller) RemoveDriver(ctx context.Context, id model.DriverID) error {
	lock := c.locks.get(id)
	lock.Lock()
	defer lock.Unlock()

	return c.roster.Remove(ctx, id)
}

// AwardPoints appends a penalty entry and returns the driver's new
// total. The driver is created on first contact. Automatic bans are
// reconciled before returning; if reconciliation fails the award
// stands and the invariant is restored by the next successful
// mutation.
func (c *Controller) AwardPoints(ctx context.Context, id model.DriverID, points int, reason string) (int, error) {
	lock := c.locks.get(id)
	lock.Lock()
	defer lock.Unlock()

	if _, err := c.roster.Ensure(ctx, id, ""); err != nil {
		return 0, err
	}

	if _, err := c.penalties.Award(ctx, id, points, reason); err != nil {
		return 0, err
	}

	total, err := c.penalties.TotalPoints(ctx, id)
	if err != nil {
		return 0, err
	}

	if err := c.bans.Reconcile(ctx, id, total); err != nil {
		return total, err
	}

	return total, nil
}

// RemovePoints reduces the driver's total by up to amount and returns
// the amount actually removed along with the new total. A driver with
// an empty ledger yields a zero-removed no-op.
func (c *Controller) RemovePoints(ctx context.Context, id model.DriverID, amount int, reason string) (removed, total int, err error) {
	lock := c.locks.get(id)
	lock.Lock()
	defer lock.Unlock()

	removed, err = c.penalties.Remove(ctx, id, amount, reason)
	if err != nil {
		return 0, 0, err
	}

	total, err = c.penalties.TotalPoints(ctx, id)
	if err != nil {
		return removed, 0, err
	}

	if err := c.bans.Reconcile(ctx, id, total); err != nil {
		return removed, total, err
	}

	return removed, total, nil
}

// TotalPoints returns the driver's current point total
func (c *Controller) TotalPoints(ctx context.Context, id model.DriverID) (int, error) {
	return c.penalties.TotalPoints(ctx, id)
}

// PenaltyHistory returns the driver's entries, most recent first
func (c *Controller) PenaltyHistory(ctx context.Context, id model.DriverID) ([]*model.PenaltyEntry, error) {
	return c.penalties.History(ctx, id)
}

// AddBan records a manual ban. The driver is created on first contact.
func (c *Controller) AddBan(ctx context.Context, id model.DriverID, kind model.BanKind, reason string) (*model.Ban, error) {
	lock := c.locks.get(id)
	lock.Lock()
	defer lock.Unlock()

	if _, err := c.roster.Ensure(ctx, id, ""); err != nil {
		return nil, err
	}

	return c.bans.Add(ctx, id, kind, reason)
}

// RemoveBan deletes all bans of the driver and kind and returns the
// number removed; zero when none existed.
func (c *Controller) RemoveBan(ctx context.Context, id model.DriverID, kind model.BanKind) (int, error) {
	lock := c.locks.get(id)
	lock.Lock()
	defer lock.Unlock()

	return c.bans.Remove(ctx, id, kind)
}

// ListActiveBans sweeps expired bans and returns those remaining
func (c *Controller) ListActiveBans(ctx context.Context) ([]*model.Ban, error) {
	if _, err := c.bans.Sweep(ctx, c.cfg.BanRetention); err != nil {
		return nil, err
	}
	return c.bans.ListActive(ctx)
}

// SweepExpiredBans purges bans past the retention window and returns
// the number removed
func (c *Controller) SweepExpiredBans(ctx context.Context) (int, error) {
	return c.bans.Sweep(ctx, c.cfg.BanRetention)
}
