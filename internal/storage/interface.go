package storage

import (
	"context"

	"github.com/raceleague/steward/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Driver operations
	SaveDriver(ctx context.Context, driver *model.Driver) error
	GetDriver(ctx context.Context, id model.DriverID) (*model.Driver, error)
	ListDrivers(ctx context.Context) ([]*model.Driver, error)
	DeleteDriver(ctx context.Context, id model.DriverID) error

	// Penalty operations
	// NextPenaltyID hands out monotonically increasing entry ids.
	NextPenaltyID(ctx context.Context) (model.PenaltyID, error)
	SavePenaltyEntry(ctx context.Context, entry *model.PenaltyEntry) error
	GetPenaltyEntries(ctx context.Context, driverID model.DriverID) ([]*model.PenaltyEntry, error)
	DeletePenaltyEntry(ctx context.Context, driverID model.DriverID, id model.PenaltyID) error
	DeletePenaltyEntriesForDriver(ctx context.Context, driverID model.DriverID) error

	// Ban operations
	NextBanID(ctx context.Context) (model.BanID, error)
	SaveBan(ctx context.Context, ban *model.Ban) error
	ListBans(ctx context.Context) ([]*model.Ban, error)
	GetBansForDriver(ctx context.Context, driverID model.DriverID) ([]*model.Ban, error)
	DeleteBan(ctx context.Context, id model.BanID) error
	DeleteBansForDriver(ctx context.Context, driverID model.DriverID) error

	// Steward operations
	SaveSteward(ctx context.Context, steward *model.Steward) error
	GetSteward(ctx context.Context, username string) (*model.Steward, error)
}
