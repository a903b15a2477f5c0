package ban

import (
	"context"
	"log/slog"
	"time"

	"github.com/raceleague/steward/internal/model"
)

// DefaultRetention is how long a ban stays active before the sweeper
// removes it.
const DefaultRetention = 8 * 24 * time.Hour

// Sweep deletes every ban older than the retention window and returns
// how many were deleted.
//
// A ban whose timestamp cannot be parsed has an undeterminable age and
// is left in place; the bad record is logged and the sweep carries on.
// Sweep is idempotent and safe to run both on a schedule and before
// every listing.
func (s *Service) Sweep(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}

	bans, err := s.storage.ListBans(ctx)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now().UTC()
	removed := 0

	for _, b := range bans {
		issuedAt, err := model.ParseBanTime(b.IssuedAt)
		if err != nil {
			s.logger.Warn("skipping ban with unparseable timestamp",
				slog.Int64("ban_id", int64(b.ID)),
				slog.String("driver_id", string(b.DriverID)),
				slog.String("timestamp", b.IssuedAt),
			)
			continue
		}

		if now.Sub(issuedAt) <= retention {
			continue
		}

		if err := s.storage.DeleteBan(ctx, b.ID); err != nil {
			return removed, err
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info("expired bans swept", slog.Int("count", removed))
	}

	return removed, nil
}
