package ban

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/raceleague/steward/internal/model"
)

// Reasons recorded on automatically derived bans
const (
	autoQualiReason = "Automatic quali ban for 10+ points"
	autoRaceReason  = "Automatic race ban for 15+ points"
)

// Reconcile brings the driver's automatic bans in line with the given
// point total: a quali ban exists iff the total meets the quali
// threshold, a race ban iff it meets the race threshold.
//
// Existence is tested by driver+kind only. A manual ban of a kind
// therefore satisfies the invariant and suppresses derivation, and
// falling back under a threshold removes every ban of that kind,
// manual ones included. This mirrors how stewards have always used the
// system; provenance tracking is deliberately absent.
//
// Reconcile is idempotent: a second run with the same total changes
// nothing.
func (s *Service) Reconcile(ctx context.Context, driverID model.DriverID, totalPoints int) error {
	rules := []struct {
		kind      model.BanKind
		threshold int
		reason    string
	}{
		{model.BanKindQuali, s.cfg.QualiThreshold, autoQualiReason},
		{model.BanKindRace, s.cfg.RaceThreshold, autoRaceReason},
	}

	for _, rule := range rules {
		has, err := s.Has(ctx, driverID, rule.kind)
		if err != nil {
			return fmt.Errorf("reconcile %s ban: %w", rule.kind, err)
		}

		switch {
		case totalPoints >= rule.threshold && !has:
			if _, err := s.Add(ctx, driverID, rule.kind, rule.reason); err != nil {
				return fmt.Errorf("reconcile %s ban: %w", rule.kind, err)
			}
			s.logger.Info("automatic ban applied",
				slog.String("driver_id", string(driverID)),
				slog.String("kind", string(rule.kind)),
				slog.Int("total_points", totalPoints),
			)
		case totalPoints < rule.threshold && has:
			if _, err := s.Remove(ctx, driverID, rule.kind); err != nil {
				return fmt.Errorf("reconcile %s ban: %w", rule.kind, err)
			}
			s.logger.Info("automatic ban lifted",
				slog.String("driver_id", string(driverID)),
				slog.String("kind", string(rule.kind)),
				slog.Int("total_points", totalPoints),
			)
		}
	}

	return nil
}
