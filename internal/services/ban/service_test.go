package ban

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/raceleague/steward/internal/dependencies/mocks"
	"github.com/raceleague/steward/internal/model"
	"github.com/raceleague/steward/internal/storage/memory"
	"github.com/raceleague/steward/internal/testutil"
)

type BanSuite struct {
	suite.Suite
	service *Service
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestBanSuite(t *testing.T) {
	suite.Run(t, new(BanSuite))
}

func (s *BanSuite) SetupTest() {
	store := memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(store, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *BanSuite) TestAddAndHas() {
	driver := model.DriverID("44")

	ban, err := s.service.Add(s.ctx, driver, model.BanKindQuali, "dangerous driving")
	s.Require().NoError(err)
	s.Equal(model.BanKindQuali, ban.Kind)
	s.Equal("dangerous driving", ban.Reason)
	s.Equal("2024-01-01 12:00:00", ban.IssuedAt)

	has, err := s.service.Has(s.ctx, driver, model.BanKindQuali)
	s.Require().NoError(err)
	s.True(has)

	has, err = s.service.Has(s.ctx, driver, model.BanKindRace)
	s.Require().NoError(err)
	s.False(has)
}

func (s *BanSuite) TestAddRejectsInvalidKind() {
	_, err := s.service.Add(s.ctx, model.DriverID("44"), model.BanKind("sprint"), "")
	s.ErrorIs(err, model.ErrInvalidBanKind)
}

func (s *BanSuite) TestAddDefaultsReason() {
	ban, err := s.service.Add(s.ctx, model.DriverID("44"), model.BanKindRace, "")
	s.Require().NoError(err)
	s.Equal(model.DefaultBanReason, ban.Reason)
}

func (s *BanSuite) TestRemoveDeletesAllOfKind() {
	driver := model.DriverID("44")

	_, err := s.service.Add(s.ctx, driver, model.BanKindQuali, "one")
	s.Require().NoError(err)
	_, err = s.service.Add(s.ctx, driver, model.BanKindQuali, "two")
	s.Require().NoError(err)
	_, err = s.service.Add(s.ctx, driver, model.BanKindRace, "race")
	s.Require().NoError(err)

	removed, err := s.service.Remove(s.ctx, driver, model.BanKindQuali)
	s.Require().NoError(err)
	s.Equal(2, removed)

	bans, err := s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(bans, 1)
	s.Equal(model.BanKindRace, bans[0].Kind)
}

func (s *BanSuite) TestRemoveWithoutBansIsNoOp() {
	removed, err := s.service.Remove(s.ctx, model.DriverID("ghost"), model.BanKindRace)
	s.Require().NoError(err)
	s.Equal(0, removed)
}

func (s *BanSuite) TestReconcileAppliesBansAtThresholds() {
	driver := model.DriverID("44")

	// Below both thresholds: nothing derived
	s.Require().NoError(s.service.Reconcile(s.ctx, driver, 9))
	bans, err := s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Empty(bans)

	// At the quali threshold: quali ban only
	s.Require().NoError(s.service.Reconcile(s.ctx, driver, 10))
	bans, err = s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(bans, 1)
	s.Equal(model.BanKindQuali, bans[0].Kind)

	// At the race threshold: both
	s.Require().NoError(s.service.Reconcile(s.ctx, driver, 15))
	bans, err = s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Len(bans, 2)
}

func (s *BanSuite) TestReconcileRemovesBansBelowThresholds() {
	driver := model.DriverID("44")

	s.Require().NoError(s.service.Reconcile(s.ctx, driver, 15))

	s.Require().NoError(s.service.Reconcile(s.ctx, driver, 12))
	bans, err := s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(bans, 1)
	s.Equal(model.BanKindQuali, bans[0].Kind)

	s.Require().NoError(s.service.Reconcile(s.ctx, driver, 4))
	bans, err = s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Empty(bans)
}

func (s *BanSuite) TestReconcileIsIdempotent() {
	driver := model.DriverID("44")

	s.Require().NoError(s.service.Reconcile(s.ctx, driver, 15))
	s.Require().NoError(s.service.Reconcile(s.ctx, driver, 15))

	bans, err := s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Len(bans, 2)
}

func (s *BanSuite) TestReconcileManualBanSuppressesDerivation() {
	driver := model.DriverID("55")

	manual, err := s.service.Add(s.ctx, driver, model.BanKindQuali, "stewards decision")
	s.Require().NoError(err)

	// Over the threshold: the manual ban already satisfies it
	s.Require().NoError(s.service.Reconcile(s.ctx, driver, 12))
	bans, err := s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(bans, 1)
	s.Equal(manual.ID, bans[0].ID)
	s.Equal("stewards decision", bans[0].Reason)
}

func (s *BanSuite) TestSweepRemovesExpiredBans() {
	driver := model.DriverID("63")

	_, err := s.service.Add(s.ctx, driver, model.BanKindQuali, "old")
	s.Require().NoError(err)

	s.clock.Advance(5 * 24 * time.Hour)
	_, err = s.service.Add(s.ctx, driver, model.BanKindRace, "recent")
	s.Require().NoError(err)

	// 9 days after the first ban, 4 after the second
	s.clock.Advance(4 * 24 * time.Hour)
	removed, err := s.service.Sweep(s.ctx, DefaultRetention)
	s.Require().NoError(err)
	s.Equal(1, removed)

	bans, err := s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(bans, 1)
	s.Equal("recent", bans[0].Reason)
}

func (s *BanSuite) TestSweepKeepsBanWithinRetention() {
	_, err := s.service.Add(s.ctx, model.DriverID("63"), model.BanKindQuali, "")
	s.Require().NoError(err)

	s.clock.Advance(7 * 24 * time.Hour)
	removed, err := s.service.Sweep(s.ctx, DefaultRetention)
	s.Require().NoError(err)
	s.Equal(0, removed)
}

func (s *BanSuite) TestSweepSkipsUnparseableTimestamp() {
	driver := model.DriverID("63")

	ban, err := s.service.Add(s.ctx, driver, model.BanKindQuali, "")
	s.Require().NoError(err)

	// Corrupt the stored timestamp directly
	ban.IssuedAt = "not-a-timestamp"
	s.Require().NoError(s.service.storage.SaveBan(s.ctx, ban))

	s.clock.Advance(30 * 24 * time.Hour)
	removed, err := s.service.Sweep(s.ctx, DefaultRetention)
	s.Require().NoError(err)
	s.Equal(0, removed)

	bans, err := s.service.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Len(bans, 1)
}

func (s *BanSuite) TestSweepAcceptsISOTimestamps() {
	driver := model.DriverID("63")

	ban, err := s.service.Add(s.ctx, driver, model.BanKindQuali, "")
	s.Require().NoError(err)

	ban.IssuedAt = "2023-12-01T12:00:00"
	s.Require().NoError(s.service.storage.SaveBan(s.ctx, ban))

	removed, err := s.service.Sweep(s.ctx, DefaultRetention)
	s.Require().NoError(err)
	s.Equal(1, removed)
}
