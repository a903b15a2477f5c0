package steward

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/raceleague/steward/internal/dependencies/mocks"
	"github.com/raceleague/steward/internal/model"
	"github.com/raceleague/steward/internal/services/ban"
	"github.com/raceleague/steward/internal/services/penalty"
	"github.com/raceleague/steward/internal/services/roster"
	"github.com/raceleague/steward/internal/storage/memory"
	"github.com/raceleague/steward/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	controller *Controller
	clock      *mocks.MockClock
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	store := memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()

	rosterService := roster.New(store, s.clock, logger)
	penaltyService := penalty.New(store, s.clock, logger)
	banService := ban.New(store, s.clock, ban.DefaultConfig(), logger)

	s.controller = NewController(rosterService, penaltyService, banService, DefaultConfig(), logger)
	s.ctx = context.Background()
}

func (s *ControllerSuite) activeBans() []*model.Ban {
	bans, err := s.controller.ListActiveBans(s.ctx)
	s.Require().NoError(err)
	return bans
}

func (s *ControllerSuite) TestAwardCreatesDriverOnFirstContact() {
	driver := model.DriverID("44")

	total, err := s.controller.AwardPoints(s.ctx, driver, 3, "contact")
	s.Require().NoError(err)
	s.Equal(3, total)

	got, err := s.controller.GetDriver(s.ctx, driver)
	s.Require().NoError(err)
	s.Equal("44", got.DisplayName)
}

func (s *ControllerSuite) TestAwardDerivesQualiBanAtThreshold() {
	driver := model.DriverID("44")

	total, err := s.controller.AwardPoints(s.ctx, driver, 10, "pile up")
	s.Require().NoError(err)
	s.Equal(10, total)

	bans := s.activeBans()
	s.Require().Len(bans, 1)
	s.Equal(model.BanKindQuali, bans[0].Kind)
	s.Equal("Automatic quali ban for 10+ points", bans[0].Reason)
}

func (s *ControllerSuite) TestAwardDerivesRaceBanAtThreshold() {
	driver := model.DriverID("44")

	_, err := s.controller.AwardPoints(s.ctx, driver, 10, "")
	s.Require().NoError(err)
	_, err = s.controller.AwardPoints(s.ctx, driver, 5, "")
	s.Require().NoError(err)

	bans := s.activeBans()
	s.Require().Len(bans, 2)

	kinds := map[model.BanKind]bool{}
	for _, b := range bans {
		kinds[b.Kind] = true
	}
	s.True(kinds[model.BanKindQuali])
	s.True(kinds[model.BanKindRace])
}

func (s *ControllerSuite) TestRemovalLiftsBans() {
	driver := model.DriverID("44")

	_, err := s.controller.AwardPoints(s.ctx, driver, 15, "")
	s.Require().NoError(err)
	s.Len(s.activeBans(), 2)

	removed, total, err := s.controller.RemovePoints(s.ctx, driver, 6, "appeal upheld")
	s.Require().NoError(err)
	s.Equal(6, removed)
	s.Equal(9, total)

	s.Empty(s.activeBans())
}

func (s *ControllerSuite) TestPartialRemovalKeepsQualiBan() {
	driver := model.DriverID("44")

	_, err := s.controller.AwardPoints(s.ctx, driver, 15, "")
	s.Require().NoError(err)

	_, total, err := s.controller.RemovePoints(s.ctx, driver, 3, "")
	s.Require().NoError(err)
	s.Equal(12, total)

	bans := s.activeBans()
	s.Require().Len(bans, 1)
	s.Equal(model.BanKindQuali, bans[0].Kind)
}

func (s *ControllerSuite) TestManualBanPersistsThroughReconciliation() {
	driver := model.DriverID("55")

	_, err := s.controller.AddBan(s.ctx, driver, model.BanKindRace, "unsafe release")
	s.Require().NoError(err)

	_, err = s.controller.AwardPoints(s.ctx, driver, 1, "")
	s.Require().NoError(err)

	bans := s.activeBans()
	s.Require().Len(bans, 1)
	s.Equal("unsafe release", bans[0].Reason)
}

func (s *ControllerSuite) TestAddBanCreatesDriver() {
	driver := model.DriverID("55")

	_, err := s.controller.AddBan(s.ctx, driver, model.BanKindQuali, "")
	s.Require().NoError(err)

	_, err = s.controller.GetDriver(s.ctx, driver)
	s.NoError(err)
}

func (s *ControllerSuite) TestRemoveBanCounts() {
	driver := model.DriverID("55")

	_, err := s.controller.AddBan(s.ctx, driver, model.BanKindQuali, "")
	s.Require().NoError(err)

	removed, err := s.controller.RemoveBan(s.ctx, driver, model.BanKindQuali)
	s.Require().NoError(err)
	s.Equal(1, removed)

	removed, err = s.controller.RemoveBan(s.ctx, driver, model.BanKindQuali)
	s.Require().NoError(err)
	s.Equal(0, removed)
}

func (s *ControllerSuite) TestListSweepsExpiredBansFirst() {
	driver := model.DriverID("63")

	_, err := s.controller.AddBan(s.ctx, driver, model.BanKindQuali, "")
	s.Require().NoError(err)

	s.clock.Advance(9 * 24 * time.Hour)
	s.Empty(s.activeBans())
}

func (s *ControllerSuite) TestSweepExpiredBans() {
	driver := model.DriverID("63")

	_, err := s.controller.AddBan(s.ctx, driver, model.BanKindQuali, "")
	s.Require().NoError(err)

	removed, err := s.controller.SweepExpiredBans(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, removed)

	s.clock.Advance(9 * 24 * time.Hour)
	removed, err = s.controller.SweepExpiredBans(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, removed)
}

func (s *ControllerSuite) TestRemoveDriverCascades() {
	driver := model.DriverID("81")

	_, err := s.controller.AwardPoints(s.ctx, driver, 12, "")
	s.Require().NoError(err)
	s.Len(s.activeBans(), 1)

	s.Require().NoError(s.controller.RemoveDriver(s.ctx, driver))

	_, err = s.controller.GetDriver(s.ctx, driver)
	s.ErrorIs(err, model.ErrDriverNotFound)
	s.Empty(s.activeBans())

	total, err := s.controller.TotalPoints(s.ctx, driver)
	s.Require().NoError(err)
	s.Equal(0, total)
}

func (s *ControllerSuite) TestRegisterDriverIdempotent() {
	driver := model.DriverID("4")

	first, err := s.controller.RegisterDriver(s.ctx, driver, "Lando")
	s.Require().NoError(err)

	second, err := s.controller.RegisterDriver(s.ctx, driver, "Other Name")
	s.Require().NoError(err)
	s.Equal(first.DisplayName, second.DisplayName)

	drivers, err := s.controller.ListDrivers(s.ctx)
	s.Require().NoError(err)
	s.Len(drivers, 1)
}
