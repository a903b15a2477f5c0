package factory

import (
	"time"

	"github.com/raceleague/steward/internal/dependencies/mocks"
	"github.com/raceleague/steward/internal/services/auth"
	"github.com/raceleague/steward/internal/services/ban"
	"github.com/raceleague/steward/internal/services/steward"
	"github.com/raceleague/steward/internal/storage/memory"
	"github.com/raceleague/steward/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(
		store,
		mockClock,
		ban.DefaultConfig(),
		steward.DefaultConfig(),
		auth.DefaultConfig(),
		testutil.NopLogger(),
	)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
