package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBanKind(t *testing.T) {
	kind, err := ParseBanKind("quali")
	require.NoError(t, err)
	assert.Equal(t, BanKindQuali, kind)

	kind, err = ParseBanKind("race")
	require.NoError(t, err)
	assert.Equal(t, BanKindRace, kind)
}

func TestParseBanKindInvalid(t *testing.T) {
	for _, input := range []string{"", "sprint", "Quali", "RACE"} {
		_, err := ParseBanKind(input)
		assert.ErrorIs(t, err, ErrInvalidBanKind, "input %q", input)
	}
}

func TestParseBanTime(t *testing.T) {
	expected := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	for _, input := range []string{
		"2024-01-01 12:30:00",
		"2024-01-01T12:30:00Z",
		"2024-01-01T12:30:00",
	} {
		got, err := ParseBanTime(input)
		require.NoError(t, err, "input %q", input)
		assert.True(t, expected.Equal(got), "input %q", input)
	}
}

func TestParseBanTimeInvalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "01/01/2024"} {
		_, err := ParseBanTime(input)
		assert.Error(t, err, "input %q", input)
	}
}
