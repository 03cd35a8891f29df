package ttconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecraft/timetable/internal/ttlerr"
)

func validConfig() Config {
	return Config{
		Days:      []string{"Sun", "Mon", "Tue", "Wed", "Thu"},
		StartHour: 8,
		EndHour:   18,
		F2FDaysAB: map[int]bool{3: true, 4: true},
		F2FDaysCD: map[int]bool{0: true, 1: true, 2: true},
		Limits:    DefaultLimits(),
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyDays(t *testing.T) {
	cfg := validConfig()
	cfg.Days = nil
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, ttlerr.Is(err, ttlerr.CodeValidation))
	assert.ErrorIs(t, err, ttlerr.ErrEmptyDays)
}

func TestValidate_BadHourWindow(t *testing.T) {
	cfg := validConfig()
	cfg.EndHour = cfg.StartHour
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ttlerr.ErrBadHourWindow)
}

func TestValidate_OverlappingF2FDays(t *testing.T) {
	cfg := validConfig()
	cfg.F2FDaysCD[3] = true // Wed is also claimed by AB
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, ttlerr.Is(err, ttlerr.CodeValidation))
}

func TestGroupFamily(t *testing.T) {
	assert.Equal(t, "AB", GroupFamily("AB"))
	assert.Equal(t, "AB", GroupFamily("S4"))
	assert.Equal(t, "AB", GroupFamily("S5"))
	assert.Equal(t, "AB", GroupFamily("S6"))
	assert.Equal(t, "CD", GroupFamily("CD"))
	assert.Equal(t, "CD", GroupFamily("S1"))
	assert.Equal(t, "CD", GroupFamily("S2"))
	assert.Equal(t, "CD", GroupFamily("S3"))
}

func TestIsF2F(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsF2F("AB", 3))
	assert.False(t, cfg.IsF2F("AB", 0))
	assert.True(t, cfg.IsF2F("CD", 0))
	assert.False(t, cfg.IsF2F("CD", 3))
}
