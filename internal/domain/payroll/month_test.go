package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth_Valid(t *testing.T) {
	m, err := ParseMonth("2026-02")
	require.NoError(t, err)
	assert.Equal(t, 2026, m.Year)
	assert.Equal(t, time.February, m.Month)
	assert.Equal(t, "2026-02", m.String())
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, s := range []string{"", "2026", "2026-13", "02-2026", "2026/02", "2026-2"} {
		_, err := ParseMonth(s)
		assert.ErrorIs(t, err, ErrInvalidMonth, "input %q", s)
	}
}

func TestMonth_Days(t *testing.T) {
	m := Month{Year: 2026, Month: time.February}
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), m.FirstDay())
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), m.LastDay())

	leap := Month{Year: 2024, Month: time.February}
	assert.Equal(t, 29, leap.LastDay().Day())
}

func TestMonth_Contains(t *testing.T) {
	m := Month{Year: 2026, Month: time.May}
	assert.True(t, m.Contains(time.Date(2026, 5, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonth_Prev(t *testing.T) {
	m := Month{Year: 2026, Month: time.January}
	assert.Equal(t, Month{Year: 2025, Month: time.December}, m.Prev())
}
