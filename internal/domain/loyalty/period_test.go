package loyalty

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bogota(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	return loc
}

func TestPreviousMonth_MesesDeDistintaLongitud(t *testing.T) {
	cases := []struct {
		now       time.Time
		wantFirst string
		wantLast  string
		label     string
	}{
		{time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC), "2024-02-01", "2024-02-29", "2024-02"}, // bisiesto
		{time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), "2023-02-01", "2023-02-28", "2023-02"},
		{time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC), "2024-12-01", "2024-12-31", "2024-12"}, // cambio de año
		{time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC), "2025-04-01", "2025-04-30", "2025-04"},
		{time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), "2025-07-01", "2025-07-31", "2025-07"},
	}
	for _, tc := range cases {
		p := PreviousMonth(tc.now, time.UTC)
		assert.Equal(t, tc.wantFirst, p.Start.Format("2006-01-02"), tc.now)
		assert.Equal(t, tc.wantLast, p.End.AddDate(0, 0, -1).Format("2006-01-02"), tc.now)
		assert.Equal(t, tc.label, p.Label(), tc.now)
	}
}

func TestPreviousMonth_UsaLaZonaDelReporte(t *testing.T) {
	loc := bogota(t)
	// 2025-06-01 03:00 UTC todavía es 31 de mayo en Bogotá (UTC-5).
	now := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)
	p := PreviousMonth(now, loc)
	assert.Equal(t, "2025-04", p.Label())

	p = PreviousMonth(now, time.UTC)
	assert.Equal(t, "2025-05", p.Label())
}

func TestPreviousMonth_LimitesExactos(t *testing.T) {
	p := PreviousMonth(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), time.UTC)

	// Start inclusivo y End exclusivo: la consulta usa >= Start AND < End.
	assert.True(t, p.Start.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.End.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestQualifies(t *testing.T) {
	assert.True(t, Qualifies(decimal.NewFromInt(5_000_000), DefaultThreshold))
	assert.True(t, Qualifies(decimal.RequireFromString("5000000.01"), DefaultThreshold))
	assert.False(t, Qualifies(decimal.NewFromInt(4_999_999), DefaultThreshold))
	assert.False(t, Qualifies(decimal.RequireFromString("4999999.99"), DefaultThreshold))
}
