package ledger_test

import (
	"testing"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriodType(t *testing.T) {
	for _, valid := range []string{"day", "Month", " YEAR "} {
		_, err := ledger.ParsePeriodType(valid)
		assert.NoError(t, err, valid)
	}

	_, err := ledger.ParsePeriodType("week")
	assert.Error(t, err)
	_, err = ledger.ParsePeriodType("")
	assert.Error(t, err)
}

func TestNewPeriod(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		pt        ledger.PeriodType
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			pt:        ledger.PeriodDay,
			wantStart: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			pt:        ledger.PeriodMonth,
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			pt:        ledger.PeriodYear,
			wantStart: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.pt), func(t *testing.T) {
			p, err := ledger.NewPeriod(tt.pt, ref)
			require.NoError(t, err)
			assert.True(t, p.Start.Equal(tt.wantStart))
			assert.True(t, p.End.Equal(tt.wantEnd))
		})
	}

	_, err := ledger.NewPeriod(ledger.PeriodType("quarter"), ref)
	assert.Error(t, err)
}

func TestPeriodContains(t *testing.T) {
	p, err := ledger.NewPeriod(ledger.PeriodMonth, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, p.Contains(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)))

	// Missing/malformed dates are excluded, never defaulted to today.
	assert.False(t, p.Contains(time.Time{}))
}

func TestBeforeWindow(t *testing.T) {
	cutoff := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	w := ledger.Before(cutoff)

	assert.True(t, w.Contains(time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(cutoff.Add(-time.Second)))
	assert.False(t, w.Contains(cutoff))
	assert.False(t, w.Contains(time.Time{}))
}
