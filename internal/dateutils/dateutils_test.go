package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		year      int
		month     time.Month
		day       int
	}{
		{"ISO", "2025-03-15", false, 2025, time.March, 15},
		{"slashed ISO", "2025/03/15", false, 2025, time.March, 15},
		{"US", "03/15/2025", false, 2025, time.March, 15},
		{"European dotted", "15.03.2025", false, 2025, time.March, 15},
		{"timestamp", "2025-03-15 10:30:00", false, 2025, time.March, 15},
		{"padded whitespace", "  2025-03-15 ", false, 2025, time.March, 15},
		{"empty", "", true, 0, 0, 0},
		{"garbage", "next tuesday", true, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDate(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.year, date.Year())
			assert.Equal(t, tc.month, date.Month())
			assert.Equal(t, tc.day, date.Day())
			// Truncated to midnight UTC.
			assert.Equal(t, 0, date.Hour())
			assert.Equal(t, time.UTC, date.Location())
		})
	}
}

func TestFormatISO(t *testing.T) {
	assert.Equal(t, "2025-03-15", FormatISO(time.Date(2025, time.March, 15, 18, 0, 0, 0, time.UTC)))
}
