package tool

import (
	"context"
	"testing"
	"time"

	"chat-agent/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	// 2025-06-01 12:00:00 UTC, a Sunday.
	instant := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return instant }
}

func TestClockTool_KnownZones(t *testing.T) {
	clock := NewClockTool(fixedClock(t), nopLogger{})

	tests := []struct {
		zone string
		want string
	}{
		// Tokyo is UTC+9 year-round: 21:00 same day.
		{"Asia/Tokyo", "Sunday, 1 June 2025, 21:00:00 JST (UTC+09:00)"},
		{"UTC", "Sunday, 1 June 2025, 12:00:00 UTC (UTC+00:00)"},
	}

	for _, tc := range tests {
		t.Run(tc.zone, func(t *testing.T) {
			got, err := clock.Execute(context.Background(), map[string]any{"timezone": tc.zone})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClockTool_CrossesDateLine(t *testing.T) {
	clock := NewClockTool(func() time.Time {
		return time.Date(2025, time.June, 1, 23, 30, 0, 0, time.UTC)
	}, nopLogger{})

	got, err := clock.Execute(context.Background(), map[string]any{"timezone": "Pacific/Auckland"})
	require.NoError(t, err)
	// NZST is UTC+12 in June: already Monday there.
	assert.Contains(t, got, "Monday, 2 June 2025")
}

func TestClockTool_UnknownTimezone(t *testing.T) {
	clock := NewClockTool(fixedClock(t), nopLogger{})

	// "" and "Local" are accepted by time.LoadLocation but would be a silent
	// fallback to a default zone, so they must fail like any unknown name.
	for _, zone := range []string{"Mars/Colony1", "", "Local"} {
		_, err := clock.Execute(context.Background(), map[string]any{"timezone": zone})
		assert.ErrorIs(t, err, entity.ErrUnknownTimezone, "zone %q", zone)
	}
}
