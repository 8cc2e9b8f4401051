package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateUtils(t *testing.T) {
	t.Run(`ParseDate accepts both separators`, func(t *testing.T) {
		slash, err := ParseDate("25/12/2025")
		require.Nil(t, err)
		dot, err := ParseDate("25.12.2025")
		require.Nil(t, err)
		require.Equal(t, slash, dot)
		require.Equal(t, 25, slash.Day())
		require.Equal(t, time.December, slash.Month())
		require.Equal(t, 2025, slash.Year())
	})

	t.Run(`ParseDate rejects garbage`, func(t *testing.T) {
		_, err := ParseDate("2025-12-25")
		require.NotNil(t, err)
		_, err = ParseDate("")
		require.NotNil(t, err)
	})

	t.Run(`CombineDateClock and SplitDateTime round trip`, func(t *testing.T) {
		combined, err := CombineDateClock("05/03/2026", "18:30")
		require.Nil(t, err)
		date, clock := SplitDateTime(combined)
		require.Equal(t, "05/03/2026", date)
		require.Equal(t, "18:30", clock)
	})

	t.Run(`CombineDateClock rejects bad clock`, func(t *testing.T) {
		_, err := CombineDateClock("05/03/2026", "25:30")
		require.NotNil(t, err)
	})

	t.Run(`SameDay check`, func(t *testing.T) {
		morning := time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local)
		evening := time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)
		nextDay := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
		require.Equal(t, true, SameDay(morning, evening))
		require.Equal(t, false, SameDay(evening, nextDay))
	})

	t.Run(`Age before and after the anniversary`, func(t *testing.T) {
		birth := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
		require.Equal(t, 25, Age(birth, time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)))
		require.Equal(t, 26, Age(birth, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))
	})
}
