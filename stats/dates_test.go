package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashbots/mev-builders/stats"
)

func TestDateRange(t *testing.T) {
	t.Parallel()

	t.Run("it spans an explicit start and end inclusively", func(t *testing.T) {
		t.Parallel()

		dates, err := stats.DateRange("2025-03-01", "2025-03-04", 7)

		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04"}, dates)
	})

	t.Run("it swaps a reversed start and end", func(t *testing.T) {
		t.Parallel()

		dates, err := stats.DateRange("2025-03-04", "2025-03-01", 7)

		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04"}, dates)
	})

	t.Run("it handles a single-day range", func(t *testing.T) {
		t.Parallel()

		dates, err := stats.DateRange("2025-03-01", "2025-03-01", 7)

		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-01"}, dates)
	})

	t.Run("it crosses month boundaries", func(t *testing.T) {
		t.Parallel()

		dates, err := stats.DateRange("2025-02-27", "2025-03-02", 7)

		require.NoError(t, err)
		assert.Equal(t, []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}, dates)
	})

	t.Run("it rejects malformed dates", func(t *testing.T) {
		t.Parallel()

		_, err := stats.DateRange("yesterday", "2025-03-01", 7)
		assert.Error(t, err)

		_, err = stats.DateRange("2025-03-01", "03/02/2025", 7)
		assert.Error(t, err)
	})

	t.Run("it defaults to the given number of days ending yesterday", func(t *testing.T) {
		t.Parallel()

		dates, err := stats.DateRange("", "", 7)

		require.NoError(t, err)
		require.Len(t, dates, 7)
		assert.Equal(t, time.Now().AddDate(0, 0, -1).Format("2006-01-02"), dates[6])
		assert.Equal(t, time.Now().AddDate(0, 0, -7).Format("2006-01-02"), dates[0])
	})

	t.Run("it rejects a one-sided explicit range", func(t *testing.T) {
		t.Parallel()

		_, err := stats.DateRange("2025-03-01", "", 7)
		assert.Error(t, err)

		_, err = stats.DateRange("", "2025-03-01", 7)
		assert.Error(t, err)
	})

	t.Run("it rejects a non-positive day count", func(t *testing.T) {
		t.Parallel()

		_, err := stats.DateRange("", "", 0)
		assert.Error(t, err)
	})
}
