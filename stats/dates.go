package stats

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange returns the list of days to aggregate, in chronological order.
//
// If both start and end are given (YYYY-MM-DD, inclusive, either order), the
// range spans them; giving only one of them is an error. Otherwise the range
// covers the given number of days ending yesterday, since the current day is
// still incomplete.
func DateRange(start, end string, days int) ([]string, error) {
	if (start == "") != (end == "") {
		return nil, fmt.Errorf("start and end dates must be given together")
	}

	if start != "" && end != "" {
		startDate, err := time.Parse(dateLayout, start)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", start, err)
		}

		endDate, err := time.Parse(dateLayout, end)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", end, err)
		}

		if startDate.After(endDate) {
			startDate, endDate = endDate, startDate
		}

		var dates []string
		for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
			dates = append(dates, day.Format(dateLayout))
		}

		return dates, nil
	}

	if days < 1 {
		return nil, fmt.Errorf("invalid number of days: %d", days)
	}

	yesterday := time.Now().AddDate(0, 0, -1)

	dates := make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		dates = append(dates, yesterday.AddDate(0, 0, -i).Format(dateLayout))
	}

	return dates, nil
}
