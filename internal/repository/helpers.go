package repository

import "time"

// dateLayout is used for schedule dates; timestamps use RFC3339.
const dateLayout = "2006-01-02"

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// parseDate parses a stored date string, returning the zero time for
// empty values.
func parseDate(s, layout string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(layout, s)
}
