package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timeScanner scans timestamp columns into a time.Time. SQLite may hand
// back the stored text instead of a parsed time (for example from a
// RETURNING clause), so string values are parsed with the driver's formats.
type timeScanner struct {
	dst *time.Time
}

func scanTime(dst *time.Time) timeScanner {
	return timeScanner{dst: dst}
}

// Scan implements [database/sql.Scanner].
func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.dst = v.UTC()
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.dst = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (s timeScanner) parse(value string) error {
	value = strings.TrimSuffix(value, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			*s.dst = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as a timestamp", value)
}
