package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// UTCTime stores an instant as RFC 3339 UTC text so the persisted column stays
// a plain ISO-8601 string.
type UTCTime time.Time

// Value implements driver.Valuer.
func (t UTCTime) Value() (driver.Value, error) {
	return time.Time(t).UTC().Format(time.RFC3339), nil
}

// Scan implements sql.Scanner to hydrate the instant from its text column.
func (t *UTCTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = UTCTime(time.Time{})
		return nil
	case time.Time:
		*t = UTCTime(v.UTC())
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("domain.UTCTime: unsupported type %T", value)
	}
}

func (t *UTCTime) parse(raw string) error {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("domain.UTCTime: %w", err)
	}
	*t = UTCTime(parsed.UTC())
	return nil
}

// Time returns the instant as a standard time.Time in UTC.
func (t UTCTime) Time() time.Time {
	return time.Time(t).UTC()
}

func (t UTCTime) String() string {
	return time.Time(t).UTC().Format(time.RFC3339)
}
