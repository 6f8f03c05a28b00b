package dto

import (
	"fmt"
	"strings"
	"time"
)

// localDateTimeLayout is an ISO-8601-like local date-time without a
// timezone offset, matching the wire format of the API.
const localDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime is a time.Time that serializes as a local date-time
// string without timezone information.
type LocalDateTime time.Time

// MarshalJSON renders the timestamp as "2006-01-02T15:04:05".
func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(t).Format(localDateTimeLayout))), nil
}

// UnmarshalJSON parses a "2006-01-02T15:04:05" string.
func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := time.ParseInLocation(localDateTimeLayout, s, time.Local)
	if err != nil {
		return err
	}
	*t = LocalDateTime(parsed)
	return nil
}
