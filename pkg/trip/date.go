package trip

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Date is a calendar date in ISO YYYY-MM-DD form. Valid dates in this form
// order correctly under plain string comparison, which is what every
// consumer (filtering, snapshot sorting) relies on.
type Date string

// ParseDate validates v as an ISO calendar date.
func ParseDate(v string) (Date, error) {
	if _, err := time.Parse(layoutISO, v); err != nil {
		return "", fmt.Errorf("trip: invalid date %q: %w", v, err)
	}
	return Date(v), nil
}

// Today returns the current local calendar date.
func Today() Date {
	return Date(time.Now().Format(layoutISO))
}

func (d Date) String() string { return string(d) }

func (d Date) IsZero() bool { return d == "" }

func (d Date) Before(then Date) bool { return d < then }

func (d Date) After(then Date) bool { return d > then }

func (d Date) Equal(then Date) bool { return d == then }

// Time converts the date to a time.Time at midnight UTC.
func (d Date) Time() (time.Time, error) {
	return time.Parse(layoutISO, string(d))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		*d = ""
		return nil
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
