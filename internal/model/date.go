package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a date field cannot be normalized.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are the accepted wire formats for date fields, tried in
// order. Clients send either full RFC 3339 timestamps or bare dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ParseDate normalizes a date string into a time value. Malformed input
// yields an error wrapping ErrInvalidDate.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Date is a time value that unmarshals from any accepted wire format.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, b)
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}
