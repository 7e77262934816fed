package models

import (
	"encoding/json"
	"time"

	"fjacquet/tdstatement/internal/dateutils"
)

// Date is a calendar date without time of day. It serializes as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate wraps a time value, dropping the clock part.
func NewDate(t time.Time) Date {
	return Date{Time: dateutils.Truncate(t)}
}

// String returns the ISO representation of the date.
func (d Date) String() string {
	return d.Format(dateutils.DateLayoutISO)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateutils.DateLayoutISO, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
