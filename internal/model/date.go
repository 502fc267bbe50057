package model

import (
	"fmt"
	"strings"
	"time"
)

// Date is a time.Time that unmarshals from either RFC 3339 or a plain
// "2006-01-02" date string, since clients send both forms.
type Date struct {
	time.Time
}

// UnmarshalJSON parses b as RFC 3339 first, then as a bare date.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("invalid date %q", s)
		}
	}

	d.Time = t.UTC()
	return nil
}

// MarshalJSON emits the date in RFC 3339.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.UTC().Format(time.RFC3339) + `"`), nil
}
