package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	SourceManual    = "manual"
	SourceInstagram = "instagram"
)

type Booking struct {
	ID          string    `json:"id"`
	Customer    string    `json:"customer"`
	Service     string    `json:"service"`
	Date        string    `json:"date"`
	Time        HourValue `json:"time"`
	Source      string    `json:"source"`
	InstagramID string    `json:"instagramId,omitempty"`
}

// HourValue is an hour-of-day as stored in the data files. Legacy records
// contain it as either a JSON string ("15") or a number (15) depending on
// which client wrote them, so it accepts both and marshals back as a string.
type HourValue string

func NewHourValue(hour int) HourValue {
	return HourValue(strconv.Itoa(hour))
}

func (h *HourValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*h = HourValue(strings.TrimSpace(str))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("invalid hour value %s: %w", s, err)
	}
	*h = HourValue(num.String())

	return nil
}

func (h HourValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// Int coerces the stored value to an integer hour. Records for which this
// fails are treated as malformed and skipped by availability checks.
func (h HourValue) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(h)))
}
