package scheduling

import "fmt"

// Shop operating window: bookings may start at 12:00 PM through 10:00 PM.
// The calendar UI uses the same bounds to decide which rows to draw, so
// they stay exported here instead of being inlined at the call sites.
const (
	OpenHour     = 12
	LastSlotHour = 22
)

// WithinHours reports whether hour is a bookable start time.
func WithinHours(hour int) bool {
	return hour >= OpenHour && hour <= LastSlotHour
}

// HourLabel renders a bookable hour as a 12-hour clock label, e.g. 15 ->
// "3 PM". Every bookable hour is noon or later, so the suffix is always PM.
func HourLabel(hour int) string {
	if hour <= 12 {
		return fmt.Sprintf("%d PM", hour)
	}
	return fmt.Sprintf("%d PM", hour-12)
}
