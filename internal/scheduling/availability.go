package scheduling

import "barberbook/internal/models"

// SlotTaken reports whether any booking occupies the (date, hour) slot.
// Stored hour values are coerced to integers before comparing; records
// whose hour field is not numeric are skipped so one corrupt entry cannot
// block every later decision.
func SlotTaken(bookings []models.Booking, date string, hour int) bool {
	for _, b := range bookings {
		if b.Date != date {
			continue
		}

		h, err := b.Time.Int()
		if err != nil {
			continue
		}

		if h == hour {
			return true
		}
	}

	return false
}

// SuggestNeighbors returns up to two free slots adjacent to a taken hour,
// later one first, both clamped to the operating window. An empty result
// means the shop is fully booked around that time.
func SuggestNeighbors(bookings []models.Booking, date string, hour int) []string {
	suggestions := []string{}

	if hour+1 <= LastSlotHour && !SlotTaken(bookings, date, hour+1) {
		suggestions = append(suggestions, HourLabel(hour+1))
	}
	if hour-1 >= OpenHour && !SlotTaken(bookings, date, hour-1) {
		suggestions = append(suggestions, HourLabel(hour-1))
	}

	return suggestions
}
