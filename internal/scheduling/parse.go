package scheduling

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeIntent is the date and hour extracted from a free-text message,
// prior to any validation against operating hours or availability.
type TimeIntent struct {
	Date string // YYYY-MM-DD, shop-local calendar day
	Hour int    // 24-hour clock
}

const dateLayout = "2006-01-02"

// Matches "5", "5:00", "5pm", "5:00 pm" and the like; the first occurrence
// in the message wins.
var timePattern = regexp.MustCompile(`(\d{1,2})(:00)? ?(am|pm)?`)

// ParseTimeExpression extracts a booking intent from a message like
// "haircut tomorrow at 5pm". The date must be anchored by "today" or
// "tomorrow"; there is no default day. Returns false when no usable
// date+hour is found, which callers treat as a clarification case.
func ParseTimeExpression(text string, now time.Time) (TimeIntent, bool) {
	text = strings.ToLower(text)

	var date string
	if strings.Contains(text, "today") {
		date = now.Format(dateLayout)
	}
	if strings.Contains(text, "tomorrow") {
		date = now.AddDate(0, 0, 1).Format(dateLayout)
	}
	if date == "" {
		return TimeIntent{}, false
	}

	m := timePattern.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return TimeIntent{}, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return TimeIntent{}, false
	}

	meridiem := m[3]
	if meridiem == "pm" && hour < 12 {
		hour += 12
	}
	if meridiem == "am" && hour == 12 {
		hour = 0
	}

	// Bare small numbers read as afternoon: the shop never opens before
	// 10 AM, so "at 4" means 4 PM. A bare 10 or 11 is left untouched and
	// then fails the operating-hours check; that mirrors the shop's
	// long-standing behavior and may well be a latent quirk rather than
	// intent.
	if meridiem == "" && hour < 10 {
		hour += 12
	}

	return TimeIntent{Date: date, Hour: hour}, true
}
