package domain

import "strings"

type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
)

// Weekdays lists the working days in scheduling order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayDisplayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
}

// dayMapping accepts full names, abbreviations and single-letter shorthands (lower case).
var dayMapping = map[string]Weekday{
	"monday": Monday, "mon": Monday, "m": Monday,
	"tuesday": Tuesday, "tue": Tuesday, "tu": Tuesday, "t": Tuesday,
	"wednesday": Wednesday, "wed": Wednesday, "w": Wednesday,
	"thursday": Thursday, "thu": Thursday, "th": Thursday, "r": Thursday,
	"friday": Friday, "fri": Friday, "f": Friday,
}

// ParseWeekday normalizes a free-text day name into a weekday token.
func ParseWeekday(s string) (Weekday, bool) {
	day, ok := dayMapping[strings.ToLower(strings.TrimSpace(s))]
	return day, ok
}

func (d Weekday) DisplayName() string {
	if name, ok := weekdayDisplayNames[d]; ok {
		return name
	}
	return string(d)
}

func (d Weekday) Valid() bool {
	_, ok := weekdayDisplayNames[d]
	return ok
}
