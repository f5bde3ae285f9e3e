package domain

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// DefaultActiveDays announces the new pair once a week, on Monday.
var DefaultActiveDays = []int{Monday}

// DefaultNotificationTime is used when no announcement time is configured
const DefaultNotificationTime = "09:00"

// CompletedReaction is added to the message of a member reporting the duty as done
const CompletedReaction = "white_check_mark"
