package gcalendar

import "time"

// Config holds the calendar client settings.
type Config struct {
	CredentialsPath string
	CalendarID      string // defaults to "primary"
}

// EventRequest is the input for mirroring a scheduled task onto the calendar.
type EventRequest struct {
	Title       string
	Description string
	Start       time.Time
	Duration    time.Duration
	Timezone    string // e.g. "America/New_York"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Start       time.Time
	End         time.Time
}

// DayRequest is the input for listing events within a window.
type DayRequest struct {
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
