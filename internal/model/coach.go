package model

// DaySummary condenses one day of history for prompts and charts.
type DaySummary struct {
	Date           string // YYYY-MM-DD
	Score          int
	AdultCompleted int
	ChildCompleted int
	RestCompleted  int
}

// Goal is a longer-horizon objective shown to the coach.
type Goal struct {
	ID      string
	Title   string
	DueDate string // YYYY-MM-DD, may be empty
	Done    bool
}

// ChatTurn is one message of the coach conversation.
type ChatTurn struct {
	Role string // "user" or "coach"
	Text string
}

// Preferences holds the user's scheduling preferences.
type Preferences struct {
	SleepStart string // HH:MM, default 23:00
	SleepEnd   string // HH:MM, default 06:00
	Timezone   string // IANA name
}
