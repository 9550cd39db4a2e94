package temporal

// Expression is the structured result of parsing a free-text temporal
// phrase. Zero values mean "not present in the text".
//
// Date is YYYY-MM-DD and is populated only when the parsed date differs
// from the reference day, so callers can tell an explicitly stated date
// apart from the default. Time is zero-padded 24h HH:MM. Duration is in
// minutes.
type Expression struct {
	Date     string
	Time     string
	Duration int
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"
