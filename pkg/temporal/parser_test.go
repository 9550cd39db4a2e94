package temporal_test

import (
	"testing"
	"time"

	"daybalance/pkg/temporal"
)

// Wednesday Jan 15, 2025, 10:00 local.
var refNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "compact pm with at", text: "Gym at 130p", want: "13:30"},
		{name: "bare am suffix", text: "Breakfast 9a", want: "09:00"},
		{name: "colon with pm", text: "Lunch 12:30pm", want: "12:30"},
		{name: "24h with colon", text: "Call at 22:00", want: "22:00"},
		{name: "noon pm", text: "Standup at 12pm", want: "12:00"},
		{name: "midnight am", text: "Flight 12am", want: "00:00"},
		{name: "bare number rejected", text: "Task 2", want: ""},
		{name: "bare number with words", text: "Read chapter 5 today", want: ""},
		{name: "out of range skipped then accepted", text: "Room 99:99 call at 3pm", want: "15:00"},
		{name: "pm hour above twelve kept", text: "at 13pm", want: "13:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := temporal.Parse(tt.text, refNow)
			if got.Time != tt.want {
				t.Errorf("Parse(%q).Time = %q, want %q", tt.text, got.Time, tt.want)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "minutes", text: "Deep work 45 min", want: 45},
		{name: "minute word", text: "Walk 20 minutes", want: 20},
		{name: "hours multiply", text: "Study 2 hours", want: 120},
		{name: "hr short form", text: "Nap 1 hr", want: 60},
		{name: "absent", text: "Write report", want: 0},
		{name: "in-phrase not a duration", text: "Call mom in 2 hours", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := temporal.Parse(tt.text, refNow)
			if got.Duration != tt.want {
				t.Errorf("Parse(%q).Duration = %d, want %d", tt.text, got.Duration, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "numeric slash", text: "Dentist 1/26", want: "2025-01-26"},
		{name: "numeric with short year", text: "Trip 3/14/26", want: "2026-03-14"},
		{name: "named month", text: "Party jan 26", want: "2025-01-26"},
		{name: "named month ordinal", text: "Review January 26th", want: "2025-01-26"},
		{name: "recent past month stays this year", text: "Conference jan 2", want: "2025-01-02"},
		{name: "tomorrow", text: "Laundry tomorrow", want: "2025-01-16"},
		{name: "next weekday", text: "Gym next friday", want: "2025-01-17"},
		{name: "next weekday wraps week", text: "Gym next wednesday", want: "2025-01-22"},
		{name: "today not reported", text: "Gym at 5pm", want: ""},
		{name: "no match not reported", text: "Just a title", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := temporal.Parse(tt.text, refNow)
			if got.Date != tt.want {
				t.Errorf("Parse(%q).Date = %q, want %q", tt.text, got.Date, tt.want)
			}
		})
	}
}

func TestParseNamedMonthRollsYearForward(t *testing.T) {
	// More than one month behind the reference day means next year.
	juneNow := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	got := temporal.Parse("Conference jan 2", juneNow)
	if got.Date != "2026-01-02" {
		t.Errorf("Date = %q, want 2026-01-02", got.Date)
	}
}

func TestParseRelativeHours(t *testing.T) {
	got := temporal.Parse("Call mom in 2 hours", refNow)
	if got.Time != "12:00" {
		t.Errorf("Time = %q, want 12:00", got.Time)
	}
	if got.Date != "" {
		t.Errorf("Date = %q, want empty (still today)", got.Date)
	}

	// 23:00 + 2h crosses midnight: the defaulted date advances.
	lateNow := time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC)
	got = temporal.Parse("Stretch in 2 hours", lateNow)
	if got.Time != "01:00" {
		t.Errorf("Time = %q, want 01:00", got.Time)
	}
	if got.Date != "2025-01-16" {
		t.Errorf("Date = %q, want 2025-01-16", got.Date)
	}

	// An explicit date is never overridden by the midnight rollover.
	got = temporal.Parse("Stretch 1/20 in 2 hours", lateNow)
	if got.Date != "2025-01-20" {
		t.Errorf("Date = %q, want 2025-01-20", got.Date)
	}
}

func TestParseCombined(t *testing.T) {
	got := temporal.Parse("Gym 45 min tomorrow at 130p", refNow)
	want := temporal.Expression{Date: "2025-01-16", Time: "13:30", Duration: 45}
	if got != want {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParseStagesDoNotCrossContaminate(t *testing.T) {
	// The duration number must not be read as a clock time even though
	// it carries no other use, and the date fragment must not feed the
	// time matcher.
	got := temporal.Parse("Review 30 min 1/26", refNow)
	if got.Time != "" {
		t.Errorf("Time = %q, want empty", got.Time)
	}
	if got.Duration != 30 {
		t.Errorf("Duration = %d, want 30", got.Duration)
	}
	if got.Date != "2025-01-26" {
		t.Errorf("Date = %q, want 2025-01-26", got.Date)
	}
}
