// Package freeslot derives the open intervals of a day from scheduled
// tasks and the user's sleep window, and renders them for prompts.
package freeslot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"daybalance/internal/model"
)

// Window is the sleep window bounding the awake part of a day.
type Window struct {
	SleepStart string // HH:MM, start of sleep
	SleepEnd   string // HH:MM, wake-up
}

// DefaultWindow is 23:00–06:00.
func DefaultWindow() Window {
	return Window{SleepStart: "23:00", SleepEnd: "06:00"}
}

// Interval is a free stretch of the day in minutes since midnight.
// Intervals are non-overlapping, ascending, and wider than the minimum
// gap.
type Interval struct {
	Start int
	End   int
}

// minGap suppresses slivers between back-to-back commitments.
const minGap = 15

// Intervals computes the free intervals of targetDate within the awake
// window. Tasks on other days, without a time, or already done are
// ignored. Overlapping tasks are absorbed; no negative gap is ever
// emitted.
func Intervals(tasks []model.Task, targetDate string, w Window) []Interval {
	awakeStart := toMinutes(w.SleepEnd)
	awakeEnd := toMinutes(w.SleepStart)

	var day []model.Task
	for _, t := range tasks {
		if t.ScheduledDate != targetDate || t.ScheduledTime == "" || t.Status == model.TaskStatusDone {
			continue
		}
		day = append(day, t)
	}
	sort.Slice(day, func(i, j int) bool {
		return toMinutes(day[i].ScheduledTime) < toMinutes(day[j].ScheduledTime)
	})

	if len(day) == 0 {
		// The whole awake window is open. End < Start encodes a window
		// crossing midnight; Describe splits it into two clauses.
		return []Interval{{Start: awakeStart, End: awakeEnd}}
	}

	var free []Interval
	cursor := awakeStart
	for _, t := range day {
		start := toMinutes(t.ScheduledTime)
		duration := t.Duration
		if duration <= 0 {
			duration = model.DefaultTaskDuration
		}
		if start-cursor > minGap {
			free = append(free, Interval{Start: cursor, End: start})
		}
		if end := start + duration; end > cursor {
			cursor = end
		}
	}
	if awakeEnd-cursor > minGap {
		free = append(free, Interval{Start: cursor, End: awakeEnd})
	}

	return free
}

// Describe renders the free intervals as display text, e.g.
// "6am - 9am, 10am - 12pm". With nothing scheduled the whole awake window
// is one interval; an awake window crossing midnight is reported as two
// clauses joined by AND. No free interval at all yields "None (Busy)".
func Describe(tasks []model.Task, targetDate string, w Window) string {
	free := Intervals(tasks, targetDate, w)
	if len(free) == 0 {
		return "None (Busy)"
	}

	if len(free) == 1 && free[0].End < free[0].Start {
		return fmt.Sprintf("%s - %s AND %s - %s",
			FormatMinutes(free[0].Start), FormatMinutes(23*60+59),
			FormatMinutes(0), FormatMinutes(free[0].End))
	}

	parts := make([]string, 0, len(free))
	for _, iv := range free {
		parts = append(parts, fmt.Sprintf("%s - %s", FormatMinutes(iv.Start), FormatMinutes(iv.End)))
	}
	return strings.Join(parts, ", ")
}

// FormatMinutes renders minutes-of-day in compact 12-hour notation,
// dropping ":00" minutes: 360 -> "6am", 750 -> "12:30pm".
func FormatMinutes(m int) string {
	h := (m / 60) % 24
	min := m % 60

	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}

	if min == 0 {
		return fmt.Sprintf("%d%s", h12, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", h12, min, suffix)
}

func toMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}
