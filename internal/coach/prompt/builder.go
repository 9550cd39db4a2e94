// Package prompt assembles the request text sent to the coach's LLM
// backend. Assembly is pure string building: every mode always yields a
// prompt, and an unknown mode falls back to the generic advice
// instruction.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"daybalance/internal/model"
)

// State is the application state a prompt is built from. The caller fills
// only what the mode needs; missing sections are simply omitted.
type State struct {
	Mode Mode
	Now  time.Time

	Score     int
	Label     string
	FreeSlots string

	CompletedAdult int
	CompletedChild int
	CompletedRest  int

	Tasks   []model.Task
	History []model.DaySummary
	Goals   []model.Goal
	Turns   []model.ChatTurn

	Question string
	Title    string // schedule_assist only
}

// Build renders the prompt for the given state.
func Build(s State) string {
	if s.Mode == ModeScheduleAssist {
		return buildScheduleAssist(s)
	}

	var b strings.Builder
	writePreamble(&b, s)

	switch s.Mode {
	case ModeChat:
		writeChatBody(&b, s)
	case ModeSummary:
		b.WriteString(InstructionSummary)
	case ModePredict:
		writeHistory(&b, s.History)
		b.WriteString(InstructionPredict)
	default:
		// advice and anything unrecognized
		b.WriteString(InstructionAdvice)
	}

	return b.String()
}

func writePreamble(b *strings.Builder, s State) {
	fmt.Fprintf(b, "It is %s, %s.\n", s.Now.Format(DateDisplayFormat), s.Now.Format(TimeDisplayFormat))
	fmt.Fprintf(b, "Balance score: %d (%s)\n", s.Score, s.Label)
	fmt.Fprintf(b, "Free time today: %s\n", s.FreeSlots)
	fmt.Fprintf(b, "Completed today: Adult %d, Child %d, Rest %d\n\n",
		s.CompletedAdult, s.CompletedChild, s.CompletedRest)
}

func writeChatBody(b *strings.Builder, s State) {
	if len(s.Tasks) > 0 {
		fmt.Fprintf(b, "%s:\n", HeaderToday)
		for _, t := range s.Tasks {
			line := fmt.Sprintf("- %s (%s", t.Title, t.Type)
			if t.ScheduledTime != "" {
				line += ", " + t.ScheduledTime
			}
			line += ")"
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	writeHistory(b, s.History)

	if len(s.Goals) > 0 {
		fmt.Fprintf(b, "%s:\n", HeaderGoals)
		for _, g := range s.Goals {
			if g.Done {
				continue
			}
			if g.DueDate != "" {
				fmt.Fprintf(b, "- %s (due %s)\n", g.Title, g.DueDate)
			} else {
				fmt.Fprintf(b, "- %s\n", g.Title)
			}
		}
		b.WriteString("\n")
	}

	if len(s.Turns) > 0 {
		fmt.Fprintf(b, "%s:\n", HeaderRecent)
		for _, turn := range s.Turns {
			fmt.Fprintf(b, "%s: %s\n", turn.Role, turn.Text)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "User question: %s\n\n", s.Question)
	b.WriteString(InstructionChat)
}

func writeHistory(b *strings.Builder, history []model.DaySummary) {
	if len(history) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", HeaderHistory)
	for _, d := range history {
		fmt.Fprintf(b, "%s: Score %d, Adult %d, Child %d, Rest %d\n",
			d.Date, d.Score, d.AdultCompleted, d.ChildCompleted, d.RestCompleted)
	}
	b.WriteString("\n")
}

// buildScheduleAssist ignores most of the preamble on purpose: the model
// gets only the task title and minimal scheduling context.
func buildScheduleAssist(s State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task title: %q\n", s.Title)
	fmt.Fprintf(&b, "Today is %s.\n", s.Now.Format(temporalDateLayout))
	if s.FreeSlots != "" {
		fmt.Fprintf(&b, "Free time today: %s\n", s.FreeSlots)
	}
	b.WriteString("\n")
	b.WriteString(InstructionScheduleAssist)
	return b.String()
}

const temporalDateLayout = "2006-01-02"
