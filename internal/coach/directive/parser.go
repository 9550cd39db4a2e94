// Package directive recovers structured task-creation directives and the
// reasoning block from raw model text. Parsing runs once, after the full
// response has streamed in, so partially formed directives are never seen.
package directive

import (
	"regexp"
	"strconv"
	"strings"

	"daybalance/internal/model"
)

var (
	thoughtRe = regexp.MustCompile(`(?s)<thought>(.*?)</thought>`)
	actionRe  = regexp.MustCompile(`\[ACTION:\s*CREATE_TASK\s*\|([^\]]*)\]`)
	scoreRe   = regexp.MustCompile(`^[+-]?\d+$`)
)

// minFields is the shortest accepted directive: title, type, duration,
// time. Anything shorter is dropped silently.
const minFields = 4

// Parse extracts the thought block and every action directive from text,
// returning the cleaned display text alongside them. Malformed directives
// are discarded without surfacing an error; the rest of the response is
// still usable.
func Parse(text string) Result {
	var res Result

	// A single thought region is recognized, first occurrence wins.
	if m := thoughtRe.FindStringSubmatchIndex(text); m != nil {
		res.Thought = strings.TrimSpace(text[m[2]:m[3]])
		text = text[:m[0]] + text[m[1]:]
	}

	for _, m := range actionRe.FindAllStringSubmatch(text, -1) {
		if action, ok := parseFields(m[1]); ok {
			res.Actions = append(res.Actions, action)
		}
	}
	text = actionRe.ReplaceAllString(text, "")

	res.Text = strings.TrimSpace(text)
	return res
}

func parseFields(raw string) (Action, bool) {
	parts := strings.Split(raw, "|")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, strings.TrimSpace(p))
	}

	if len(fields) < minFields {
		return Action{}, false
	}

	var action Action

	// A trailing signed integer is a projected score, popped before the
	// positional assignment below; the 4th/5th slot shifts accordingly.
	if scoreRe.MatchString(fields[len(fields)-1]) {
		score, err := strconv.Atoi(fields[len(fields)-1])
		if err == nil {
			action.ProjectedScore = &score
			fields = fields[:len(fields)-1]
		}
	}

	action.Title = fields[0]
	action.Type = model.TaskType(strings.ToUpper(fields[1]))

	duration, err := strconv.Atoi(fields[2])
	if err != nil || duration <= 0 {
		duration = model.DefaultTaskDuration
	}
	action.Duration = duration

	switch {
	case len(fields) >= 5:
		action.Date = fields[3]
		action.Time = fields[4]
	case len(fields) == 4:
		action.Time = fields[3]
	}

	return action, true
}
