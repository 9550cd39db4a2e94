package temporal_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"daybalance/pkg/temporal"
)

// Property-based checks over arbitrary input text: Parse must be total,
// idempotent for a fixed reference time, and only ever emit well-formed
// field values.

func TestParseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("parse is deterministic and idempotent", prop.ForAll(
		func(text string) bool {
			first := temporal.Parse(text, refNow)
			second := temporal.Parse(text, refNow)
			return first == second
		},
		gen.AnyString(),
	))

	properties.Property("emitted time is always zero-padded HH:MM in range", prop.ForAll(
		func(text string) bool {
			exp := temporal.Parse(text, refNow)
			if exp.Time == "" {
				return true
			}
			parsed, err := time.Parse("15:04", exp.Time)
			return err == nil && len(exp.Time) == 5 && parsed.Minute() < 60
		},
		gen.AnyString(),
	))

	properties.Property("emitted date is never the reference day", prop.ForAll(
		func(text string) bool {
			exp := temporal.Parse(text, refNow)
			if exp.Date == "" {
				return true
			}
			if _, err := time.Parse(temporal.DateLayout, exp.Date); err != nil {
				return false
			}
			return exp.Date != refNow.Format(temporal.DateLayout)
		},
		gen.AnyString(),
	))

	properties.Property("duration is never negative", prop.ForAll(
		func(text string) bool {
			return temporal.Parse(text, refNow).Duration >= 0
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
