package cronparser

import (
	"fmt"
	"strings"
	"time"

	cron "github.com/netresearch/go-cron"
)

var _parser = cron.MustNewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Schedule is a parsed cron expression bound to a time zone.
type Schedule struct {
	spec     string
	schedule cron.Schedule
}

// Parse parses a five-field cron expression or a descriptor such as @weekly.
// If tz is non-empty and the spec has no CRON_TZ=/TZ= prefix, it prepends CRON_TZ=<tz>.
// Defaults to UTC when no tz is given.
func Parse(spec, tz string) (*Schedule, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("parse cron spec: empty")
	}

	schedule, err := _parser.Parse(buildSpec(spec, tz))
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}

	return &Schedule{
		spec:     spec,
		schedule: schedule,
	}, nil
}

// Next returns the first occurrence strictly after `after`, or the zero time
// when there is none.
func (s *Schedule) Next(after time.Time) time.Time {
	return s.schedule.Next(after)
}

func (s *Schedule) String() string {
	return s.spec
}

func buildSpec(spec, tz string) string {
	hasTZPrefix := strings.HasPrefix(spec, "CRON_TZ=") ||
		strings.HasPrefix(spec, "TZ=")

	if tz != "" && !hasTZPrefix {
		return "CRON_TZ=" + tz + " " + spec
	}

	if !hasTZPrefix {
		return "CRON_TZ=UTC " + spec
	}

	return spec
}
