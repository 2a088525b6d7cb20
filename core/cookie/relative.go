package cookie

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// maxExpireYear is the last year an HTTP date can carry.
const maxExpireYear = 9999

// delta accumulates a relative time expression. Calendar units are kept
// apart from clock units so months and years follow time.AddDate semantics.
type delta struct {
	years  int
	months int
	days   int
	clock  time.Duration
}

// parseRelative resolves expressions like "+1 week", "-1 day", "2 hours ago",
// "tomorrow" or a Go duration literal ("90m") against now.
func parseRelative(expr string, now time.Time) (time.Time, error) {
	d, err := parseDelta(expr)
	if err != nil {
		return time.Time{}, err
	}
	t := now.AddDate(d.years, d.months, d.days).Add(d.clock)
	if t.Year() > maxExpireYear {
		return time.Time{}, fmt.Errorf("%w: %q resolves past year %d", ErrInvalidExpire, expr, maxExpireYear)
	}
	return t, nil
}

func parseDelta(expr string) (delta, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return delta{}, fmt.Errorf("%w: empty expression", ErrInvalidExpire)
	}

	if d, err := time.ParseDuration(s); err == nil {
		return delta{clock: d}, nil
	}

	var total delta
	fields := strings.Fields(s)
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "now", "today":
			continue
		case "yesterday":
			total.days--
			continue
		case "tomorrow":
			total.days++
			continue
		case "ago":
			total = total.negate()
			continue
		}

		n, unit, err := splitTerm(fields[i])
		if err != nil {
			return delta{}, fmt.Errorf("%w: %q", err, expr)
		}
		if unit == "" {
			if i+1 >= len(fields) {
				return delta{}, fmt.Errorf("%w: missing unit in %q", ErrInvalidExpire, expr)
			}
			i++
			unit = fields[i]
		}
		if err := total.add(n, unit); err != nil {
			return delta{}, fmt.Errorf("%w in %q", err, expr)
		}
	}

	return total, nil
}

// splitTerm splits "+1week" into (1, "week") and "-3" into (-3, "").
func splitTerm(term string) (int, string, error) {
	i := 0
	if term[0] == '+' || term[0] == '-' {
		i++
	}
	j := i
	for j < len(term) && term[j] >= '0' && term[j] <= '9' {
		j++
	}
	if j == i {
		return 0, "", fmt.Errorf("%w: unexpected term %q", ErrInvalidExpire, term)
	}

	n, err := strconv.ParseInt(term[:j], 10, 32)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrInvalidExpire, err)
	}
	return int(n), term[j:], nil
}

func (d *delta) add(n int, unit string) error {
	switch unit {
	case "sec", "secs", "second", "seconds":
		return d.addClock(n, time.Second)
	case "min", "mins", "minute", "minutes":
		return d.addClock(n, time.Minute)
	case "hour", "hours":
		return d.addClock(n, time.Hour)
	case "day", "days":
		d.days += n
	case "week", "weeks":
		d.days += 7 * n
	case "fortnight", "fortnights":
		d.days += 14 * n
	case "month", "months":
		d.months += n
	case "year", "years":
		d.years += n
	default:
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidExpire, unit)
	}
	return nil
}

// addClock adds n units to the clock part, failing instead of wrapping
// around when the sum leaves the time.Duration range.
func (d *delta) addClock(n int, unit time.Duration) error {
	limit := int64(math.MaxInt64 / unit)
	if int64(n) > limit || int64(n) < -limit {
		return fmt.Errorf("%w: %d %s out of range", ErrInvalidExpire, n, unit)
	}

	step := time.Duration(n) * unit
	if (step > 0 && d.clock > math.MaxInt64-step) || (step < 0 && d.clock < -math.MaxInt64-step) {
		return fmt.Errorf("%w: offset out of range", ErrInvalidExpire)
	}
	d.clock += step
	return nil
}

func (d delta) negate() delta {
	return delta{
		years:  -d.years,
		months: -d.months,
		days:   -d.days,
		clock:  -d.clock,
	}
}
