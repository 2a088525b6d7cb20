package cookie

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// PermanentPeriod is how far in the future a permanent cookie expires.
const PermanentPeriod = "+1 year"

type expireKind uint8

const (
	expireSession expireKind = iota
	expirePermanent
	expireOffset
	expireRelative
	expireInvalid
)

// maxSeconds is the largest offset in seconds a time.Duration can hold.
const maxSeconds = math.MaxInt64 / int64(time.Second)

// Expire describes when a cookie expires. The zero value is a session cookie.
type Expire struct {
	kind   expireKind
	offset time.Duration
	expr   string
}

var (
	// Session expires when the client ends its session; no expiry attribute is sent.
	Session = Expire{}

	// Permanent expires one year after the cookie is written.
	Permanent = Expire{kind: expirePermanent}

	// Yesterday is the expiry used to delete cookies.
	Yesterday = Relative("-1 day")
)

// In expires the cookie d after it is written. Negative durations delete it.
func In(d time.Duration) Expire {
	return Expire{kind: expireOffset, offset: d}
}

// Seconds expires the cookie n seconds after it is written.
// Offsets beyond the time.Duration range fail to resolve with ErrInvalidExpire.
func Seconds(n int) Expire {
	if int64(n) > maxSeconds || int64(n) < -maxSeconds {
		return Expire{kind: expireInvalid, expr: strconv.Itoa(n)}
	}
	return In(time.Duration(n) * time.Second)
}

// Bool maps true to Permanent and false to Session.
func Bool(permanent bool) Expire {
	if permanent {
		return Permanent
	}
	return Session
}

// Relative expires the cookie at a relative time expression such as
// "+1 week", "-1 day" or "3 days ago". The expression is parsed when
// the cookie is written; use ParseExpire to validate it up front.
func Relative(expr string) Expire {
	return Expire{kind: expireRelative, expr: expr}
}

// ParseExpire parses user input into an Expire.
// Accepts "session", "permanent", a signed number of seconds or a relative
// time expression.
func ParseExpire(s string) (Expire, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "session", "false":
		return Session, nil
	case "permanent", "true":
		return Permanent, nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > maxSeconds || n < -maxSeconds {
			return Expire{}, fmt.Errorf("%w: %s seconds out of range", ErrInvalidExpire, s)
		}
		return Seconds(int(n)), nil
	}

	if _, err := parseDelta(s); err != nil {
		return Expire{}, err
	}
	return Relative(s), nil
}

// IsSession reports whether e describes a session cookie.
func (e Expire) IsSession() bool {
	return e.kind == expireSession
}

// Resolve returns the absolute expiry time relative to now.
// The zero time is returned for session cookies.
func (e Expire) Resolve(now time.Time) (time.Time, error) {
	switch e.kind {
	case expireSession:
		return time.Time{}, nil
	case expirePermanent:
		return parseRelative(PermanentPeriod, now)
	case expireOffset:
		return now.Add(e.offset), nil
	case expireRelative:
		return parseRelative(e.expr, now)
	case expireInvalid:
		return time.Time{}, fmt.Errorf("%w: %s seconds out of range", ErrInvalidExpire, e.expr)
	default:
		return time.Time{}, fmt.Errorf("%w: unknown kind %d", ErrInvalidExpire, e.kind)
	}
}

// String implements fmt.Stringer.
func (e Expire) String() string {
	switch e.kind {
	case expireSession:
		return "session"
	case expirePermanent:
		return "permanent"
	case expireOffset:
		return e.offset.String()
	default:
		return e.expr
	}
}
