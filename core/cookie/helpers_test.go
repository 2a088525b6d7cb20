package cookie_test

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/crumbs/core/cookie"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type fakeInbound struct {
	cookies map[string]string
	host    string
	secure  bool
}

func (in *fakeInbound) Cookie(name string) (string, bool) {
	v, ok := in.cookies[name]
	return v, ok
}

func (in *fakeInbound) Host() string { return in.host }

func (in *fakeInbound) Secure() bool { return in.secure }

type fakeOutbound struct {
	committed bool
	cookies   []*http.Cookie
}

func (out *fakeOutbound) Committed() bool { return out.committed }

func (out *fakeOutbound) SetCookie(c *http.Cookie) {
	out.cookies = append(out.cookies, c)
}

func (out *fakeOutbound) last() *http.Cookie {
	if len(out.cookies) == 0 {
		return nil
	}
	return out.cookies[len(out.cookies)-1]
}

func newTestManager(cookies map[string]string) (*cookie.Manager, *fakeInbound, *fakeOutbound) {
	in := &fakeInbound{cookies: cookies, host: "www.example.com"}
	out := &fakeOutbound{}
	return cookie.New(in, out, cookie.WithClock(fixedClock)), in, out
}
