// Package cookie reads and writes HTTP cookies behind a uniform naming and
// scoping policy: every cookie name gets a prefix (default "mc_"), and every
// cookie shares one domain, path and secure flag.
//
// # Basic Usage
//
// A Manager is bound to one request and its response:
//
//	m, w := cookie.NewHTTP(w, r, false)
//	m.Init(cookie.WithPrefix("app_"))
//
//	// Permanent cookie (one year), readable by scripts
//	err := m.Set("theme", "dark", cookie.Permanent, false)
//
//	// Relative expiry, HttpOnly
//	err = m.Set("cart", cartID, cookie.Relative("+1 week"), true)
//
//	// Session cookie (zero Expire)
//	err = m.Set("tab", "2", cookie.Session, false)
//
//	// Read, including values written earlier in this request
//	theme := m.Value("theme")
//
//	// Delete
//	err = m.Clear("cart")
//
// Init runs once; later calls are ignored. Without an explicit call, the
// first operation initializes the manager with defaults. The default domain
// is the request host lower-cased with any "www." stripped and a leading dot,
// so "www.Example.COM" becomes ".example.com". The secure flag always follows
// the request transport.
//
// # Expiration
//
// Expire values describe when a cookie expires:
//
//	cookie.Session               // no expiry attribute
//	cookie.Permanent             // one year from now
//	cookie.In(30 * time.Minute)  // offset from now
//	cookie.Seconds(-100)         // in the past, deletes the cookie
//	cookie.Relative("+2 weeks")  // relative time expression
//	cookie.Relative("3 days ago")
//
// An empty value always deletes the cookie. Relative expressions that can't
// be parsed are rejected with ErrInvalidExpire rather than degrading to a
// session cookie; ParseExpire validates user input up front.
//
// # Committed Responses
//
// Cookies are headers, so they can only be added before the response header
// section is written. Set returns ErrHeadersSent once the response is
// committed and leaves the manager untouched:
//
//	if err := m.Set("theme", "dark", cookie.Permanent, false); errors.Is(err, cookie.ErrHeadersSent) {
//		// too late for this response
//	}
//
// Custom hosts implement Inbound and Outbound and pass them to New.
package cookie
