// Package cookie provides a small accessor for reading, writing and removing
// cookies through a host cookie header such as document.cookie.
//
// # Overview
//
// The `Accessor` type is the entry point. It wraps a `Store`, the host's
// cookie header, and exposes three operations:
//
//   • Set() – percent-encodes name and value and writes them with attributes
//   • Get() – finds the first cookie with the given name and decodes its value
//   • Remove() – writes an empty value with an expiry in the past
//
// The accessor never owns cookies. Merging, overwriting and expiring are left
// to the store, exactly as a browser does for document.cookie.
//
// # Stores
//
//   • DocumentStore – document.cookie, js/wasm builds only
//   • HTTPStore – the Cookie request header and Set-Cookie response headers
//   • MemoryStore – in-memory fallback that applies browser-like merge and
//     expiry rules, used outside a browser and in tests
//
// DefaultStore() picks the right one for the platform; Default() returns an
// accessor bound to it once per process.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiekit/pkg/cookie"
//
//	acc := cookie.New(cookie.NewMemoryStore())
//	_ = acc.Set("theme", "dark", nil) // theme=dark; path=/
//	_ = acc.Set("sid", "a b", &cookie.Attributes{Path: "/app", Secure: true})
//
//	theme, err := acc.Get("theme")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//	    // not set
//	}
//
//	_ = acc.Remove("sid", &cookie.Attributes{Path: "/app"})
//
// Within an HTTP server use the middleware and read the accessor from the
// request context:
//
//	r.Use(cookie.Middleware())
//	acc := cookie.MustFromContext(req.Context())
//
// # Attributes
//
// `Attributes` has typed fields for path, domain, expires and secure, plus
// Extra for passthrough attributes like max-age or samesite. Attribute sets
// coming from untyped sources go through ParseAttributes (also used by
// Attributes.UnmarshalJSON), which rejects lists, non-string values and a
// secure flag that is not true or "true".
//
// # Configuration
//
// The `Config` struct is loaded from environment variables via
// github.com/caarlos0/env. Non-empty attribute fields become the accessor
// defaults.
//
//	cfg, _ := cookie.LoadConfig()
//	acc, _ := cookie.NewFromConfig(nil, cfg)
//
// # Error Handling
//
// Validation happens before anything is written. Invalid input returns an
// *ArgumentError that matches ErrInvalidArgument with errors.Is. A missing
// cookie returns ErrCookieNotFound, which is distinct from an empty value.
package cookie
