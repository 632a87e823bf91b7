package cookie

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/cookiekit/pkg/logger"
)

// Accessor reads and writes cookies through a Store.
type Accessor struct {
	store    Store
	defaults *Attributes
	log      *slog.Logger
}

// New returns an Accessor bound to store. A nil store is replaced by
// DefaultStore().
func New(store Store, opts ...Option) *Accessor {
	if store == nil {
		store = DefaultStore()
	}

	o := applyOptions(opts)

	return &Accessor{
		store:    store,
		defaults: o.defaults,
		log:      o.logger,
	}
}

// Set writes name=value followed by attrs. With nil attrs the accessor
// defaults are used, or "; path=/" when there are none.
// Nothing is written when validation fails.
func (a *Accessor) Set(name, value string, attrs *Attributes) error {
	if name == "" {
		return a.reject(name, invalidArgument("name", "string"))
	}

	suffix, err := a.suffix(attrs)
	if err != nil {
		return a.reject(name, err)
	}

	a.store.Write(encodeComponent(name) + "=" + encodeComponent(value) + suffix)
	a.log.Debug("cookie written",
		logger.CookieName(name),
		slog.Bool("default_attributes", attrs == nil),
	)
	return nil
}

// Get returns the decoded value of the first cookie called name.
// It returns ErrCookieNotFound when there is none.
func (a *Accessor) Get(name string) (string, error) {
	if name == "" {
		return "", a.reject(name, invalidArgument("name", "string"))
	}

	for _, entry := range strings.Split(a.store.Read(), "; ") {
		rawKey, rawValue, _ := strings.Cut(entry, "=")

		key, err := decodeComponent(rawKey)
		if err != nil || key != name {
			continue
		}

		value, err := decodeComponent(rawValue)
		if err != nil {
			a.log.Debug("cookie value is not decodable", logger.CookieName(name), logger.Error(err))
			continue
		}
		return value, nil
	}

	return "", ErrCookieNotFound
}

// Has reports whether a cookie called name is readable.
func (a *Accessor) Has(name string) bool {
	_, err := a.Get(name)
	return err == nil
}

// Remove expires the cookie by writing an empty value with ExpiredDate.
// attrs must carry the path and domain the cookie was set with; attrs itself
// is not modified.
func (a *Accessor) Remove(name string, attrs *Attributes) error {
	var removal Attributes
	switch {
	case attrs != nil:
		removal = attrs.Clone()
	case a.defaults != nil:
		removal = a.defaults.Clone()
	}

	if err := removal.Validate(); err != nil {
		return a.reject(name, err)
	}

	removal.Expires = ExpiredDate
	return a.Set(name, "", &removal)
}

func (a *Accessor) suffix(attrs *Attributes) (string, error) {
	if attrs == nil {
		if a.defaults == nil {
			return defaultSuffix, nil
		}
		attrs = a.defaults
	}

	if err := attrs.Validate(); err != nil {
		return "", err
	}
	return attrs.serialize(), nil
}

func (a *Accessor) reject(name string, err error) error {
	a.log.Debug("cookie rejected", logger.CookieName(name), logger.Error(err))
	return err
}

var defaultAccessor = sync.OnceValue(func() *Accessor {
	return New(DefaultStore())
})

// Default returns the process-wide accessor bound to DefaultStore().
func Default() *Accessor {
	return defaultAccessor()
}

// Set calls Set on the default accessor.
func Set(name, value string, attrs *Attributes) error {
	return Default().Set(name, value, attrs)
}

// Get calls Get on the default accessor.
func Get(name string) (string, error) {
	return Default().Get(name)
}

// Remove calls Remove on the default accessor.
func Remove(name string, attrs *Attributes) error {
	return Default().Remove(name, attrs)
}
