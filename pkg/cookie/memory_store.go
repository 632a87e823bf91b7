package cookie

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MemoryStore implements Store in memory, following browser rules closely
// enough to be used as a fallback and in tests: cookies are keyed by name,
// path and domain, a write replaces the matching cookie in place, a past
// expires or a non-positive max-age removes it, and Read lists longer paths
// first. Lifetimes are capped at maxCookieLifetime.
type MemoryStore struct {
	mu      sync.Mutex
	entries []memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	name      string
	value     string
	path      string
	domain    string
	expiresAt time.Time // zero for session cookies
}

func (e memoryEntry) sameCookie(o memoryEntry) bool {
	return e.name == o.name && e.path == o.path && e.domain == o.domain
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !e.expiresAt.After(now)
}

// maxCookieLifetime is the longest lifetime browsers keep a cookie for.
const maxCookieLifetime = 400 * 24 * time.Hour

type MemoryStoreOption func(*MemoryStore)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates an empty in-memory cookie store
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the live cookies, longer paths first and in insertion order
// within the same path length.
func (s *MemoryStore) Read() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.entries = slices.DeleteFunc(s.entries, func(e memoryEntry) bool {
		return e.expired(now)
	})

	ordered := slices.Clone(s.entries)
	slices.SortStableFunc(ordered, func(a, b memoryEntry) int {
		return len(b.path) - len(a.path)
	})

	pairs := make([]string, 0, len(ordered))
	for _, e := range ordered {
		pairs = append(pairs, e.name+"="+e.value)
	}
	return strings.Join(pairs, "; ")
}

// Write applies one serialized cookie. Strings without a name are ignored.
func (s *MemoryStore) Write(serialized string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := parseSerialized(serialized, now)
	if !ok {
		return
	}

	idx := slices.IndexFunc(s.entries, entry.sameCookie)
	switch {
	case entry.expired(now):
		if idx >= 0 {
			s.entries = slices.Delete(s.entries, idx, idx+1)
		}
	case idx >= 0:
		s.entries[idx] = entry
	default:
		s.entries = append(s.entries, entry)
	}
}

// Len returns the number of stored cookies, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// appendPair adds a cookie as received in a request header, without merging.
func (s *MemoryStore) appendPair(pair string) {
	name, value, _ := strings.Cut(pair, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, memoryEntry{name: name, value: value, path: "/"})
}

// parseSerialized reads a Set-Cookie style string. max-age wins over expires
// and a missing path defaults to "/".
func parseSerialized(serialized string, now time.Time) (memoryEntry, bool) {
	parts := strings.Split(serialized, ";")

	name, value, found := strings.Cut(parts[0], "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return memoryEntry{}, false
	}

	entry := memoryEntry{name: name, value: strings.TrimSpace(value)}
	maxAgeSet := false

	for _, part := range parts[1:] {
		key, val, _ := strings.Cut(strings.TrimSpace(part), "=")
		val = strings.TrimSpace(val)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case attrPath:
			entry.path = val
		case attrDomain:
			entry.domain = strings.ToLower(strings.TrimPrefix(val, "."))
		case attrExpires:
			if maxAgeSet {
				continue
			}
			if t, err := http.ParseTime(val); err == nil {
				entry.expiresAt = t
				if limit := now.Add(maxCookieLifetime); t.After(limit) {
					entry.expiresAt = limit
				}
			}
		case "max-age":
			// out-of-range values saturate and are capped below
			if n, err := strconv.ParseInt(val, 10, 64); err == nil || errors.Is(err, strconv.ErrRange) {
				maxAgeSet = true
				entry.expiresAt = now.Add(maxAgeDuration(n))
			}
		}
	}

	if entry.path == "" {
		entry.path = "/"
	}
	return entry, true
}

// maxAgeDuration converts max-age seconds to a lifetime capped at
// maxCookieLifetime.
func maxAgeDuration(seconds int64) time.Duration {
	if seconds <= 0 {
		return 0
	}
	if seconds >= int64(maxCookieLifetime/time.Second) {
		return maxCookieLifetime
	}
	return time.Duration(seconds) * time.Second
}
