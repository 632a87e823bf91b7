package cookie

import (
	"net/http"
	"strings"
)

// HTTPStore binds a Store to one HTTP exchange. Reads start from the request
// Cookie headers; every write is sent as a Set-Cookie header and is visible
// to later reads of the same store.
type HTTPStore struct {
	w   http.ResponseWriter
	jar *MemoryStore
}

// NewHTTPStore creates a store for the given response and request.
// r may be nil when there are no incoming cookies.
func NewHTTPStore(w http.ResponseWriter, r *http.Request) *HTTPStore {
	jar := NewMemoryStore()
	if r != nil {
		for _, line := range r.Header.Values("Cookie") {
			for pair := range strings.SplitSeq(line, ";") {
				if pair = strings.TrimSpace(pair); pair != "" {
					jar.appendPair(pair)
				}
			}
		}
	}

	return &HTTPStore{w: w, jar: jar}
}

func (s *HTTPStore) Read() string {
	return s.jar.Read()
}

func (s *HTTPStore) Write(serialized string) {
	s.w.Header().Add("Set-Cookie", serialized)
	s.jar.Write(serialized)
}
