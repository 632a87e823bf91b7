//go:build js && wasm

package cookie

import "syscall/js"

// DocumentStore binds to document.cookie.
type DocumentStore struct {
	document js.Value
}

// NewDocumentStore returns a store over the global document and false when
// there is no document to bind to.
func NewDocumentStore() (*DocumentStore, bool) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, false
	}
	return &DocumentStore{document: doc}, true
}

func (s *DocumentStore) Read() string {
	v := s.document.Get("cookie")
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (s *DocumentStore) Write(serialized string) {
	s.document.Set("cookie", serialized)
}

// DefaultStore returns document.cookie when running in a browser and an
// empty MemoryStore otherwise (for example in a worker).
func DefaultStore() Store {
	if s, ok := NewDocumentStore(); ok {
		return s
	}
	return NewMemoryStore()
}
