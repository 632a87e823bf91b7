//go:build !(js && wasm)

package cookie

// DefaultStore returns the host cookie store. Outside a browser there is
// none, so it is an empty MemoryStore.
func DefaultStore() Store {
	return NewMemoryStore()
}
