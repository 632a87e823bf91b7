package cookie

// Store is the host cookie header an Accessor works on.
type Store interface {
	// Read returns the visible cookies as "name1=value1; name2=value2".
	Read() string
	// Write hands one "name=value;attr=val;flag" string to the host,
	// which decides how it merges with existing cookies.
	Write(serialized string)
}
