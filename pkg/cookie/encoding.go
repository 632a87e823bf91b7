package cookie

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// encodeComponent percent-encodes every byte outside the URI component
// unreserved set (A-Z a-z 0-9 - _ . ! ~ * ' ( )). Unlike url.QueryEscape it
// never emits '+' for a space, so the result decodes with url.PathUnescape.
func encodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// decodeComponent reverses encodeComponent. '+' is kept literally.
func decodeComponent(s string) (string, error) {
	return url.PathUnescape(s)
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
