package cookie

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

const (
	attrPath    = "path"
	attrDomain  = "domain"
	attrExpires = "expires"
	attrSecure  = "secure"

	// ExpiredDate is the expiry forced by Remove.
	ExpiredDate = "Thu, 01 Jan 1970 00:00:01 GMT"

	// defaultSuffix is appended when Set receives no attributes.
	defaultSuffix = "; path=/"
)

// Attribute is a passthrough cookie attribute such as max-age or samesite.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is the set of cookie attributes written with a value.
// Empty strings mean the attribute is not sent.
type Attributes struct {
	Path    string
	Domain  string
	Expires string
	Secure  bool
	Extra   []Attribute
}

// Clone returns a deep copy of a.
func (a Attributes) Clone() Attributes {
	a.Extra = slices.Clone(a.Extra)
	return a
}

// IsZero reports whether no attribute is set.
func (a Attributes) IsZero() bool {
	return a.Path == "" && a.Domain == "" && a.Expires == "" && !a.Secure && len(a.Extra) == 0
}

// Validate checks attributes that were built directly rather than parsed.
func (a Attributes) Validate() error {
	for _, x := range a.Extra {
		switch strings.ToLower(x.Name) {
		case "":
			return invalidArgument("attribute", "string")
		case attrPath, attrDomain, attrExpires:
			return invalidArgument(x.Name, "field")
		case attrSecure:
			return invalidArgument(x.Name, "boolean")
		}
		if strings.ContainsAny(x.Name, "=;") {
			return invalidArgument(x.Name, "token")
		}
	}
	return nil
}

// serialize renders the attributes as ";key=value" pairs with a bare
// ";secure" flag, recognized attributes first.
func (a Attributes) serialize() string {
	var b strings.Builder
	write := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteByte(';')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value)
	}

	write(attrPath, a.Path)
	write(attrDomain, a.Domain)
	write(attrExpires, a.Expires)
	if a.Secure {
		b.WriteString(";" + attrSecure)
	}
	for _, x := range a.Extra {
		b.WriteByte(';')
		b.WriteString(x.Name)
		b.WriteByte('=')
		b.WriteString(x.Value)
	}
	return b.String()
}

// ParseAttributes converts a dynamic attribute mapping into Attributes.
//
// Accepted inputs are nil, Attributes, *Attributes, map[string]string and
// map[string]any. Lists and any other shape fail with ErrInvalidArgument.
// "secure" must be true or "true"; every other value must be a string.
// Unknown keys become Extra entries sorted by key. A nil input returns nil.
func ParseAttributes(v any) (*Attributes, error) {
	switch m := v.(type) {
	case nil:
		return nil, nil
	case *Attributes:
		if m == nil {
			return nil, nil
		}
		return validated(m.Clone())
	case Attributes:
		return validated(m.Clone())
	case map[string]string:
		generic := make(map[string]any, len(m))
		for k, val := range m {
			generic[k] = val
		}
		return attributesFromMap(generic)
	case map[string]any:
		return attributesFromMap(m)
	default:
		return nil, invalidArgument("attributes", "object")
	}
}

func validated(a Attributes) (*Attributes, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

func attributesFromMap(m map[string]any) (*Attributes, error) {
	attrs := &Attributes{}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		raw := m[key]

		if key == attrSecure {
			if raw == true || raw == "true" {
				attrs.Secure = true
				continue
			}
			return nil, invalidArgument(key, "boolean")
		}

		value, ok := raw.(string)
		if !ok {
			return nil, invalidArgument(key, "string")
		}

		switch key {
		case attrPath:
			attrs.Path = value
		case attrDomain:
			attrs.Domain = value
		case attrExpires:
			attrs.Expires = value
		default:
			attrs.Extra = append(attrs.Extra, Attribute{Name: key, Value: value})
		}
	}

	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	return attrs, nil
}

// UnmarshalJSON decodes a JSON object through ParseAttributes.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	parsed, err := ParseAttributes(raw)
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}

// MarshalJSON encodes the attributes as the object ParseAttributes accepts.
func (a Attributes) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 4+len(a.Extra))
	if a.Path != "" {
		m[attrPath] = a.Path
	}
	if a.Domain != "" {
		m[attrDomain] = a.Domain
	}
	if a.Expires != "" {
		m[attrExpires] = a.Expires
	}
	if a.Secure {
		m[attrSecure] = true
	}
	for _, x := range a.Extra {
		m[x.Name] = x.Value
	}
	return json.Marshal(m)
}
