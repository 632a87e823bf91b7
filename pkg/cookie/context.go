package cookie

import "context"

type accessorContextKey struct{}

// WithContext adds an accessor to the context
func WithContext(ctx context.Context, a *Accessor) context.Context {
	return context.WithValue(ctx, accessorContextKey{}, a)
}

// FromContext retrieves an accessor from the context
func FromContext(ctx context.Context) (*Accessor, bool) {
	if ctx == nil {
		return nil, false
	}
	a, ok := ctx.Value(accessorContextKey{}).(*Accessor)
	return a, ok && a != nil
}

// MustFromContext retrieves an accessor from the context or panics
func MustFromContext(ctx context.Context) *Accessor {
	a, ok := FromContext(ctx)
	if !ok {
		panic("cookie: accessor not found in context")
	}
	return a
}
