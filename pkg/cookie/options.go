package cookie

import "log/slog"

type options struct {
	logger   *slog.Logger
	defaults *Attributes
}

type Option func(*options)

// WithLogger sets the logger used for write and rejection events.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDefaults sets the attributes used when Set or Remove get nil.
func WithDefaults(attrs Attributes) Option {
	return func(o *options) {
		c := attrs.Clone()
		o.defaults = &c
	}
}

func applyOptions(opts []Option) options {
	result := options{
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(&result)
	}

	return result
}
