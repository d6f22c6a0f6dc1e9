package conv

import (
	"log/slog"
	"time"

	ftime "github.com/viant/schemaconv/format/time"
)

// Options represents converter options
type Options struct {
	// StructByName aligns struct fields by name instead of position
	StructByName bool
	// UnionByPosition matches union alternatives by tag ordinal instead of name
	UnionByPosition bool
	// Normalize builds full converters even for equal source and destination types
	Normalize bool
	// TimeLayout is a go layout tried first when parsing date and timestamp text
	TimeLayout string
	// DateFormat is an ISO date format (i.e. YYYY-MM-DD), used when TimeLayout is empty
	DateFormat string
	// Location is used for text without zone information
	Location *time.Location
	Logger   *slog.Logger
}

// Option represents converter option
type Option func(o *Options)

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		Location: time.UTC,
		Logger:   slog.Default(),
	}
}

// WithOptions replaces options with supplied ones
func WithOptions(options Options) Option {
	return func(o *Options) {
		*o = options
	}
}

// WithStructByName sets struct by name alignment
func WithStructByName(flag bool) Option {
	return func(o *Options) {
		o.StructByName = flag
	}
}

// WithUnionByPosition sets union alternative matching by tag ordinal
func WithUnionByPosition(flag bool) Option {
	return func(o *Options) {
		o.UnionByPosition = flag
	}
}

// WithNormalize sets normalize option
func WithNormalize(flag bool) Option {
	return func(o *Options) {
		o.Normalize = flag
	}
}

// WithTimeLayout sets time parsing layout
func WithTimeLayout(layout string) Option {
	return func(o *Options) {
		o.TimeLayout = layout
	}
}

// WithDateFormat sets ISO date format
func WithDateFormat(format string) Option {
	return func(o *Options) {
		o.DateFormat = format
	}
}

// WithLocation sets time location
func WithLocation(loc *time.Location) Option {
	return func(o *Options) {
		o.Location = loc
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func newOptions(opts []Option) *Options {
	ret := DefaultOptions()
	for _, opt := range opts {
		opt(&ret)
	}
	if ret.Location == nil {
		ret.Location = time.UTC
	}
	if ret.Logger == nil {
		ret.Logger = slog.Default()
	}
	return &ret
}

func (o *Options) parseTime(text string) (time.Time, bool) {
	if layout := ftime.LayoutOf(o.TimeLayout, o.DateFormat); layout != "" {
		if ts, err := ftime.ParseInLocation(layout, text, o.Location); err == nil {
			return ts, true
		}
	}
	ts, err := ftime.ParseInLocation("", text, o.Location)
	return ts, err == nil
}
