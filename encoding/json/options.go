package json

type (
	// Options represents rendering options
	Options struct {
		TimeLayout string
	}

	// Option represents rendering option
	Option func(o *Options)
)

// WithTimeLayout sets time rendering layout
func WithTimeLayout(layout string) Option {
	return func(o *Options) {
		o.TimeLayout = layout
	}
}

func newOptions(opts []Option) *Options {
	ret := &Options{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
