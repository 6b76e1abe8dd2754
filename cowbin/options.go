package cowbin

// DefaultMaxLength is the default limit for the payload of a single frame.
const DefaultMaxLength = 64 << 20

type options struct {
	prefix    LengthPrefix
	maxLength uint64
}

type Option func(*options)

// WithPrefix selects the length prefix encoding. Defaults to Uvarint.
func WithPrefix(prefix LengthPrefix) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithMaxLength limits the payload size of a frame. Larger frames fail with ErrTooLarge.
func WithMaxLength(maxLength uint64) Option {
	return func(o *options) {
		o.maxLength = maxLength
	}
}

func newOptions(opts []Option) options {
	o := options{prefix: Uvarint, maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
