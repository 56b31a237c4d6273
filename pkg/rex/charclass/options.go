package charclass

// Sentinel is the reserved code point spliced into negated classes whose
// body opens with a nested bracket expression. It is the highest private-use
// code point of the dialect and is assumed never to occur in realistic
// input, so excluding it from a complemented set is harmless.
//
// The splice works around a defect in some engine versions where a
// `[^[...]]` shaped class silently fails to negate. Engines without the
// defect accept the sentinel as a redundant member; targets known to be
// fixed can drop it with WithSentinel(false).
const Sentinel rune = '\U0010FFFD'

const sentinelToken = `\x{10fffd}`

func makeOptions(opts ...Option) options {
	opt := options{
		sentinel: true,
	}
	for _, o := range opts {
		o(&opt)
	}
	return opt
}

type options struct {
	sentinel bool
}

// Option is a functional option for the complement transformation.
type Option func(*options)

// WithSentinel controls whether Sentinel is added to the outermost negated
// set when its body opens with a nested bracket expression. Enabled by
// default; the workaround is dialect-version-dependent and can be switched
// off for engines whose nested negation is known to be correct.
func WithSentinel(enabled bool) Option {
	return func(o *options) {
		o.sentinel = enabled
	}
}
