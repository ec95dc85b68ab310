package paywallui

// Severity expresses how a document-level violation is reported.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn (reported through Options.IssueSink) or Error.
}

// Options bundles document loading options.
type Options struct {
	Strictness Strictness
	// MaxDepth bounds object/array nesting; 0 disables the check.
	MaxDepth int
	// MaxBytes bounds the input size; 0 disables the check.
	MaxBytes int64
	// IssueSink receives issues reported with Warn severity.
	IssueSink func(Issue)
}

// DefaultOptions is used when callers pass no options.
func DefaultOptions() Options {
	return Options{
		Strictness: Strictness{OnDuplicateKey: Error},
		MaxDepth:   64,
	}
}

func pickOptions(opts []Options) Options {
	if len(opts) == 0 {
		return DefaultOptions()
	}
	return opts[0]
}
