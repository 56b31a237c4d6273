package rex

// Embedded flag expressions. Each constant is placed at the start of a
// pattern to switch the corresponding engine mode on for the rest of it.
const (
	// ConfigStd turns on multiline mode, Unicode-aware case folding and the
	// Unicode version of the predefined character classes. A sensible
	// default prefix for new patterns.
	ConfigStd = `(?mU)`

	// ConfigUnixLines enables Unix lines mode, where only '\n' is
	// recognized as a line terminator.
	ConfigUnixLines = `(?d)`

	// ConfigCaseInsensitive enables case-insensitive matching. Only
	// US-ASCII characters are folded unless ConfigUnicodeCase is also set.
	ConfigCaseInsensitive = `(?i)`

	// ConfigComments permits whitespace and '#' line comments in the
	// pattern.
	ConfigComments = `(?x)`

	// ConfigMultiline makes StartBoundary and EndBoundary match at line
	// terminators instead of only at the start and end of the input.
	ConfigMultiline = `(?m)`

	// ConfigDotall makes AnyCharacter match line terminators too.
	ConfigDotall = `(?s)`

	// ConfigUnicodeCase enables Unicode-aware case folding for
	// case-insensitive matching.
	ConfigUnicodeCase = `(?u)`

	// ConfigUnicodeCharclasses switches the engine's predefined and POSIX
	// character classes to their Unicode definitions. Implies
	// ConfigUnicodeCase.
	ConfigUnicodeCharclasses = `(?U)`
)
