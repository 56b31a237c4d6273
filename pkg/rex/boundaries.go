package rex

// Boundary matchers.
const (
	// StartBoundary matches the start of a line when ConfigMultiline is
	// set, otherwise the start of the input.
	StartBoundary = `^`

	// EndBoundary matches the end of a line when ConfigMultiline is set,
	// otherwise the end of the input.
	EndBoundary = `$`

	// WordBoundary matches a word boundary.
	WordBoundary = `\b`

	// NonWordBoundary matches a non-word boundary.
	NonWordBoundary = `\B`

	// InputStartBoundary matches the beginning of the input.
	InputStartBoundary = `\A`

	// PreviousMatchBoundary matches the end of the previous match.
	PreviousMatchBoundary = `\G`

	// InputEndBoundarySansTerminator matches the end of the input but for a
	// final line terminator, if any.
	InputEndBoundarySansTerminator = `\Z`

	// InputEndBoundary matches the end of the input.
	InputEndBoundary = `\z`
)
