package rex

import "strconv"

// Group wraps the expression in parentheses, affecting evaluation order and
// capturing the matched text by index. Tracking indexes is error prone;
// prefer NamedGroup when the capture is wanted.
func Group(res ...string) string { return `(` + Sequence(res...) + `)` }

// NamedGroup wraps the expression in parentheses and captures the matched
// text under the given name.
func NamedGroup(name string, res ...string) string {
	return `(?<` + name + `>` + Sequence(res...) + `)`
}

// NoncapturingGroup wraps the expression in parentheses without capturing
// text and without counting towards the group count.
func NoncapturingGroup(res ...string) string { return `(?:` + Sequence(res...) + `)` }

// Backreference matches whatever the i-th capturing group matched.
func Backreference(i int) string { return `\` + strconv.Itoa(i) }

// FollowedBy is a zero-width positive lookahead: it confirms that the
// expression appears next in the input without consuming it.
func FollowedBy(res ...string) string { return `(?=` + Sequence(res...) + `)` }

// NotFollowedBy is a zero-width negative lookahead: it confirms that the
// expression does not appear next in the input.
func NotFollowedBy(res ...string) string { return `(?!` + Sequence(res...) + `)` }

// PrecededBy is a zero-width positive lookbehind: it confirms that the
// expression appears immediately before the current position.
func PrecededBy(res ...string) string { return `(?<=` + Sequence(res...) + `)` }

// NotPrecededBy is a zero-width negative lookbehind: it confirms that the
// expression does not appear immediately before the current position.
func NotPrecededBy(res ...string) string { return `(?<!` + Sequence(res...) + `)` }
