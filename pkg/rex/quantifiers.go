package rex

import "strconv"

// Optional wraps the expression in a non-capturing group and matches it
// once or not at all.
func Optional(res ...string) string { return NoncapturingGroup(res...) + `?` }

// ZeroOrMore wraps the expression in a non-capturing group and matches it
// zero or more times.
func ZeroOrMore(res ...string) string { return NoncapturingGroup(res...) + `*` }

// OneOrMore wraps the expression in a non-capturing group and matches it
// one or more times.
func OneOrMore(res ...string) string { return NoncapturingGroup(res...) + `+` }

// Exactly matches the expression exactly n times.
func Exactly(n int, res ...string) string {
	return NoncapturingGroup(res...) + `{` + strconv.Itoa(n) + `}`
}

// AtLeast matches the expression at least n times.
func AtLeast(n int, res ...string) string {
	return NoncapturingGroup(res...) + `{` + strconv.Itoa(n) + `,}`
}

// Between matches the expression at least min and at most maxInclusive
// times.
func Between(min, maxInclusive int, res ...string) string {
	return NoncapturingGroup(res...) + `{` + strconv.Itoa(min) + `,` + strconv.Itoa(maxInclusive) + `}`
}

// Reluctantly modifies a quantifier to be reluctant: it will not try to
// match the input if a different way of matching exists. The input must be
// the result of one of the quantifier functions.
func Reluctantly(quantified string) string { return quantified + `?` }

// Possessively modifies a quantifier to be possessive: it will match the
// input and never backtrack to attempt a different way of matching. The
// input must be the result of one of the quantifier functions.
func Possessively(quantified string) string { return quantified + `+` }
