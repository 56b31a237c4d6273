// Package rex builds regular-expression pattern strings from named,
// composable functions, so that the resulting pattern text is easier to
// read and review than hand-written regex syntax.
//
// No engine is implemented here: every function is a context-free string
// formatter whose result is concatenated into a larger pattern and handed
// to a general-purpose engine following the common Perl/Java-style dialect
// (capturing and named groups, lookaround, backreferences, character-class
// set operations, embedded flags, Unicode property classes). Go's built-in
// regexp package understands a large subset of that dialect; lookaround and
// class intersections need an engine such as dlclark/regexp2.
//
// The one non-trivial operation is Complement, which negates a composite
// character class by distributing the negation across nested unions and
// intersections. Its implementation lives in the charclass subpackage.
package rex

import (
	"fmt"
	"regexp"
	"strings"
)

// Text matches s literally, escaping any characters that would otherwise be
// interpreted as metacharacters.
func Text(s string) string { return regexp.QuoteMeta(s) }

// Codepoint matches the single Unicode code point r.
func Codepoint(r rune) string { return fmt.Sprintf(`\x{%x}`, r) }

// Sequence matches the given expressions in order. It is plain string
// concatenation, named for symmetry with the other combinators.
func Sequence(res ...string) string { return strings.Join(res, "") }

// Either matches any one of the given expressions.
func Either(res ...string) string { return NoncapturingGroup(strings.Join(res, "|")) }

// EitherOr matches either or both of the two expressions, preferring both.
func EitherOr(a, b string) string { return Either(Sequence(a, b), a, b) }

var namedGroupPattern = regexp.MustCompile(Sequence(
	Text("(?<"),
	OneOrMore(Either(Letter, Digit)),
	Text(">"),
))

// StripNamedGroups converts named capturing groups into plain capturing
// groups. Useful when an expression containing named groups is embedded in
// another expression where name conflicts are possible.
func StripNamedGroups(re string) string {
	return namedGroupPattern.ReplaceAllString(re, "(")
}
