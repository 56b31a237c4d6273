package rex

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/wuxler/rex/pkg/rex/charclass"
)

// Predefined classes and expressions.
const (
	// DoNotMatch does not match any input sequence.
	DoNotMatch = `$a`

	// AnyCharacter matches any character, excluding line terminators unless
	// ConfigDotall is set.
	AnyCharacter = `.`

	// Digit matches any Arabic numeral.
	Digit = `[0-9]`

	// Letter matches any Unicode letter.
	Letter = `\p{L}`

	// Punctuation matches any Unicode punctuation.
	Punctuation = `\p{IsPunctuation}`

	// Whitespace matches any Unicode whitespace character, as well as
	// ZERO WIDTH SPACE, WORD JOINER and ZERO WIDTH NO-BREAK SPACE.
	Whitespace = "[\\p{IsWhite_Space}\u200B\u2060\uFEFF]"

	// Newline matches any Unicode linebreak sequence, capturing a Windows
	// "\r\n" break as a single unit. It is not a character class and cannot
	// participate in class set operations; see VerticalWhitespace for that.
	Newline = `\R`

	// VerticalWhitespace matches any Unicode vertical whitespace character.
	VerticalWhitespace = `\v`

	// HorizontalWhitespace matches Whitespace minus VerticalWhitespace.
	HorizontalWhitespace = `[` + Whitespace + `&&[^` + VerticalWhitespace + `]]`
)

// ClassFromName matches the built-in named character class. There is no
// single list of valid names; they are defined by the target engine.
func ClassFromName(name string) string { return `\p{` + name + `}` }

// ClassFromUnicodeProperty matches any character possessing the Unicode
// binary property, e.g. "Alphabetic" or "White_Space".
func ClassFromUnicodeProperty(name string) string { return ClassFromName("Is" + name) }

// ClassFromUnicodeScript matches any character of the Unicode script.
func ClassFromUnicodeScript(name string) string { return ClassFromName("Is" + name) }

// ClassFromUnicodeBlock matches any character in the Unicode block.
func ClassFromUnicodeBlock(name string) string { return ClassFromName("In" + name) }

// ClassFromUnicodeCategory matches any character in the Unicode general
// category, e.g. "Lu" or "P".
func ClassFromUnicodeCategory(name string) string { return ClassFromName(name) }

// Charclass matches any of the specified characters, escaping any that
// would otherwise be interpreted as class metacharacters.
func Charclass(chars ...rune) string {
	members := lo.Map(chars, func(r rune, _ int) string {
		return charclass.EscapeRune(r)
	})
	return "[" + strings.Join(members, "") + "]"
}

// CharclassRange matches any character between from and toInclusive.
func CharclassRange(from, toInclusive rune) string {
	return "[" + charclass.EscapeRune(from) + "-" + charclass.EscapeRune(toInclusive) + "]"
}

// CharclassUnion matches any character contained in at least one of the
// given classes.
func CharclassUnion(classes ...string) string {
	return "[" + strings.Join(classes, "") + "]"
}

// CharclassIntersection matches any character contained in both classes.
func CharclassIntersection(class1, class2 string) string {
	return "[" + class1 + "&&[" + class2 + "]]"
}

// CharclassSubtraction matches the characters of class1 that are not in
// class2.
func CharclassSubtraction(class1, class2 string, opts ...charclass.Option) (string, error) {
	complement, err := Complement(class2, opts...)
	if err != nil {
		return "", err
	}
	return CharclassIntersection(class1, complement), nil
}

// Complement matches any character that is not in the given class.
//
// Unlike the dialect's `^` metacharacter, which negates only one whole
// bracket expression, Complement takes the complement of the entire input
// class, distributing the negation across nested unions and intersections
// with De Morgan's laws. The input must be a well-formed class expression
// built by the functions of this package; a structurally invalid input
// yields errdefs.ErrMalformedExpression and syntax outside the modeled
// grammar yields errdefs.ErrUnsupportedConstruct.
func Complement(class string, opts ...charclass.Option) (string, error) {
	return charclass.ComplementExpr(class, opts...)
}

// Not is an alias of Complement.
func Not(class string, opts ...charclass.Option) (string, error) {
	return Complement(class, opts...)
}

// MustComplement is like Complement but panics on error. It simplifies the
// declaration of package-level pattern variables built from constant
// expressions.
func MustComplement(class string, opts ...charclass.Option) string {
	out, err := Complement(class, opts...)
	if err != nil {
		panic(fmt.Sprintf("rex: Complement(%q): %v", class, err))
	}
	return out
}
