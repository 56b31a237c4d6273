package charclass

import (
	"strings"
	"unicode"

	"github.com/wuxler/rex/pkg/errdefs"
)

// Matches implements Node.
func (n Literal) Matches(r rune) (bool, error) { return r == rune(n), nil }

// Matches implements Node.
func (n Range) Matches(r rune) (bool, error) { return n.Lo <= r && r <= n.Hi, nil }

// Matches implements Node.
func (n Union) Matches(r rune) (bool, error) {
	for _, c := range n {
		ok, err := c.Matches(r)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Matches implements Node.
func (n Intersection) Matches(r rune) (bool, error) {
	left, err := n.Left.Matches(r)
	if err != nil || !left {
		return false, err
	}
	return n.Right.Matches(r)
}

// Matches implements Node.
func (n Negated) Matches(r rune) (bool, error) {
	ok, err := n.Inner.Matches(r)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Matches implements Node. Shorthand escapes carry their own semantics, any
// other name is resolved against the Unicode category, script and property
// tables; names that resolve nowhere report ErrUnsupportedConstruct.
func (n Named) Matches(r rune) (bool, error) {
	if n.Shorthand {
		return matchShorthand(n.Name[0], r)
	}
	ok, err := matchUnicodeName(n.Name, r)
	if err != nil {
		return false, err
	}
	if n.Negate {
		return !ok, nil
	}
	return ok, nil
}

func matchShorthand(name byte, r rune) (bool, error) {
	switch name {
	case 'd':
		return unicode.IsDigit(r), nil
	case 'D':
		return !unicode.IsDigit(r), nil
	case 's':
		return unicode.IsSpace(r), nil
	case 'S':
		return !unicode.IsSpace(r), nil
	case 'w':
		return isWord(r), nil
	case 'W':
		return !isWord(r), nil
	case 'v':
		return isVerticalSpace(r), nil
	case 'V':
		return !isVerticalSpace(r), nil
	case 'h':
		return isHorizontalSpace(r), nil
	case 'H':
		return !isHorizontalSpace(r), nil
	}
	return false, errdefs.Newf(errdefs.ErrUnsupportedConstruct,
		"shorthand class %q cannot be evaluated", `\`+string(name))
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isVerticalSpace(r rune) bool {
	switch r {
	case '\n', '\x0b', '\f', '\r', '', ' ', ' ':
		return true
	}
	return false
}

func isHorizontalSpace(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}

// binaryPropertyAliases maps the dialect's Unicode binary property names
// that have no direct entry in the unicode package tables onto equivalent
// range tables.
var binaryPropertyAliases = map[string]*unicode.RangeTable{
	"Alphabetic":  unicode.L,
	"Letter":      unicode.L,
	"Lowercase":   unicode.Ll,
	"Uppercase":   unicode.Lu,
	"Titlecase":   unicode.Lt,
	"Punctuation": unicode.P,
	"Control":     unicode.Cc,
	"Digit":       unicode.Nd,
}

func matchUnicodeName(name string, r rune) (bool, error) {
	if table := lookupRangeTable(name); table != nil {
		return unicode.Is(table, r), nil
	}
	// Property, script and some category references carry an "Is" prefix in
	// this dialect, e.g. `\p{IsWhite_Space}` or `\p{IsGreek}`.
	if trimmed, ok := strings.CutPrefix(name, "Is"); ok {
		if table := lookupRangeTable(trimmed); table != nil {
			return unicode.Is(table, r), nil
		}
	}
	return false, errdefs.Newf(errdefs.ErrUnsupportedConstruct,
		"named class %q cannot be evaluated", name)
}

func lookupRangeTable(name string) *unicode.RangeTable {
	if table, ok := unicode.Categories[name]; ok {
		return table
	}
	if table, ok := unicode.Scripts[name]; ok {
		return table
	}
	if table, ok := unicode.Properties[name]; ok {
		return table
	}
	if table, ok := binaryPropertyAliases[name]; ok {
		return table
	}
	return nil
}
