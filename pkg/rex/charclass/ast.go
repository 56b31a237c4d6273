package charclass

import (
	"fmt"
	"strings"
)

// Node is a character-class expression: a set of code points built from
// literals, ranges, named classes, unions, intersections and negations.
//
// Nodes are immutable values. String renders the node back into the
// dialect's bracket syntax, Matches evaluates set membership directly.
type Node interface {
	fmt.Stringer

	// Matches reports whether the class contains the code point r.
	// It returns errdefs.ErrUnsupportedConstruct when the class refers
	// to a name that cannot be resolved against the Unicode tables.
	Matches(r rune) (bool, error)
}

// Literal is a single code point.
type Literal rune

// Range matches any code point between Lo and Hi inclusive.
type Range struct {
	Lo, Hi rune
}

// Named is a reference to a predefined class: a one-letter shorthand escape
// such as `\d` or `\v`, or a Unicode property, script, block or category
// reference such as `\p{L}`. Shorthand marks the escape-letter form, which
// serializes without braces; Negate marks the upper-case `\P{...}` form.
// Single-letter category references like `\p{L}` are not shorthands.
type Named struct {
	Name      string
	Shorthand bool
	Negate    bool
}

// Union matches any code point contained in at least one child.
type Union []Node

// Intersection matches the code points contained in both operands.
type Intersection struct {
	Left, Right Node
}

// Negated matches exactly the code points Inner does not.
type Negated struct {
	Inner Node
}

func (n Literal) String() string      { return serializer{}.class(n) }
func (n Range) String() string        { return serializer{}.class(n) }
func (n Named) String() string        { return serializer{}.class(n) }
func (n Union) String() string        { return serializer{}.class(n) }
func (n Intersection) String() string { return serializer{}.class(n) }
func (n Negated) String() string      { return serializer{}.class(n) }

// serializer renders nodes into the target dialect syntax. When sentinel is
// set, a reserved private-use code point is spliced into every negated class
// whose body opens with a nested bracket expression. Some engine versions
// fail to negate `[^[...]]` correctly unless the negated set also contains a
// plain member; the sentinel is that member. See WithSentinel.
type serializer struct {
	sentinel bool
}

// class renders n as a standalone class expression, valid anywhere a
// character class is accepted.
func (s serializer) class(n Node) string {
	switch n.(type) {
	case Union, Intersection, Negated, Named:
		return s.member(n)
	default:
		return "[" + s.member(n) + "]"
	}
}

// member renders n as it appears inside an enclosing bracket expression.
func (s serializer) member(n Node) string {
	switch v := n.(type) {
	case Literal:
		return EscapeRune(rune(v))
	case Range:
		return EscapeRune(v.Lo) + "-" + EscapeRune(v.Hi)
	case Named:
		return v.token()
	case Union:
		var b strings.Builder
		b.WriteByte('[')
		for _, c := range v {
			b.WriteString(s.member(c))
		}
		b.WriteByte(']')
		return b.String()
	case Intersection:
		return "[" + s.member(v.Left) + "&&" + s.class(v.Right) + "]"
	case Negated:
		body := s.negatedBody(v.Inner)
		if s.sentinel && strings.HasPrefix(body, "[") {
			body = sentinelToken + body
		}
		return "[^" + body + "]"
	}
	panic(fmt.Sprintf("charclass: unknown node type %T", n))
}

// negatedBody renders the contents of a negated class. A union spreads its
// members directly behind the `^` marker so that `[^abc]` comes out instead
// of `[^[abc]]`.
func (s serializer) negatedBody(n Node) string {
	if u, ok := n.(Union); ok {
		var b strings.Builder
		for _, c := range u {
			b.WriteString(s.member(c))
		}
		return b.String()
	}
	return s.member(n)
}

func (n Named) token() string {
	if n.Shorthand {
		return `\` + n.Name
	}
	if n.Negate {
		return `\P{` + n.Name + `}`
	}
	return `\p{` + n.Name + `}`
}

// EscapeRune escapes the characters that carry structural meaning inside a
// bracket expression. Control characters are emitted as `\x{..}` so the
// produced pattern stays printable.
func EscapeRune(r rune) string {
	switch r {
	case '-', '^', '[', ']', '\\', '&':
		return `\` + string(r)
	}
	if r < 0x20 || r == 0x7f {
		return fmt.Sprintf(`\x{%x}`, r)
	}
	return string(r)
}
