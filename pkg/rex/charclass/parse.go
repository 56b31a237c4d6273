package charclass

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/wuxler/rex/pkg/errdefs"
)

// Parse reads a character-class expression produced by the companion
// formatters and returns its expression tree. An input without an outer
// bracket pair is treated as the body of one, so a bare named-class token
// like `\p{L}` or a literal run like `abc` is accepted.
//
// Parse validates structure only: unbalanced brackets or a dangling `&&`
// operator yield errdefs.ErrMalformedExpression, syntax the tree does not
// model yields errdefs.ErrUnsupportedConstruct. Whether a named class
// reference actually exists is left to the target engine.
func Parse(expr string) (Node, error) {
	if expr == "" {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression, "empty character class expression")
	}
	p := &parser{input: []rune(expr)}

	var n Node
	var err error
	if p.peek() == '[' {
		n, err = p.parseClass()
	} else {
		n, err = p.parseBody(false)
	}
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
			"unexpected %q at offset %d", string(p.peek()), p.pos)
	}
	return n, nil
}

type parser struct {
	input []rune
	pos   int
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) peekAt(offset int) rune {
	if p.pos+offset >= len(p.input) {
		return 0
	}
	return p.input[p.pos+offset]
}

// parseClass consumes a bracketed class, including the optional leading
// negation marker and the closing bracket.
func (p *parser) parseClass() (Node, error) {
	open := p.pos
	p.pos++ // consume '['
	negated := false
	if p.peek() == '^' {
		negated = true
		p.pos++
	}
	inner, err := p.parseBody(true)
	if err != nil {
		return nil, err
	}
	if p.eof() || p.peek() != ']' {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
			"bracket opened at offset %d is never closed", open)
	}
	p.pos++ // consume ']'
	if negated {
		return Negated{Inner: inner}, nil
	}
	return inner, nil
}

// parseBody consumes class members up to the closing bracket, or to the end
// of the input when the expression was given without its outer brackets.
func (p *parser) parseBody(bracketed bool) (Node, error) {
	var members []Node
	for {
		if p.eof() {
			if bracketed {
				return nil, errdefs.Newf(errdefs.ErrMalformedExpression, "missing closing bracket")
			}
			break
		}
		c := p.peek()
		if c == ']' {
			if !bracketed {
				return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
					"unmatched closing bracket at offset %d", p.pos)
			}
			break
		}
		switch {
		case c == '&' && p.peekAt(1) == '&':
			if len(members) == 0 {
				return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
					"intersection operator at offset %d has no left operand", p.pos)
			}
			p.pos += 2
			if p.eof() || p.peek() == ']' {
				return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
					"intersection operator has no right operand")
			}
			right, err := p.parseBody(bracketed)
			if err != nil {
				return nil, err
			}
			return Intersection{Left: collapse(members), Right: right}, nil
		case c == '[' && p.peekAt(1) == ':':
			return nil, errdefs.Newf(errdefs.ErrUnsupportedConstruct,
				"POSIX class syntax at offset %d is not modeled", p.pos)
		case c == '[':
			nested, err := p.parseClass()
			if err != nil {
				return nil, err
			}
			members = append(members, nested)
		default:
			m, err := p.parseMember()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
	}
	if len(members) == 0 {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression, "empty character class")
	}
	return collapse(members), nil
}

// parseMember consumes a literal or escape, extending it into a Range when a
// `-` with a literal right endpoint follows.
func (p *parser) parseMember() (Node, error) {
	n, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	lo, isLiteral := n.(Literal)
	if !isLiteral || p.peek() != '-' {
		return n, nil
	}
	// A trailing `-` before the closing bracket is a plain member.
	if next := p.peekAt(1); next == ']' || next == 0 {
		return n, nil
	}
	dash := p.pos
	p.pos++ // consume '-'
	right, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	hi, ok := right.(Literal)
	if !ok {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
			"range at offset %d must end in a single code point", dash)
	}
	if hi < lo {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
			"range at offset %d runs backwards", dash)
	}
	return Range{Lo: rune(lo), Hi: rune(hi)}, nil
}

// parseAtom consumes one literal code point, shorthand escape or named
// class reference.
func (p *parser) parseAtom() (Node, error) {
	c := p.peek()
	if c != '\\' {
		p.pos++
		return Literal(c), nil
	}
	start := p.pos
	p.pos++ // consume '\'
	if p.eof() {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression, "trailing backslash")
	}
	e := p.peek()
	p.pos++
	switch e {
	case 'n':
		return Literal('\n'), nil
	case 'r':
		return Literal('\r'), nil
	case 't':
		return Literal('\t'), nil
	case 'f':
		return Literal('\f'), nil
	case 'a':
		return Literal('\a'), nil
	case 'e':
		return Literal('\x1b'), nil
	case 'd', 'D', 's', 'S', 'w', 'W', 'v', 'V', 'h', 'H':
		return Named{Name: string(e), Shorthand: true}, nil
	case 'p', 'P':
		name, err := p.parseBracedName(start)
		if err != nil {
			return nil, err
		}
		return Named{Name: name, Negate: e == 'P'}, nil
	case 'u':
		return p.parseHexRune(start, 4)
	case 'x':
		if p.peek() == '{' {
			return p.parseBracedHexRune(start)
		}
		return p.parseHexRune(start, 2)
	}
	if !unicode.IsLetter(e) && !unicode.IsDigit(e) {
		// Escaped metacharacter appearing as data.
		return Literal(e), nil
	}
	return nil, errdefs.Newf(errdefs.ErrUnsupportedConstruct,
		"escape %q at offset %d is not modeled", `\`+string(e), start)
}

func (p *parser) parseBracedName(start int) (string, error) {
	if p.peek() != '{' {
		return "", errdefs.Newf(errdefs.ErrMalformedExpression,
			"named class at offset %d is missing braces", start)
	}
	p.pos++
	end := p.pos
	for end < len(p.input) && p.input[end] != '}' {
		end++
	}
	if end >= len(p.input) {
		return "", errdefs.Newf(errdefs.ErrMalformedExpression,
			"named class at offset %d is never closed", start)
	}
	name := string(p.input[p.pos:end])
	p.pos = end + 1
	if name == "" {
		return "", errdefs.Newf(errdefs.ErrMalformedExpression,
			"named class at offset %d has an empty name", start)
	}
	return name, nil
}

func (p *parser) parseHexRune(start, digits int) (Node, error) {
	if p.pos+digits > len(p.input) {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
			"truncated code point escape at offset %d", start)
	}
	text := string(p.input[p.pos : p.pos+digits])
	v, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
			"invalid code point escape %q at offset %d", text, start)
	}
	p.pos += digits
	return Literal(rune(v)), nil
}

func (p *parser) parseBracedHexRune(start int) (Node, error) {
	p.pos++ // consume '{'
	end := p.pos
	for end < len(p.input) && p.input[end] != '}' {
		end++
	}
	if end >= len(p.input) {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
			"code point escape at offset %d is never closed", start)
	}
	text := string(p.input[p.pos:end])
	v, err := strconv.ParseUint(strings.TrimSpace(text), 16, 32)
	if err != nil || v > unicode.MaxRune {
		return nil, errdefs.Newf(errdefs.ErrMalformedExpression,
			"invalid code point escape %q at offset %d", text, start)
	}
	p.pos = end + 1
	return Literal(rune(v)), nil
}

// collapse unwraps a single-member union.
func collapse(members []Node) Node {
	if len(members) == 1 {
		return members[0]
	}
	return Union(members)
}
