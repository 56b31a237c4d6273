// Package charclass models character-class expressions of the Perl/Java
// regular-expression dialect as a small expression tree and implements the
// set complement over them.
//
// The dialect has a single native negation operator which applies to one
// whole bracket expression; there is no way to negate an inner union or
// intersection sub-term in place. Naively prefixing `^` therefore produces
// wrong results as soon as unions and intersections mix. Complement instead
// rewrites the tree with De Morgan's laws, pushing the negation down to the
// leaves and swapping the set operators on the way:
//
//	¬(A ∪ B) = ¬A ∩ ¬B
//	¬(A ∩ B) = ¬A ∪ ¬B
//	¬¬A      = A
//
// Expressions enter and leave the package as strings, the representation the
// companion builder functions in package rex work with. Parse turns such a
// string into a Node tree, ComplementExpr runs the whole parse, rewrite and
// serialize pipeline.
package charclass

// Complement returns a node matching exactly the code points n does not
// match. The input is never modified.
func Complement(n Node) Node {
	switch v := n.(type) {
	case Negated:
		return v.Inner
	case Intersection:
		return Union{Complement(v.Left), Complement(v.Right)}
	case Union:
		// Plain members stay grouped under one negation marker, so the
		// common [abc] case still complements to [^abc]. Composite members
		// are complemented recursively and joined back by intersection.
		var leaves []Node
		var terms []Node
		for _, child := range v {
			switch child.(type) {
			case Union, Intersection, Negated:
				terms = append(terms, Complement(child))
			default:
				leaves = append(leaves, child)
			}
		}
		if len(leaves) > 0 {
			terms = append([]Node{Negated{Inner: collapse(leaves)}}, terms...)
		}
		return intersectAll(terms)
	default:
		return Negated{Inner: n}
	}
}

// ComplementExpr parses a character-class expression, complements it and
// serializes it back. The result is a valid standalone class expression and
// may be nested into further union, intersection or complement calls.
func ComplementExpr(expr string, opts ...Option) (string, error) {
	o := makeOptions(opts...)
	n, err := Parse(expr)
	if err != nil {
		return "", err
	}
	s := serializer{sentinel: o.sentinel}
	return s.class(Complement(n)), nil
}

// Render serializes n as a standalone class expression. The sentinel
// workaround is applied according to the options, as in ComplementExpr;
// Node.String renders without it.
func Render(n Node, opts ...Option) string {
	o := makeOptions(opts...)
	return serializer{sentinel: o.sentinel}.class(n)
}

func intersectAll(terms []Node) Node {
	switch len(terms) {
	case 0:
		// Complement of an empty union: the set of all code points.
		return Negated{Inner: Union{}}
	case 1:
		return terms[0]
	}
	return Intersection{Left: terms[0], Right: intersectAll(terms[1:])}
}
