package rex_test

import (
	"regexp"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/rex/pkg/errdefs"
	"github.com/wuxler/rex/pkg/rex"
)

func TestBuilders(t *testing.T) {
	testcases := map[string]struct {
		built  string
		expect string
	}{
		"text quotes metacharacters": {
			built:  rex.Text(`1+1=2?`),
			expect: `1\+1=2\?`,
		},
		"codepoint": {
			built:  rex.Codepoint(' '),
			expect: `\x{2028}`,
		},
		"charclass escapes metacharacters": {
			built:  rex.Charclass('^', '.', '[', ']', '-', '+', '\\'),
			expect: `[\^.\[\]\-+\\]`,
		},
		"charclass range": {
			built:  rex.CharclassRange('a', 'z'),
			expect: `[a-z]`,
		},
		"charclass union": {
			built:  rex.CharclassUnion(rex.Letter, rex.Digit),
			expect: `[\p{L}[0-9]]`,
		},
		"charclass intersection": {
			built:  rex.CharclassIntersection(`[a-z]`, `[^aeiou]`),
			expect: `[[a-z]&&[[^aeiou]]]`,
		},
		"either": {
			built:  rex.Either("a", "b", "c"),
			expect: `(?:a|b|c)`,
		},
		"either or": {
			built:  rex.EitherOr("a", "b"),
			expect: `(?:ab|a|b)`,
		},
		"optional": {
			built:  rex.Optional("ab"),
			expect: `(?:ab)?`,
		},
		"one or more of a sequence": {
			built:  rex.OneOrMore("a", "b"),
			expect: `(?:ab)+`,
		},
		"exactly": {
			built:  rex.Exactly(3, rex.Digit),
			expect: `(?:[0-9]){3}`,
		},
		"at least": {
			built:  rex.AtLeast(2, rex.Letter),
			expect: `(?:\p{L}){2,}`,
		},
		"between reluctantly": {
			built:  rex.Reluctantly(rex.Between(1, 3, "x")),
			expect: `(?:x){1,3}?`,
		},
		"possessively": {
			built:  rex.Possessively(rex.OneOrMore("x")),
			expect: `(?:x)++`,
		},
		"group": {
			built:  rex.Group("ab"),
			expect: `(ab)`,
		},
		"named group": {
			built:  rex.NamedGroup("word", rex.OneOrMore(rex.Letter)),
			expect: `(?<word>(?:\p{L})+)`,
		},
		"lookarounds": {
			built:  rex.Sequence(rex.PrecededBy("a"), rex.NotFollowedBy("b")),
			expect: `(?<=a)(?!b)`,
		},
		"backreference": {
			built:  rex.Backreference(2),
			expect: `\2`,
		},
		"class from unicode property": {
			built:  rex.ClassFromUnicodeProperty("Alphabetic"),
			expect: `\p{IsAlphabetic}`,
		},
		"class from unicode block": {
			built:  rex.ClassFromUnicodeBlock("Cyrillic"),
			expect: `\p{InCyrillic}`,
		},
		"class from unicode category": {
			built:  rex.ClassFromUnicodeCategory("Lu"),
			expect: `\p{Lu}`,
		},
		"replacement text": {
			built:  rex.ReplacementText(`1\2 costs $5`),
			expect: `1\\2 costs \$5`,
		},
		"replacement backreferences": {
			built:  rex.Sequence(rex.ReplacementBackreference(1), rex.ReplacementNamedBackreference("rest")),
			expect: `$1${rest}`,
		},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.built)
		})
	}
}

func TestComplement(t *testing.T) {
	out, err := rex.Complement(rex.Charclass('a', 'b', 'c'))
	require.NoError(t, err)
	assert.Equal(t, `[^abc]`, out)

	out, err = rex.Not(rex.CharclassIntersection(rex.Charclass('a', 'b'), rex.Charclass('b', 'c')))
	require.NoError(t, err)
	assert.Equal(t, `[[^ab][^bc]]`, out)

	_, err = rex.Complement(`[a-z`)
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrMalformedExpression)
}

func TestCharclassSubtraction(t *testing.T) {
	out, err := rex.CharclassSubtraction(rex.CharclassRange('a', 'z'), rex.Charclass('a', 'e', 'i', 'o', 'u'))
	require.NoError(t, err)
	assert.Equal(t, `[[a-z]&&[[^aeiou]]]`, out)
}

func TestMustComplementPanics(t *testing.T) {
	assert.Panics(t, func() {
		rex.MustComplement(`[a-z`)
	})
}

func TestStripNamedGroups(t *testing.T) {
	re := rex.Sequence(
		rex.NamedGroup("user", rex.OneOrMore(rex.Letter)),
		rex.Text("@"),
		rex.NamedGroup("domain", rex.OneOrMore(rex.Letter)),
	)

	stripped := rex.StripNamedGroups(re)
	assert.Equal(t, `((?:\p{L})+)@((?:\p{L})+)`, stripped)

	// Lookbehind markers share the `(?<` prefix and must survive.
	assert.Equal(t, `(?<=a)(?<!b)`, rex.StripNamedGroups(`(?<=a)(?<!b)`))
}

// The IP-address example, compiled with the standard engine: every
// construct used here is within the RE2 subset.
func TestExampleIPAddress(t *testing.T) {
	pattern := rex.Sequence(
		rex.WordBoundary,
		rex.Exactly(3, rex.Between(1, 3, rex.Digit), rex.Text(".")),
		rex.Between(1, 3, rex.Digit),
		rex.WordBoundary,
	)

	re, err := regexp.Compile(pattern)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"192.168.1.2"},
		re.FindAllString("My IP address is: 192.168.1.2:4000", -1))
}

// findAll collects every match of pattern in input using the regexp2
// engine, which follows the Perl/Java-style dialect the builders target.
func findAll(t *testing.T, pattern, input string) []string {
	t.Helper()
	re, err := regexp2.Compile(pattern, regexp2.None)
	require.NoError(t, err)

	var out []string
	m, err := re.FindStringMatch(input)
	require.NoError(t, err)
	for m != nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
		require.NoError(t, err)
	}
	return out
}

func TestExampleReluctantComplement(t *testing.T) {
	pattern := rex.Sequence(
		rex.Reluctantly(rex.Between(1, 3, rex.MustComplement(rex.Charclass(' ')))),
		rex.FollowedBy(rex.OneOrMore(" ")),
	)

	assert.Equal(t,
		[]string{"A", "est", "of", "any"},
		findAll(t, pattern, "A test of many words"))
}

func TestExampleCharclassMetacharacters(t *testing.T) {
	pattern := rex.Charclass('^', '.', '[', ']', '-', '+', '\\')

	assert.Equal(t,
		[]string{"^", "+", "\\", "[", ".", "]", "-"},
		findAll(t, pattern, `^+\[.]-`))
}

func TestExampleEmailAddress(t *testing.T) {
	// The regexp2 engine does not understand nested bracket expressions,
	// so the classes are built as flat unions here.
	userChar := rex.CharclassUnion(rex.Letter, `\d`, `._%+\-`)
	domainChar := rex.CharclassUnion(rex.Letter, `\d`, `.\-`)
	pattern := rex.Sequence(
		rex.WordBoundary,
		rex.NamedGroup("user", rex.OneOrMore(userChar)),
		rex.Text("@"),
		rex.NamedGroup("domain",
			rex.OneOrMore(domainChar),
			rex.Text("."),
			rex.AtLeast(2, rex.Letter)),
		rex.WordBoundary,
	)

	re, err := regexp2.Compile(pattern, regexp2.None)
	require.NoError(t, err)

	m, err := re.FindStringMatch("An email address\njohn@acme.com")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "john@acme.com", m.String())
	assert.Equal(t, "john", m.GroupByName("user").String())
	assert.Equal(t, "acme.com", m.GroupByName("domain").String())

	m, err = re.FindNextMatch(m)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestExampleAdjacentDuplicates(t *testing.T) {
	pattern := rex.Sequence(
		rex.PrecededBy(rex.Either(rex.StartBoundary, rex.Text(","))),
		rex.Group(rex.ZeroOrMore(rex.MustComplement(rex.Charclass(',')))),
		rex.OneOrMore(rex.Text(","), rex.Backreference(1)),
		rex.FollowedBy(rex.Either(rex.Text(","), rex.EndBoundary)),
	)

	re, err := regexp2.Compile(pattern, regexp2.None)
	require.NoError(t, err)

	var dupes []string
	m, err := re.FindStringMatch("dog,cat,cat,tree,apple,tree,tree,tree")
	require.NoError(t, err)
	for m != nil {
		dupes = append(dupes, m.GroupByNumber(1).String())
		m, err = re.FindNextMatch(m)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"cat", "tree"}, dupes)
}
