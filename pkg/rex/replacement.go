package rex

import (
	"strconv"
	"strings"
)

var replacementQuoter = strings.NewReplacer(`\`, `\\`, `$`, `\$`)

// ReplacementText quotes s for use as a literal replacement string,
// escaping the backslash and dollar metacharacters.
func ReplacementText(s string) string { return replacementQuoter.Replace(s) }

// ReplacementBackreference refers to the i-th captured group in a
// replacement string.
func ReplacementBackreference(i int) string { return `$` + strconv.Itoa(i) }

// ReplacementNamedBackreference refers to a named captured group in a
// replacement string.
func ReplacementNamedBackreference(name string) string { return `${` + name + `}` }
