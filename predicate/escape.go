package predicate

import "strings"

// LikeEscape is the escape character used by EscapeLike.
// SQL renderers must pair patterns with ESCAPE '\'.
const LikeEscape = `\`

var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// EscapeLike escapes the LIKE wildcards in s so it is matched literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern returns the LIKE pattern matching s anywhere in a value.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
