package utils

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern wraps s for a substring LIKE/ILIKE match, escaping wildcards.
func LikePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
