package content_db

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// NormalizeSearchTerm folds compatibility forms (full-width letters, ligatures)
// so that a title search matches what the user sees.
func NormalizeSearchTerm(raw string) string {
	return strings.TrimSpace(norm.NFKC.String(raw))
}

// escapeLike makes every character of term match literally inside LIKE.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
