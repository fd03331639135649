package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes keyword match literally inside a LIKE pattern using ESCAPE '\'.
func escapeLike(keyword string) string {
	return likeEscaper.Replace(keyword)
}
