package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern 转义通配符后包装为 %value%
func likePattern(v string) string {
	return "%" + likeEscaper.Replace(v) + "%"
}
