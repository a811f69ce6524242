package question

import "strings"

// Record is one stored interview question. Immutable once loaded.
type Record struct {
	Role       string `json:"role"`
	Difficulty string `json:"difficulty"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// Matches reports whether the record matches the given canonical labels.
// Records missing either field never match; they are not wildcards.
func (r Record) Matches(role, difficulty string) bool {
	recRole := strings.ToLower(strings.TrimSpace(r.Role))
	recDiff := strings.ToLower(strings.TrimSpace(r.Difficulty))
	if recRole == "" || recDiff == "" {
		return false
	}
	return recRole == strings.ToLower(strings.TrimSpace(role)) &&
		recDiff == strings.ToLower(strings.TrimSpace(difficulty))
}
