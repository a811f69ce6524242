package interview

import "strings"

// Canonical role and difficulty labels. All store matching happens against
// these, never against raw speech.
const (
	RoleBackend          = "backend developer"
	RolePythonDeveloper  = "python developer"
	RoleDataScientist    = "data scientist"
	RoleDataAnalyst      = "data analyst"
	RoleFrontend         = "frontend developer"
	RoleSoftwareEngineer = "software engineer"
	RoleDevOps           = "devops engineer"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DefaultRole is used when role speech is empty or unmatched.
const DefaultRole = RoleBackend

// DefaultDifficulty is used when difficulty speech is empty or unmatched.
const DefaultDifficulty = DifficultyEasy

// roleSynonyms maps each canonical role to the spoken fragments that select
// it. Matching is case-insensitive substring containment, checked in order.
var roleSynonyms = []struct {
	role  string
	words []string
}{
	{RoleBackend, []string{"backend", "back end", "server", "api", "rest api"}},
	{RolePythonDeveloper, []string{"python"}},
	{RoleDataScientist, []string{"data scientist", "data science"}},
	{RoleDataAnalyst, []string{"data analyst", "analytics"}},
	{RoleFrontend, []string{"frontend", "front end"}},
	{RoleSoftwareEngineer, []string{"software engineer", "software developer"}},
	{RoleDevOps, []string{"devops", "dev ops", "site reliability", "sre"}},
}

// NormalizeRole maps raw role speech onto a canonical role. Empty or
// unmatched utterances resolve to the default role; misrecognition is
// expected and must never abort the session.
func NormalizeRole(spoken string) string {
	s := strings.ToLower(strings.TrimSpace(spoken))
	if s == "" {
		return DefaultRole
	}
	for _, entry := range roleSynonyms {
		for _, word := range entry.words {
			if strings.Contains(s, word) {
				return entry.role
			}
		}
	}
	return DefaultRole
}

// NormalizeDifficulty maps raw difficulty speech onto easy, medium or hard,
// defaulting to the lowest difficulty.
func NormalizeDifficulty(spoken string) string {
	s := strings.ToLower(strings.TrimSpace(spoken))
	if strings.Contains(s, "easy") {
		return DifficultyEasy
	}
	if strings.Contains(s, "medium") || strings.Contains(s, "moderate") || strings.Contains(s, "normal") {
		return DifficultyMedium
	}
	if strings.Contains(s, "hard") || strings.Contains(s, "difficult") ||
		strings.Contains(s, "advanced") || strings.Contains(s, "tough") {
		return DifficultyHard
	}
	return DefaultDifficulty
}
