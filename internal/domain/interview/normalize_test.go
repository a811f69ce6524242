package interview

import "testing"

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name   string
		spoken string
		want   string
	}{
		{name: "empty falls back to default", spoken: "", want: DefaultRole},
		{name: "whitespace only", spoken: "   ", want: DefaultRole},
		{name: "unmatched utterance", spoken: "underwater basket weaving", want: DefaultRole},
		{name: "containment in a full sentence", spoken: "I work on backend APIs", want: RoleBackend},
		{name: "server keyword", spoken: "mostly server side stuff", want: RoleBackend},
		{name: "python", spoken: "python developer please", want: RolePythonDeveloper},
		{name: "data science", spoken: "something in data science", want: RoleDataScientist},
		{name: "analytics", spoken: "analytics work", want: RoleDataAnalyst},
		{name: "front end with a space", spoken: "front end", want: RoleFrontend},
		{name: "software engineer", spoken: "I'm a software engineer", want: RoleSoftwareEngineer},
		{name: "sre", spoken: "sre on the platform team", want: RoleDevOps},
		{name: "case insensitive", spoken: "DEVOPS", want: RoleDevOps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRole(tt.spoken); got != tt.want {
				t.Errorf("NormalizeRole(%q) = %q, want %q", tt.spoken, got, tt.want)
			}
		})
	}
}

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		name   string
		spoken string
		want   string
	}{
		{name: "empty falls back to default", spoken: "", want: DefaultDifficulty},
		{name: "unmatched utterance", spoken: "whatever you like", want: DefaultDifficulty},
		{name: "easy", spoken: "easy please", want: DifficultyEasy},
		{name: "medium", spoken: "medium", want: DifficultyMedium},
		{name: "moderate synonym", spoken: "something moderate", want: DifficultyMedium},
		{name: "hedged hard", spoken: "kind of hard I guess", want: DifficultyHard},
		{name: "difficult synonym", spoken: "make it difficult", want: DifficultyHard},
		{name: "advanced synonym", spoken: "advanced questions", want: DifficultyHard},
		{name: "case insensitive", spoken: "HARD", want: DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDifficulty(tt.spoken); got != tt.want {
				t.Errorf("NormalizeDifficulty(%q) = %q, want %q", tt.spoken, got, tt.want)
			}
		})
	}
}
