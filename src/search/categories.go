package search

import "strings"

// skillCategories is static configuration: category name → canonical keyword
// strings. A skill belongs to a category when its text contains one of the
// keywords, case-insensitively.
var skillCategories = []struct {
	Name     string
	Keywords []string
}{
	{"Programming Languages", []string{"javascript", "typescript", "python", "java", "golang", "go", "rust", "ruby", "php", "c++", "c#", "kotlin", "swift", "scala"}},
	{"Frontend", []string{"react", "vue", "angular", "svelte", "html", "css", "sass", "tailwind", "next", "nuxt"}},
	{"Backend", []string{"node", "express", "django", "flask", "spring", "rails", "laravel", "fastapi", "fiber", "gin"}},
	{"Database", []string{"sql", "mysql", "postgres", "mongodb", "redis", "sqlite", "cassandra", "dynamodb", "elasticsearch"}},
	{"DevOps & Cloud", []string{"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "ansible", "jenkins", "ci/cd", "linux"}},
	{"Mobile", []string{"android", "ios", "flutter", "react native", "xamarin"}},
	{"Data & AI", []string{"machine learning", "deep learning", "tensorflow", "pytorch", "pandas", "numpy", "data science", "nlp"}},
	{"Tools & Design", []string{"git", "figma", "photoshop", "jira", "ui", "ux", "design"}},
}

// CategoryGroup is one category bucket with its per-category top skills.
type CategoryGroup struct {
	Category string       `json:"category"`
	Skills   []SkillCount `json:"skills"`
}

// CategoryBuckets matches the skill vocabulary against the keyword table and
// returns a top-10 histogram per category. Categories with no matching skill
// are returned empty rather than omitted.
func CategoryBuckets(hist []SkillCount) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(skillCategories))

	for _, category := range skillCategories {
		matched := make([]SkillCount, 0)
		for _, s := range hist {
			if matchesAny(s.Skill, category.Keywords) {
				matched = append(matched, s)
				if len(matched) == 10 {
					break
				}
			}
		}
		groups = append(groups, CategoryGroup{Category: category.Name, Skills: matched})
	}

	return groups
}

func matchesAny(skill string, keywords []string) bool {
	folded := strings.ToLower(skill)
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}
