package search

import (
	"strings"

	"github.com/devfolio/Backend-Dev-Folio/src/models"
)

const perSourceLimit = 5

// Suggestion is one typeahead entry tagged with where it came from.
type Suggestion struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Suggestions collects up to five profile names, five skills and five public
// project titles starting with the prefix (case-insensitive), concatenates
// them in that order, de-duplicates by display value (first occurrence wins)
// and truncates to limit. An empty prefix yields an empty list, not an error.
func Suggestions(profiles []models.Profile, prefix string, limit int) []Suggestion {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	out := make([]Suggestion, 0, limit)
	if prefix == "" || limit <= 0 {
		return out
	}

	names := make([]Suggestion, 0, perSourceLimit)
	skills := make([]Suggestion, 0, perSourceLimit)
	titles := make([]Suggestion, 0, perSourceLimit)

	for _, p := range profiles {
		if len(names) < perSourceLimit && strings.HasPrefix(strings.ToLower(p.Name), prefix) {
			names = append(names, Suggestion{Value: p.Name, Type: "profile"})
		}
		for _, skill := range p.Skills {
			if len(skills) == perSourceLimit {
				break
			}
			if strings.HasPrefix(strings.ToLower(skill), prefix) {
				skills = append(skills, Suggestion{Value: skill, Type: "skill"})
			}
		}
		for _, project := range p.Projects {
			if len(titles) == perSourceLimit {
				break
			}
			if project.IsPublic && strings.HasPrefix(strings.ToLower(project.Title), prefix) {
				titles = append(titles, Suggestion{Value: project.Title, Type: "project"})
			}
		}
	}

	seen := make(map[string]bool)
	for _, s := range append(append(names, skills...), titles...) {
		if seen[s.Value] {
			continue
		}
		seen[s.Value] = true
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}

	return out
}

// MatchingPublicProjects extracts the embedded projects of one profile that
// are public and whose title or description contains the query. An empty
// query keeps every public project.
func MatchingPublicProjects(p models.Profile, q string) []models.Project {
	q = strings.ToLower(strings.TrimSpace(q))
	matched := make([]models.Project, 0)
	for _, project := range p.Projects {
		if !project.IsPublic {
			continue
		}
		if q == "" ||
			strings.Contains(strings.ToLower(project.Title), q) ||
			strings.Contains(strings.ToLower(project.Description), q) {
			matched = append(matched, project)
		}
	}
	return matched
}

// ProjectsUsingTechnology extracts public projects tagged with any of the
// technologies (case-insensitive substring, same semantics as the store
// filter).
func ProjectsUsingTechnology(p models.Profile, technologies []string) []models.Project {
	matched := make([]models.Project, 0)
	for _, project := range p.Projects {
		if !project.IsPublic {
			continue
		}
		for _, tech := range technologies {
			if containsFold(project.Technologies, tech) {
				matched = append(matched, project)
				break
			}
		}
	}
	return matched
}

func containsFold(values []string, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}
