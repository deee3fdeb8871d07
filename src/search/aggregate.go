package search

import (
	"sort"
	"strings"

	"github.com/devfolio/Backend-Dev-Folio/src/models"
)

// The aggregator post-processes documents the store returned. Inputs are
// always restricted to public profiles; the caller queries with
// PublicProfilesFilter before handing the documents over.

// SkillCount is one histogram bucket. Skill keeps the casing of the first
// occurrence encountered, grouping is case-folded.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// RankedSkill is a histogram bucket with an explicit 1-based rank, used by
// the trending endpoints.
type RankedSkill struct {
	Rank  int    `json:"rank"`
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// histogram groups the values case-folded, displays first-seen casing and
// sorts by count descending, then name ascending. The deterministic tie-break
// keeps pagination over the histogram stable.
func histogram(values []string) []SkillCount {
	counts := make(map[string]int)
	display := make(map[string]string)
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, seen := display[key]; !seen {
			display[key] = v
		}
		counts[key]++
	}

	out := make([]SkillCount, 0, len(counts))
	for key, count := range counts {
		out = append(out, SkillCount{Skill: display[key], Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.ToLower(out[i].Skill) < strings.ToLower(out[j].Skill)
	})

	return out
}

// SkillHistogram counts every skill occurrence across the given profiles.
func SkillHistogram(profiles []models.Profile) []SkillCount {
	var values []string
	for _, p := range profiles {
		values = append(values, p.Skills...)
	}
	return histogram(values)
}

// TechnologyHistogram counts technology tags across public projects only.
func TechnologyHistogram(profiles []models.Profile) []SkillCount {
	var values []string
	for _, p := range profiles {
		for _, project := range p.Projects {
			if project.IsPublic {
				values = append(values, project.Technologies...)
			}
		}
	}
	return histogram(values)
}

// TopSkills truncates the histogram to n buckets and attaches ranks.
func TopSkills(hist []SkillCount, n int) []RankedSkill {
	if n > len(hist) {
		n = len(hist)
	}
	ranked := make([]RankedSkill, 0, n)
	for i := 0; i < n; i++ {
		ranked = append(ranked, RankedSkill{Rank: i + 1, Skill: hist[i].Skill, Count: hist[i].Count})
	}
	return ranked
}

// RelatedSkills approximates relatedness by global popularity: the top-10
// histogram minus the target skill, truncated to 5. It does not count true
// co-occurrence with the target.
func RelatedSkills(hist []SkillCount, target string) []SkillCount {
	top := hist
	if len(top) > 10 {
		top = top[:10]
	}

	related := make([]SkillCount, 0, 5)
	for _, s := range top {
		if strings.EqualFold(s.Skill, target) {
			continue
		}
		related = append(related, s)
		if len(related) == 5 {
			break
		}
	}
	return related
}

// FilterHistogram keeps buckets whose skill contains the query.
func FilterHistogram(hist []SkillCount, q string) []SkillCount {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return hist
	}
	out := make([]SkillCount, 0)
	for _, s := range hist {
		if strings.Contains(strings.ToLower(s.Skill), q) {
			out = append(out, s)
		}
	}
	return out
}

// FindSkill locates one bucket by case-insensitive equality.
func FindSkill(hist []SkillCount, name string) (SkillCount, bool) {
	for _, s := range hist {
		if strings.EqualFold(s.Skill, name) {
			return s, true
		}
	}
	return SkillCount{}, false
}
