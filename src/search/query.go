package search

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The query builder turns a search/filter request into a single bson filter.
// Free text becomes a case-insensitive substring regex ORed across a field
// set, list filters become OR-of-ORs ($in of regexes against the array
// field), and everything provided is ANDed together. Absent filters are
// omitted entirely.

// SubstringRegex matches the term anywhere in the field, case-insensitively.
// The term is quoted so user input cannot inject regex syntax.
func SubstringRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(term)), Options: "i"}
}

// PrefixRegex anchors the match at the start of the field.
func PrefixRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(term)), Options: "i"}
}

// SplitCSV splits a comma-separated filter value, trimming blanks.
func SplitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func regexList(terms []string) []primitive.Regex {
	patterns := make([]primitive.Regex, 0, len(terms))
	for _, t := range terms {
		patterns = append(patterns, SubstringRegex(t))
	}
	return patterns
}

// ProfileTextFilter matches public profiles whose name, bio, education or
// location contains the query.
func ProfileTextFilter(q string) bson.M {
	rx := SubstringRegex(q)
	return bson.M{
		"isPublic": true,
		"$or": []bson.M{
			{"name": rx},
			{"bio": rx},
			{"education": rx},
			{"location": rx},
		},
	}
}

// ProjectTextFilter matches public profiles embedding at least one public
// project whose title or description contains the query. The matching
// projects themselves are extracted afterwards by the result shaper.
func ProjectTextFilter(q string) bson.M {
	rx := SubstringRegex(q)
	return bson.M{
		"isPublic": true,
		"projects": bson.M{
			"$elemMatch": bson.M{
				"isPublic": true,
				"$or": []bson.M{
					{"title": rx},
					{"description": rx},
				},
			},
		},
	}
}

// PublicProfilesFilter is the base filter for aggregation reads.
func PublicProfilesFilter() bson.M {
	return bson.M{"isPublic": true}
}

// TechnologyFilter matches public profiles with a public project using any of
// the given technologies.
func TechnologyFilter(technologies []string) bson.M {
	return bson.M{
		"isPublic": true,
		"projects": bson.M{
			"$elemMatch": bson.M{
				"isPublic":     true,
				"technologies": bson.M{"$in": regexList(technologies)},
			},
		},
	}
}

// AdvancedParams are the structured filters of the advanced search endpoint.
// Skills and Technologies arrive comma-separated.
type AdvancedParams struct {
	Skills       string
	Location     string
	Education    string
	Technologies string
}

func (p AdvancedParams) Empty() bool {
	return strings.TrimSpace(p.Skills) == "" &&
		strings.TrimSpace(p.Location) == "" &&
		strings.TrimSpace(p.Education) == "" &&
		strings.TrimSpace(p.Technologies) == ""
}

// AdvancedFilter ANDs every provided filter onto the public-profiles base. A
// profile matches a list filter when any list element matches any of its own
// entries.
func AdvancedFilter(p AdvancedParams) bson.M {
	filter := bson.M{"isPublic": true}

	if skills := SplitCSV(p.Skills); len(skills) > 0 {
		filter["skills"] = bson.M{"$in": regexList(skills)}
	}
	if loc := strings.TrimSpace(p.Location); loc != "" {
		filter["location"] = SubstringRegex(loc)
	}
	if edu := strings.TrimSpace(p.Education); edu != "" {
		filter["education"] = SubstringRegex(edu)
	}
	if techs := SplitCSV(p.Technologies); len(techs) > 0 {
		filter["projects"] = bson.M{
			"$elemMatch": bson.M{
				"isPublic":     true,
				"technologies": bson.M{"$in": regexList(techs)},
			},
		}
	}

	return filter
}
