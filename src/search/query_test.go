package search

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSubstringRegexQuotesInput(t *testing.T) {
	rx := SubstringRegex(" c++ ")
	if rx.Pattern != `c\+\+` {
		t.Fatalf("Pattern = %q, regex metacharacters must be quoted", rx.Pattern)
	}
	if rx.Options != "i" {
		t.Fatalf("Options = %q, matching is case-insensitive", rx.Options)
	}
}

func TestPrefixRegex(t *testing.T) {
	rx := PrefixRegex("Re")
	if rx.Pattern != "^Re" {
		t.Fatalf("Pattern = %q, want anchored prefix", rx.Pattern)
	}
}

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"go,react", []string{"go", "react"}},
		{" go , react ,", []string{"go", "react"}},
		{"", []string{}},
		{" , ,", []string{}},
	}
	for _, tc := range cases {
		if got := SplitCSV(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitCSV(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestProfileTextFilter(t *testing.T) {
	filter := ProfileTextFilter("go")

	if filter["isPublic"] != true {
		t.Fatal("free-text search is always restricted to public profiles")
	}

	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 4 {
		t.Fatalf("$or = %v, want the four profile text fields", filter["$or"])
	}

	fields := map[string]bool{}
	for _, clause := range or {
		for field, value := range clause {
			fields[field] = true
			rx, ok := value.(primitive.Regex)
			if !ok || rx.Pattern != "go" || rx.Options != "i" {
				t.Fatalf("clause %s = %v, want case-insensitive substring regex", field, value)
			}
		}
	}
	for _, field := range []string{"name", "bio", "education", "location"} {
		if !fields[field] {
			t.Errorf("missing $or clause for %s", field)
		}
	}
}

func TestProjectTextFilterUsesElemMatch(t *testing.T) {
	filter := ProjectTextFilter("chat")

	if filter["isPublic"] != true {
		t.Fatal("project search is restricted to public profiles")
	}

	elem, ok := filter["projects"].(bson.M)["$elemMatch"].(bson.M)
	if !ok {
		t.Fatalf("projects = %v, want $elemMatch", filter["projects"])
	}
	if elem["isPublic"] != true {
		t.Fatal("the embedded project itself must be public")
	}
	if _, ok := elem["$or"].([]bson.M); !ok {
		t.Fatalf("$elemMatch = %v, want $or over title/description", elem)
	}
}

func TestAdvancedParamsEmpty(t *testing.T) {
	if !(AdvancedParams{}).Empty() {
		t.Fatal("zero params should be empty")
	}
	if !(AdvancedParams{Skills: "  "}).Empty() {
		t.Fatal("whitespace-only params should be empty")
	}
	if (AdvancedParams{Location: "Berlin"}).Empty() {
		t.Fatal("a provided filter makes params non-empty")
	}
}

func TestAdvancedFilterOmitsAbsentFilters(t *testing.T) {
	filter := AdvancedFilter(AdvancedParams{Location: "Berlin"})

	want := bson.M{
		"isPublic": true,
		"location": primitive.Regex{Pattern: "Berlin", Options: "i"},
	}
	if !reflect.DeepEqual(filter, want) {
		t.Fatalf("filter = %v, want %v", filter, want)
	}
}

func TestAdvancedFilterSkillsOrOfOrs(t *testing.T) {
	filter := AdvancedFilter(AdvancedParams{Skills: "go, react"})

	in, ok := filter["skills"].(bson.M)["$in"].([]primitive.Regex)
	if !ok || len(in) != 2 {
		t.Fatalf("skills = %v, want $in of two regexes", filter["skills"])
	}
	if in[0].Pattern != "go" || in[1].Pattern != "react" {
		t.Fatalf("$in = %v", in)
	}
}

func TestAdvancedFilterTechnologies(t *testing.T) {
	filter := AdvancedFilter(AdvancedParams{Technologies: "react"})

	elem, ok := filter["projects"].(bson.M)["$elemMatch"].(bson.M)
	if !ok {
		t.Fatalf("projects = %v, want $elemMatch", filter["projects"])
	}
	if elem["isPublic"] != true {
		t.Fatal("technology filter may only match public projects")
	}
	in, ok := elem["technologies"].(bson.M)["$in"].([]primitive.Regex)
	if !ok || len(in) != 1 || in[0].Pattern != "react" {
		t.Fatalf("technologies = %v", elem["technologies"])
	}
}

func TestTechnologyFilter(t *testing.T) {
	filter := TechnologyFilter([]string{"go"})
	if filter["isPublic"] != true {
		t.Fatal("only public profiles are browsable")
	}
	if _, ok := filter["projects"].(bson.M)["$elemMatch"]; !ok {
		t.Fatalf("projects = %v, want $elemMatch", filter["projects"])
	}
}
