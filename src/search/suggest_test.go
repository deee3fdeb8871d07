package search

import (
	"testing"

	"github.com/devfolio/Backend-Dev-Folio/src/models"
)

func TestSuggestionsEmptyPrefix(t *testing.T) {
	profiles := []models.Profile{profileWithSkills("Go")}

	if got := Suggestions(profiles, "   ", 10); len(got) != 0 {
		t.Fatalf("blank prefix must yield an empty list, got %v", got)
	}
}

func TestSuggestionsCollectsAndTags(t *testing.T) {
	profiles := []models.Profile{
		{
			IsPublic: true,
			Name:     "Gopher Dev",
			Skills:   []string{"Go", "GraphQL"},
			Projects: []models.Project{
				{Title: "Go Chat Server", IsPublic: true},
			},
		},
	}

	got := Suggestions(profiles, "go", 10)

	types := map[string]string{}
	for _, s := range got {
		types[s.Value] = s.Type
	}

	if types["Gopher Dev"] != "profile" {
		t.Errorf("suggestions = %v, want Gopher Dev tagged profile", got)
	}
	if types["Go"] != "skill" {
		t.Errorf("suggestions = %v, want Go tagged skill", got)
	}
	if types["Go Chat Server"] != "project" {
		t.Errorf("suggestions = %v, want Go Chat Server tagged project", got)
	}
	if _, ok := types["GraphQL"]; ok {
		t.Errorf("GraphQL does not start with the prefix, got %v", got)
	}
}

func TestSuggestionsDeduplicatesFirstWins(t *testing.T) {
	profiles := []models.Profile{
		{
			IsPublic: true,
			Name:     "Go",
			Skills:   []string{"Go"},
		},
	}

	got := Suggestions(profiles, "go", 10)

	if len(got) != 1 {
		t.Fatalf("suggestions = %v, identical display values collapse", got)
	}
	if got[0].Type != "profile" {
		t.Fatalf("first occurrence wins, profile names come first, got %v", got)
	}
}

func TestSuggestionsRespectsLimit(t *testing.T) {
	profiles := []models.Profile{
		profileWithSkills("Go", "Gin", "GORM", "GraphQL", "Google Cloud", "Gradle"),
	}

	got := Suggestions(profiles, "g", 3)
	if len(got) != 3 {
		t.Fatalf("suggestions = %v, want exactly 3", got)
	}
}

func TestSuggestionsSkipPrivateProjects(t *testing.T) {
	profiles := []models.Profile{
		{
			IsPublic: true,
			Projects: []models.Project{
				{Title: "Go Secret", IsPublic: false},
			},
		},
	}

	if got := Suggestions(profiles, "go", 10); len(got) != 0 {
		t.Fatalf("private project titles must not be suggested, got %v", got)
	}
}

func TestMatchingPublicProjects(t *testing.T) {
	p := models.Profile{
		Projects: []models.Project{
			{Id: "a", Title: "Chat App", Description: "realtime", IsPublic: true},
			{Id: "b", Title: "Other", Description: "a chat thing", IsPublic: true},
			{Id: "c", Title: "Chat Hidden", IsPublic: false},
			{Id: "d", Title: "Unrelated", Description: "nope", IsPublic: true},
		},
	}

	got := MatchingPublicProjects(p, "chat")
	if len(got) != 2 || got[0].Id != "a" || got[1].Id != "b" {
		t.Fatalf("matched = %v, want title and description hits, never private ones", got)
	}

	all := MatchingPublicProjects(p, "")
	if len(all) != 3 {
		t.Fatalf("blank query keeps every public project, got %v", all)
	}
}

func TestProjectsUsingTechnology(t *testing.T) {
	p := models.Profile{
		Projects: []models.Project{
			{Id: "a", Technologies: []string{"React", "Node"}, IsPublic: true},
			{Id: "b", Technologies: []string{"react-native"}, IsPublic: true},
			{Id: "c", Technologies: []string{"React"}, IsPublic: false},
			{Id: "d", Technologies: []string{"Go"}, IsPublic: true},
		},
	}

	got := ProjectsUsingTechnology(p, []string{"react"})
	if len(got) != 2 || got[0].Id != "a" || got[1].Id != "b" {
		t.Fatalf("matched = %v, want substring matches on public projects", got)
	}
}
