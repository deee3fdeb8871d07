package models

import (
	"reflect"
	"testing"
)

func TestAddSkillIdempotent(t *testing.T) {
	p := Profile{Skills: []string{}}

	if !p.AddSkill("Go") {
		t.Fatal("first AddSkill should report an insertion")
	}
	if p.AddSkill("Go") {
		t.Fatal("second AddSkill of the same string should be a no-op")
	}
	if !reflect.DeepEqual(p.Skills, []string{"Go"}) {
		t.Fatalf("Skills = %v, want exactly [Go]", p.Skills)
	}

	// Matching is case-sensitive, a different casing is a new entry.
	if !p.AddSkill("go") {
		t.Fatal("different casing should be added")
	}
	if len(p.Skills) != 2 {
		t.Fatalf("Skills = %v, want two entries", p.Skills)
	}
}

func TestRemoveSkill(t *testing.T) {
	p := Profile{Skills: []string{"Go", "React", "Docker"}}

	if !p.RemoveSkill("React") {
		t.Fatal("RemoveSkill should find React")
	}
	if !reflect.DeepEqual(p.Skills, []string{"Go", "Docker"}) {
		t.Fatalf("Skills = %v after removal", p.Skills)
	}
	if p.RemoveSkill("react") {
		t.Fatal("RemoveSkill is exact-match, different casing should not match")
	}
}

func TestUpdateProjectKeepsId(t *testing.T) {
	p := Profile{Projects: []Project{{Id: "p1", Title: "Old"}}}

	ok := p.UpdateProject("p1", Project{Id: "ignored", Title: "New"})
	if !ok {
		t.Fatal("UpdateProject should find p1")
	}
	if p.Projects[0].Id != "p1" {
		t.Fatalf("project id changed to %q", p.Projects[0].Id)
	}
	if p.Projects[0].Title != "New" {
		t.Fatalf("project title = %q, want New", p.Projects[0].Title)
	}

	if p.UpdateProject("missing", Project{}) {
		t.Fatal("unknown id should report false")
	}
}

func TestRemoveProject(t *testing.T) {
	p := Profile{Projects: []Project{{Id: "p1"}, {Id: "p2"}}}

	if !p.RemoveProject("p1") {
		t.Fatal("RemoveProject should find p1")
	}
	if len(p.Projects) != 1 || p.Projects[0].Id != "p2" {
		t.Fatalf("Projects = %+v after removal", p.Projects)
	}
	if p.RemoveProject("p1") {
		t.Fatal("removing twice should report false")
	}
}

func TestPublicViewStripsPrivateProjects(t *testing.T) {
	p := Profile{
		IsPublic: true,
		Projects: []Project{
			{Id: "a", Title: "Visible", IsPublic: true},
			{Id: "b", Title: "Hidden", IsPublic: false},
		},
	}

	view := p.PublicView()
	if len(view.Projects) != 1 || view.Projects[0].Id != "a" {
		t.Fatalf("PublicView projects = %+v, want only the public one", view.Projects)
	}

	// The original aggregate is untouched.
	if len(p.Projects) != 2 {
		t.Fatalf("source profile mutated, projects = %+v", p.Projects)
	}
}

func TestUpdateProfileRequestApply(t *testing.T) {
	name := "Ada"
	hidden := false
	req := UpdateProfileRequest{Name: &name, IsPublic: &hidden}

	p := Profile{Name: "Old", Bio: "keep me", IsPublic: true}
	req.Apply(&p)

	if p.Name != "Ada" {
		t.Errorf("Name = %q, want Ada", p.Name)
	}
	if p.Bio != "keep me" {
		t.Errorf("Bio = %q, absent fields must stay untouched", p.Bio)
	}
	if p.IsPublic {
		t.Error("IsPublic should have been set to false")
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	cases := []struct {
		name  string
		req   RegisterRequest
		field string
	}{
		{"missing email", RegisterRequest{Name: "A", Password: "secret1"}, "email"},
		{"bad email", RegisterRequest{Name: "A", Email: "nope", Password: "secret1"}, "email"},
		{"short password", RegisterRequest{Name: "A", Email: "a@b.co", Password: "abc"}, "password"},
		{"missing name", RegisterRequest{Email: "a@b.co", Password: "secret1"}, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.req.Validate()
			if _, ok := v[tc.field]; !ok {
				t.Fatalf("expected violation on %q, got %v", tc.field, v)
			}
		})
	}

	valid := RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"}
	if v := valid.Validate(); !v.Empty() {
		t.Fatalf("valid payload produced violations: %v", v)
	}
}

func TestProjectRequestValidate(t *testing.T) {
	long := make([]rune, 101)
	for i := range long {
		long[i] = 'x'
	}

	v := ProjectRequest{Title: string(long)}.Validate()
	if _, ok := v["title"]; !ok {
		t.Fatalf("expected title violation, got %v", v)
	}

	v = ProjectRequest{Title: "ok", URLs: []string{"ftp://nope"}}.Validate()
	if _, ok := v["urls"]; !ok {
		t.Fatalf("expected urls violation, got %v", v)
	}
}

func TestProjectRequestToProjectDefaultsPublic(t *testing.T) {
	p := ProjectRequest{Title: "T"}.ToProject()
	if !p.IsPublic {
		t.Fatal("projects default to public when the flag is absent")
	}

	hidden := false
	p = ProjectRequest{Title: "T", IsPublic: &hidden}.ToProject()
	if p.IsPublic {
		t.Fatal("explicit isPublic=false must be kept")
	}
}
