package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required(v, "name", "  ")
	if v["name"] != "name_required" {
		t.Fatalf("violations = %v, want name_required", v)
	}

	v = Violations{}
	Required(v, "name", "Ada")
	if !v.Empty() {
		t.Fatalf("violations = %v, want none", v)
	}
}

func TestMaxLenCountsRunes(t *testing.T) {
	v := Violations{}
	MaxLen(v, "bio", "héllo", 5)
	if !v.Empty() {
		t.Fatalf("five runes within limit flagged: %v", v)
	}

	MaxLen(v, "bio", "héllo!", 5)
	if v["bio"] != "bio_too_long" {
		t.Fatalf("violations = %v, want bio_too_long", v)
	}
}

func TestEmail(t *testing.T) {
	cases := map[string]bool{
		"ada@example.com": true,
		"not-an-email":    false,
		"@missing.local":  false,
	}
	for input, ok := range cases {
		v := Violations{}
		Email(v, "email", input)
		if ok != v.Empty() {
			t.Errorf("Email(%q): violations = %v", input, v)
		}
	}
}

func TestHTTPURL(t *testing.T) {
	cases := map[string]bool{
		"":                          true,
		"https://github.com/ada":    true,
		"http://example.com":        true,
		"ftp://example.com":         false,
		"https://":                  false,
		"not a url at all, really!": false,
	}
	for input, ok := range cases {
		v := Violations{}
		HTTPURL(v, "github", input)
		if ok != v.Empty() {
			t.Errorf("HTTPURL(%q): violations = %v", input, v)
		}
	}
}

func TestAddKeepsFirstViolation(t *testing.T) {
	v := Violations{}
	v.Add("email", "first")
	v.Add("email", "second")
	if v["email"] != "first" {
		t.Fatalf("violations = %v, the first code wins", v)
	}
}

func TestEachMaxLen(t *testing.T) {
	v := Violations{}
	EachMaxLen(v, "skills", []string{"Go", "Kubernetes"}, 50)
	if !v.Empty() {
		t.Fatalf("violations = %v, want none", v)
	}

	long := make([]rune, 51)
	for i := range long {
		long[i] = 'k'
	}
	EachMaxLen(v, "skills", []string{"Go", string(long)}, 50)
	if v["skills"] != "skills_entry_too_long" {
		t.Fatalf("violations = %v, want skills_entry_too_long", v)
	}
}
