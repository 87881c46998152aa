// internal/match/match_test.go
package match

import "testing"

func TestExact(t *testing.T) {
	m := NewExact("seq1")
	if !m.Matches("seq1") {
		t.Error("identical label should match")
	}
	if m.Matches("seq1 extra info") {
		t.Error("exact match must compare the whole label")
	}
	if m.Matches("Seq1") {
		t.Error("exact match is case sensitive")
	}
}

func TestRegexSearchesAnywhere(t *testing.T) {
	m, err := NewRegex("cat")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	for _, label := range []string{"cat", "the cat sat", "category"} {
		if !m.Matches(label) {
			t.Errorf("pattern should be found in %q", label)
		}
	}
	if m.Matches("dog") {
		t.Error("unexpected match")
	}
}

func TestWordRegexBoundaries(t *testing.T) {
	m, err := NewWordRegex("cat")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	cases := []struct {
		label string
		want  bool
	}{
		{"cat", true},
		{"the cat sat", true},
		{"cat-5", true},
		{"category", false},
		{"concat", false},
	}
	for _, c := range cases {
		if got := m.Matches(c.label); got != c.want {
			t.Errorf("Matches(%q) = %v, want %v", c.label, got, c.want)
		}
	}
}

func TestInvalidPattern(t *testing.T) {
	if _, err := NewRegex("("); err == nil {
		t.Error("expected compile error for regex")
	}
	if _, err := NewWordRegex("("); err == nil {
		t.Error("expected compile error for word regex")
	}
}

func TestIDOnlyTruncation(t *testing.T) {
	exact := NewExact("seq1")
	if exact.Matches("seq1 extra info") {
		t.Fatal("precondition: full-label match must fail")
	}
	idOnly := NewIDOnly(exact)
	if !idOnly.Matches("seq1 extra info") {
		t.Error("id-only should truncate at the first space")
	}
	if !idOnly.Matches("seq1\tdescription") {
		t.Error("id-only should truncate at the first tab")
	}
	if !idOnly.Matches("seq1") {
		t.Error("id-only should pass through labels without separators")
	}
	if idOnly.Matches("seq10 extra") {
		t.Error("truncated id must still match exactly")
	}
}
