// internal/cli/spec_test.go
package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSpec(t *testing.T) {
	cases := []struct {
		arg  string
		want Spec
	}{
		{"seq1", Spec{Kind: SpecLabel, Label: "seq1"}},
		{"chr[0-9]+", Spec{Kind: SpecLabel, Label: "chr[0-9]+"}},
		{"@0", Spec{Kind: SpecIndex, Index: 0}},
		{"@12", Spec{Kind: SpecIndex, Index: 12}},
		{"@1:3", Spec{Kind: SpecRange, Start: 1, Stop: 3}},
		{"@:3", Spec{Kind: SpecRange, Start: 0, Stop: 3}},
		{"@5:", Spec{Kind: SpecRange, Start: 5, Stop: StopNone}},
		{"@:", Spec{Kind: SpecRange, Start: 0, Stop: StopNone}},
	}
	for _, c := range cases {
		t.Run(c.arg, func(t *testing.T) {
			got, err := ParseSpec(c.arg)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("spec mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSpecErrors(t *testing.T) {
	for _, arg := range []string{
		"@",      // empty index
		"@x",     // non-numeric index
		"@-1",    // negative index
		"@a:2",   // non-numeric start
		"@1:b",   // non-numeric stop
		"@-1:2",  // negative start
		"@1:-2",  // negative stop
		"@2:2",   // stop == start
		"@3:2",   // stop < start
		"@:0",    // stop <= default start
	} {
		if _, err := ParseSpec(arg); err == nil {
			t.Errorf("ParseSpec(%q) should fail", arg)
		}
	}
}
