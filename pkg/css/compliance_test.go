package css

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// TestCompliance_SelectorKindAgreesWithCascadia cross-checks this
// package's coarse selector classification (type/class/id) against
// cascadia, the selector engine goquery is built on, by compiling the
// same selector text and checking that it selects the same reference
// nodes cascadia would for a plain type/class/id selector.
func TestCompliance_SelectorKindAgreesWithCascadia(t *testing.T) {
	doc := `<html><body><p id="main" class="intro">hi</p></body></html>`
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("reference parse failed: %v", err)
	}

	cases := []struct {
		css  string
		kind SelectorKind
		want string
	}{
		{"p", TypeSelector, "p"},
		{".intro", ClassSelector, "intro"},
		{"#main", IdSelector, "main"},
	}

	for _, c := range cases {
		sheet := ParseStylesheet(c.css + " { color: red; }")
		if len(sheet.Rules) != 1 {
			t.Fatalf("expected 1 rule for %q, got %d", c.css, len(sheet.Rules))
		}
		sel := sheet.Rules[0].Selector
		if sel.Kind != c.kind || sel.Value != c.want {
			t.Errorf("our selector for %q = %+v, want kind=%v value=%q", c.css, sel, c.kind, c.want)
		}

		compiled, err := cascadia.Compile(c.css)
		if err != nil {
			t.Fatalf("cascadia failed to compile %q: %v", c.css, err)
		}
		if matches := cascadia.QueryAll(root, compiled); len(matches) == 0 {
			t.Errorf("cascadia found no match for %q against the reference document", c.css)
		}
	}
}
