package nodelink

import (
	"strings"
	"testing"

	"github.com/msartori/causalgo/pkg/graph"
)

func TestToDOT_Basic(t *testing.T) {
	g, err := graph.New([]string{"rain", "sprinkler", "wet"},
		[][2]string{{"rain", "wet"}, {"sprinkler", "wet"}})
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}

	dot := ToDOT(g, Options{})
	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`"rain";`,
		`"sprinkler";`,
		`"wet";`,
		`"rain" -> "wet";`,
		`"sprinkler" -> "wet";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_RequiredEdgesBold(t *testing.T) {
	g, err := graph.New([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	ab := graph.Edge{From: 0, To: 1}

	dot := ToDOT(g, Options{Required: []graph.Edge{ab}})
	if !strings.Contains(dot, `"a" -> "b" [style=bold, penwidth=2];`) {
		t.Errorf("required edge not bold:\n%s", dot)
	}
	if !strings.Contains(dot, `"b" -> "c";`) {
		t.Errorf("learned edge should stay plain:\n%s", dot)
	}
}

func TestToDOT_LeftToRight(t *testing.T) {
	g, err := graph.New([]string{"a", "b"}, nil)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	if dot := ToDOT(g, Options{LeftToRight: true}); !strings.Contains(dot, "rankdir=LR;") {
		t.Errorf("ToDOT() missing rankdir=LR:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.00 200.00"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 200.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="100" height="200"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("svg without viewBox modified: %s", got)
	}
}
