package discovery

import (
	"testing"

	"github.com/msartori/causalgo/pkg/graph"
)

func TestLocalKey_Canonical(t *testing.T) {
	tests := []struct {
		x       int
		parents []int
		want    string
	}{
		{x: 0, parents: nil, want: "0|"},
		{x: 3, parents: []int{1}, want: "3|1"},
		{x: 2, parents: []int{0, 1, 4}, want: "2|0,1,4"},
	}
	for _, tt := range tests {
		if got := localKey(tt.x, tt.parents); got != tt.want {
			t.Errorf("localKey(%d, %v) = %q, want %q", tt.x, tt.parents, got, tt.want)
		}
	}
}

func TestGraphKey_EdgeSensitive(t *testing.T) {
	labels := []string{"a", "b", "c"}
	g1, _ := graph.New(labels, [][2]string{{"a", "b"}, {"b", "c"}})
	g2, _ := graph.New(labels, [][2]string{{"b", "c"}, {"a", "b"}})
	g3, _ := graph.New(labels, [][2]string{{"a", "b"}})

	if graphKey(g1) != graphKey(g2) {
		t.Error("same edges in different insertion order produced different keys")
	}
	if graphKey(g1) == graphKey(g3) {
		t.Error("different edge sets produced the same key")
	}
}

func TestScoreCache_MergeKeepsFirstValue(t *testing.T) {
	c := newScoreCache()
	c.merge([]cacheEntry{{key: "0|", score: -1.5}})
	c.merge([]cacheEntry{{key: "0|", score: -9.9}, {key: "1|0", score: -2.5}})

	if got, ok := c.lookup("0|"); !ok || got != -1.5 {
		t.Errorf("lookup(0|) = %v, %v, want -1.5, true", got, ok)
	}
	if got, ok := c.lookup("1|0"); !ok || got != -2.5 {
		t.Errorf("lookup(1|0) = %v, %v, want -2.5, true", got, ok)
	}
	if c.len() != 2 {
		t.Errorf("len() = %d, want 2", c.len())
	}
	if _, ok := c.lookup("2|"); ok {
		t.Error("lookup of unknown key reported a hit")
	}
}
