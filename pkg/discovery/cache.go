package discovery

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/msartori/causalgo/pkg/graph"
)

// cacheEntry is a proposed cache insertion produced by an evaluator. Workers
// never write to the shared cache; they return entries and the single-threaded
// caller merges them after the scan.
type cacheEntry struct {
	key   string
	score float64
}

// scoreCache memoizes score evaluations for one optimizer run. Keys are
// either local keys (vertex plus canonically ordered parent set) or
// whole-graph keys, depending on the evaluation strategy. Values are pure:
// a key maps to exactly one score, so merging the same entry twice is a
// no-op and concurrent discovery of the same key is harmless.
//
// The cache is written only by the optimizer's own goroutine, between
// scans. During a scan, workers read it concurrently without locks.
type scoreCache struct {
	scores map[string]float64
}

func newScoreCache() *scoreCache {
	return &scoreCache{scores: make(map[string]float64)}
}

func (c *scoreCache) lookup(key string) (float64, bool) {
	s, ok := c.scores[key]
	return s, ok
}

// merge inserts the proposed entries, keeping existing values. Entries are
// pure, so first-write-wins and last-write-wins are indistinguishable; the
// explicit choice makes cache purity testable.
func (c *scoreCache) merge(entries []cacheEntry) {
	for _, e := range entries {
		if _, ok := c.scores[e.key]; !ok {
			c.scores[e.key] = e.score
		}
	}
}

func (c *scoreCache) len() int { return len(c.scores) }

// localKey builds the cache key of vertex x under the given parent set.
// parents must be in ascending order so that the key is canonical.
func localKey(x int, parents []int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(x))
	b.WriteByte('|')
	for i, p := range parents {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}

// graphKey builds the cache key of a whole graph structure as the SHA-256
// of its canonical edge list. Two graphs over the same labels share a key
// exactly when they have the same edges.
func graphKey(g *graph.Directed) string {
	h := sha256.New()
	for _, e := range g.Edges() {
		fmt.Fprintf(h, "%d>%d;", e.From, e.To)
	}
	return hex.EncodeToString(h.Sum(nil))
}
