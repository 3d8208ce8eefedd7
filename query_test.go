package rstar

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/npillmayer/rstar/geom"
)

func TestQueriesMatchBruteForce(t *testing.T) {
	for _, cfg := range []Config[int]{{MinItems: 2, MaxItems: 4}, {MinItems: 3, MaxItems: 9}, {}} {
		rnd := rand.New(rand.NewSource(11))
		boxes := make([]geom.Box, 800)
		tree, _ := New(cfg)
		for i := range boxes {
			boxes[i] = randomBox(rnd, 100, 8)
			tree.Insert(boxes[i], i)
		}
		for q := 0; q < 50; q++ {
			query := randomBox(rnd, 100, 30)
			got := tree.Search(query)
			var want []int
			for i, b := range boxes {
				if b.Intersects(query) {
					want = append(want, i)
				}
			}
			if !sameInts(got, want) {
				t.Fatalf("box query %v: got %d items, want %d", query, len(got), len(want))
			}
			x, y := rnd.Float64()*100, rnd.Float64()*100
			got = got[:0]
			tree.ForEachAt(x, y, func(item int) bool {
				got = append(got, item)
				return true
			})
			want = want[:0]
			for i, b := range boxes {
				if b.CoversPoint(x, y) {
					want = append(want, i)
				}
			}
			if !sameInts(got, want) {
				t.Fatalf("point query (%g,%g): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestForEachCancellation(t *testing.T) {
	tree, _ := New(Config[int]{MinItems: 2, MaxItems: 4})
	for i := 0; i < 100; i++ {
		tree.Insert(geom.Point(float64(i), float64(i)), i)
	}
	count := 0
	completed := tree.ForEach(func(int) bool {
		count++
		return count < 3
	})
	if completed || count != 3 {
		t.Errorf("expected cancellation after 3 items, completed=%v count=%d", completed, count)
	}
	count = 0
	completed = tree.ForEachIn(geom.Box{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}, func(int) bool {
		count++
		return false
	})
	if completed || count != 1 {
		t.Errorf("expected cancellation after 1 item, completed=%v count=%d", completed, count)
	}
	if !tree.ForEachIn(geom.Box{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}, func(int) bool { return true }) {
		t.Errorf("expected uncancelled query to complete")
	}
	if !tree.ForEachAt(500, 500, func(int) bool { return false }) {
		t.Errorf("query without matches should report completion")
	}
}

func TestQueriesDoNotMutate(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	tree, _ := New(Config[int]{MinItems: 2, MaxItems: 4})
	for i := 0; i < 200; i++ {
		tree.Insert(randomBox(rnd, 50, 5), i)
	}
	snapshot := func() []NodeInfo[int] {
		var nodes []NodeInfo[int]
		tree.Traverse(func(info NodeInfo[int]) bool {
			nodes = append(nodes, info)
			return true
		})
		return nodes
	}
	before := snapshot()
	for i := 0; i < 3; i++ {
		tree.Search(geom.Box{MinX: 10, MinY: 10, MaxX: 30, MaxY: 30})
		tree.ForEachAt(20, 20, func(int) bool { return true })
		tree.ForEach(func(int) bool { return true })
	}
	if !reflect.DeepEqual(before, snapshot()) {
		t.Fatalf("queries modified the tree")
	}
}

func TestTraverse(t *testing.T) {
	tree, _ := New(Config[int]{MinItems: 2, MaxItems: 4})
	for i := 0; i < 30; i++ {
		tree.Insert(geom.Point(float64(i), 0), i)
	}
	leaves, leafDepth := 0, -1
	tree.Traverse(func(info NodeInfo[int]) bool {
		if info.Depth == 0 && (info.IsLeaf || info.Children == 0) {
			t.Errorf("first node visited should be the root branch")
		}
		if info.IsLeaf {
			leaves++
			if leafDepth >= 0 && info.Depth != leafDepth {
				t.Errorf("leaves at different depths %d and %d", leafDepth, info.Depth)
			}
			leafDepth = info.Depth
		}
		return true
	})
	if leaves != 30 || leafDepth != tree.Height() {
		t.Errorf("traversed %d leaves at depth %d, want 30 at depth %d", leaves, leafDepth, tree.Height())
	}
	visited := 0
	if tree.Traverse(func(NodeInfo[int]) bool { visited++; return visited < 2 }) {
		t.Errorf("expected traversal to be cancelled")
	}
}

func sameInts(got, want []int) bool {
	g := append([]int(nil), got...)
	w := append([]int(nil), want...)
	sort.Ints(g)
	sort.Ints(w)
	if len(g) == 0 && len(w) == 0 {
		return true
	}
	return reflect.DeepEqual(g, w)
}
