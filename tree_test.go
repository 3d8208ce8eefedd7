package rstar

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/npillmayer/rstar/geom"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	configs := []Config[string]{
		{MinItems: 3, MaxItems: 5},
		{MinItems: -1, MaxItems: 4},
		{MaxItems: 1},
	}
	for _, cfg := range configs {
		if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig for %+v, got %v", cfg, err)
		}
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	tree, err := New(Config[string]{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := tree.Config()
	if cfg.MinItems != DefaultMinItems || cfg.MaxItems != DefaultMaxItems {
		t.Errorf("expected default fanout, got %d/%d", cfg.MinItems, cfg.MaxItems)
	}
	if cfg.Equal == nil {
		t.Errorf("expected default equality for comparable items")
	}
	tree, err = New(Config[string]{MaxItems: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Config().MinItems != 5 {
		t.Errorf("expected min fanout 5, got %d", tree.Config().MinItems)
	}
	tree, err = New(Config[string]{MinItems: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Config().MaxItems != 6 {
		t.Errorf("expected max fanout 6, got %d", tree.Config().MaxItems)
	}
}

type record struct {
	name string
	tags []string // makes record non-comparable
}

func TestNonComparableItemsNeedEqual(t *testing.T) {
	if _, err := New(Config[record]{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig without Equal, got %v", err)
	}
	tree, err := New(Config[record]{
		MinItems: 2,
		MaxItems: 4,
		Equal:    func(a, b record) bool { return a.name == b.name },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	box := geom.Box{MinX: 1, MinY: 1, MaxX: 2, MaxY: 2}
	if err := tree.Insert(box, record{name: "r", tags: []string{"x"}}); err != nil {
		t.Fatal(err)
	}
	if !tree.Remove(box, record{name: "r"}) {
		t.Fatalf("expected record to be removed by custom equality")
	}
}

func TestInterfaceItemsWithUncomparableValues(t *testing.T) {
	tree, err := New(Config[any]{MinItems: 2, MaxItems: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	box := geom.Box{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	tree.Insert(box, []int{1})
	tree.Insert(box, 7)
	tree.Insert(box, "seven")
	if tree.Remove(box, []int{1}) {
		t.Errorf("slice item must not match by default equality")
	}
	if tree.Remove(box, "7") {
		t.Errorf("items of different dynamic types must not match")
	}
	if !tree.Remove(box, 7) || !tree.Remove(box, "seven") {
		t.Errorf("expected comparable items to be removed")
	}
	if tree.Len() != 1 {
		t.Errorf("size = %d, want 1", tree.Len())
	}
	type wrapper struct{ v any }
	wtree, _ := New(Config[wrapper]{MinItems: 2, MaxItems: 4})
	wtree.Insert(box, wrapper{v: map[string]int{}})
	if wtree.Remove(box, wrapper{v: map[string]int{}}) {
		t.Errorf("struct holding a map must not match by default equality")
	}
}

func TestSetFanout(t *testing.T) {
	tree, _ := New(Config[int]{})
	if err := tree.SetFanout(3, 5); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	if err := tree.SetFanout(2, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tree.Insert(geom.Box{MaxX: 1, MaxY: 1}, 1); err != nil {
		t.Fatal(err)
	}
	if err := tree.SetFanout(4, 8); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState for non-empty tree, got %v", err)
	}
	if cfg := tree.Config(); cfg.MinItems != 2 || cfg.MaxItems != 4 {
		t.Errorf("configuration changed by failed SetFanout: %d/%d", cfg.MinItems, cfg.MaxItems)
	}
	tree.Clear()
	if err := tree.SetFanout(4, 8); err != nil {
		t.Errorf("expected SetFanout to succeed after Clear, got %v", err)
	}
}

func TestInsertRejectsInvalidBox(t *testing.T) {
	tree, _ := New(Config[int]{MinItems: 2, MaxItems: 4})
	bad := []geom.Box{
		{MinX: 1, MinY: 0, MaxX: 0, MaxY: 1},
		{MinX: math.NaN(), MinY: 0, MaxX: 1, MaxY: 1},
		{MinX: 0, MinY: 0, MaxX: 1, MaxY: math.Inf(1)},
	}
	for _, b := range bad {
		err := tree.Insert(b, 7)
		if !errors.Is(err, ErrInvalidArgument) || !errors.Is(err, geom.ErrInvalidBox) {
			t.Errorf("expected ErrInvalidArgument for %v, got %v", b, err)
		}
	}
	if tree.Len() != 0 || !tree.IsEmpty() || tree.Height() != 0 {
		t.Errorf("tree modified by rejected insert")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestEmptyTree(t *testing.T) {
	tree, _ := New(Config[string]{})
	called := false
	fn := func(string) bool { called = true; return true }
	if !tree.ForEach(fn) || !tree.ForEachAt(0, 0, fn) || !tree.ForEachIn(geom.Box{MaxX: 1, MaxY: 1}, fn) {
		t.Errorf("queries on empty tree should report completion")
	}
	if called {
		t.Errorf("callback called for empty tree")
	}
	if _, ok := tree.Bounds(); ok {
		t.Errorf("empty tree should have no bounds")
	}
	if tree.Remove(geom.Box{MaxX: 1, MaxY: 1}, "x") {
		t.Errorf("remove from empty tree reported success")
	}
	if n := tree.RemoveItems(geom.Box{MaxX: 1, MaxY: 1}); n != 0 {
		t.Errorf("bulk remove from empty tree removed %d items", n)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestConcreteScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := New(Config[string]{MinItems: 2, MaxItems: 4})
	if err != nil {
		t.Fatal(err)
	}
	a := geom.Box{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	b := geom.Box{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}
	c := geom.Box{MinX: 0.5, MinY: 0.5, MaxX: 1.5, MaxY: 1.5}
	for _, e := range []struct {
		box  geom.Box
		item string
	}{{a, "a"}, {b, "b"}, {c, "c"}} {
		if err := tree.Insert(e.box, e.item); err != nil {
			t.Fatal(err)
		}
	}
	if got := collect(tree.Search(geom.Box{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2})); !equalStrings(got, "a", "c") {
		t.Errorf("box query returned %v, want [a c]", got)
	}
	var atPoint []string
	tree.ForEachAt(0.7, 0.7, func(item string) bool {
		atPoint = append(atPoint, item)
		return true
	})
	if got := collect(atPoint); !equalStrings(got, "a", "c") {
		t.Errorf("point query returned %v, want [a c]", got)
	}
	if !tree.Remove(a, "a") {
		t.Fatalf("expected item a to be removed")
	}
	var all []string
	tree.ForEach(func(item string) bool {
		all = append(all, item)
		return true
	})
	if got := collect(all); !equalStrings(got, "b", "c") {
		t.Errorf("full scan returned %v, want [b c]", got)
	}
	if tree.Len() != 2 {
		t.Errorf("size = %d, want 2", tree.Len())
	}
	if bounds, ok := tree.Bounds(); !ok || bounds != (geom.Box{MinX: 0.5, MinY: 0.5, MaxX: 6, MaxY: 6}) {
		t.Errorf("unexpected bounds %v", bounds)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

// --- Helpers ---------------------------------------------------------------

func collect(items []string) []string {
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)
	return sorted
}

func equalStrings(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
