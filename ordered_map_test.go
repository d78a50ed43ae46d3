package controls

import (
	"slices"
	"testing"
)

func TestOrderedMap_InsertKeepsFirstPosition(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Insert("b", 1)
	m.Insert("a", 2)
	m.Insert("b", 3)

	if got, want := m.Keys(), []string{"b", "a"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, ok := m.Get("b"); !ok || v != 3 {
		t.Errorf("Get(b) = %d, %v; want 3, true", v, ok)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestOrderedMap_OrderIndependentOfKeyOrder(t *testing.T) {
	m := NewOrderedMap[int, string]()
	for _, k := range []int{30, 10, 20, 10, 30, 40} {
		m.Insert(k, "v")
	}

	var got []int
	for k := range m.All() {
		got = append(got, k)
	}
	if want := []int{30, 10, 20, 40}; !slices.Equal(got, want) {
		t.Errorf("All() order = %v, want %v", got, want)
	}
}

func TestOrderedMap_AllIsRestartable(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Insert("x", 1)
	m.Insert("y", 2)
	m.Insert("z", 3)

	collect := func() []string {
		var keys []string
		for k := range m.All() {
			keys = append(keys, k)
		}
		return keys
	}

	first := collect()
	second := collect()
	if !slices.Equal(first, second) {
		t.Errorf("iterations differ: %v vs %v", first, second)
	}

	// Early break must not affect the next traversal.
	for k := range m.All() {
		if k == "x" {
			break
		}
	}
	if got := collect(); !slices.Equal(got, first) {
		t.Errorf("after break: %v, want %v", got, first)
	}
	if m.Len() != 3 {
		t.Errorf("All() must not consume entries, Len() = %d", m.Len())
	}
}

func TestOrderedMap_GetMissing(t *testing.T) {
	m := NewOrderedMap[string, int]()
	if v, ok := m.Get("nope"); ok || v != 0 {
		t.Errorf("Get(nope) = %d, %v; want 0, false", v, ok)
	}
	if m.GetMut("nope") != nil {
		t.Error("GetMut(nope) should be nil")
	}
	if m.Contains("nope") {
		t.Error("Contains(nope) should be false")
	}
}

func TestOrderedMap_GetMut(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Insert("a", 1)

	p := m.GetMut("a")
	*p = 42
	if v, _ := m.Get("a"); v != 42 {
		t.Errorf("Get(a) = %d after GetMut write, want 42", v)
	}

	// Overwrite keeps the same storage.
	m.Insert("a", 7)
	if *p != 7 {
		t.Errorf("pointer sees %d after Insert, want 7", *p)
	}
}

func TestOrderedMap_Drain(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Insert("c", 1)
	m.Insert("a", 2)
	m.Insert("b", 3)
	m.Insert("c", 4)

	var keys []string
	var vals []int
	for k, v := range m.Drain() {
		if m.Contains(k) {
			t.Errorf("%q still present while being yielded", k)
		}
		keys = append(keys, k)
		vals = append(vals, v)
	}

	if want := []string{"c", "a", "b"}; !slices.Equal(keys, want) {
		t.Errorf("Drain keys = %v, want %v", keys, want)
	}
	if want := []int{4, 2, 3}; !slices.Equal(vals, want) {
		t.Errorf("Drain values = %v, want %v", vals, want)
	}
	if m.Len() != 0 {
		t.Errorf("Len() after drain = %d, want 0", m.Len())
	}

	// The map is reusable after draining.
	m.Insert("z", 9)
	if got := m.Keys(); !slices.Equal(got, []string{"z"}) {
		t.Errorf("Keys() after reuse = %v", got)
	}
}

func TestOrderedMap_DrainStopEarly(t *testing.T) {
	m := NewOrderedMap[string, int]()
	for i, k := range []string{"a", "b", "c", "d"} {
		m.Insert(k, i)
	}

	for k := range m.Drain() {
		if k == "b" {
			break
		}
	}

	if got, want := m.Keys(), []string{"c", "d"}; !slices.Equal(got, want) {
		t.Errorf("remaining keys = %v, want %v", got, want)
	}
	if m.Contains("a") || m.Contains("b") {
		t.Error("visited entries should have been removed")
	}
}
