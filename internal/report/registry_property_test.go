package report

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// TestProperty_RegistryOrder 任意排序键组合下，列表按排序键非降序且相同键保持注册顺序
func TestProperty_RegistryOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sorts := rapid.SliceOfN(rapid.IntRange(-5, 5), 0, 30).Draw(t, "sorts")
		abstract := rapid.SliceOfN(rapid.Bool(), len(sorts), len(sorts)).Draw(t, "abstract")
		excluded := rapid.SliceOfN(rapid.Bool(), len(sorts), len(sorts)).Draw(t, "excluded")

		r := NewRegistry()
		position := make(map[string]int, len(sorts))
		for i, s := range sorts {
			id := fmt.Sprintf("r%d", i)
			position[id] = i
			abs := abstract[i]
			sort := s
			r.MustRegister(func() Report { return &stubReport{id: id, sort: sort, abstract: abs} })
			if excluded[i] {
				r.Exclude(id)
			}
		}

		entries := r.Reports().Entries()
		for i, e := range entries {
			p := position[e.ID]
			if abstract[p] {
				t.Fatalf("abstract report %s listed", e.ID)
			}
			if excluded[p] {
				t.Fatalf("excluded report %s listed", e.ID)
			}
			if i == 0 {
				continue
			}
			prev := entries[i-1]
			if prev.Sort > e.Sort {
				t.Fatalf("order broken: %s(%d) before %s(%d)", prev.ID, prev.Sort, e.ID, e.Sort)
			}
			if prev.Sort == e.Sort && position[prev.ID] > p {
				t.Fatalf("tie not stable: %s before %s", prev.ID, e.ID)
			}
		}

		want := 0
		for i := range sorts {
			if !abstract[i] && !excluded[i] {
				want++
			}
		}
		if len(entries) != want {
			t.Fatalf("got %d reports, want %d", len(entries), want)
		}
	})
}
