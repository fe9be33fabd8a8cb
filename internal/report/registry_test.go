package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterRejectsInvalid(t *testing.T) {
	r := NewRegistry()

	assert.ErrorIs(t, r.Register(nil), ErrNilFactory)
	assert.ErrorIs(t, r.Register(func() Report { return nil }), ErrNilFactory)
	assert.ErrorIs(t, r.Register(func() Report { return &noSourceReport{} }), ErrMissingSource)
	assert.ErrorIs(t, r.Register(stub("bad-id", 0)), ErrInvalidID)
	assert.ErrorIs(t, r.Register(stub("", 0)), ErrInvalidID)

	require.NoError(t, r.Register(stub("a", 0)))
	assert.ErrorIs(t, r.Register(stub("a", 1)), ErrDuplicateReport)
	assert.Equal(t, []string{"a"}, r.IDs())
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() {
		r.MustRegister(func() Report { return &noSourceReport{} })
	})
}

func TestRegistry_AbstractWithoutSourceIsAccepted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(func() Report { return &abstractBase{} }))
	assert.Zero(t, r.Reports().Len())
}

type abstractBase struct{ Base }

func (abstractBase) IsAbstract() bool { return true }

func TestRegistry_ReportsSortedBySortKey(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(stub("r100", 100))
	r.MustRegister(stub("r98", 98))
	r.MustRegister(func() Report { return &stubReport{id: "abstract5", sort: 5, abstract: true} })

	got := r.Reports()
	sorts := make([]int, 0, got.Len())
	for _, e := range got.Entries() {
		sorts = append(sorts, e.Sort)
	}
	if diff := cmp.Diff([]int{98, 100}, sorts); diff != "" {
		t.Fatalf("sort keys mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"r98", "r100"}, got.IDs())
}

func TestRegistry_TiesKeepRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(stub("first", 1))
	r.MustRegister(stub("zero", 0))
	r.MustRegister(stub("second", 1))
	r.MustRegister(stub("third", 1))

	assert.Equal(t, []string{"zero", "first", "second", "third"}, r.Reports().IDs())
}

func TestRegistry_Exclusion(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(stub("keep", 0))
	r.MustRegister(stub("drop", 0))

	r.Exclude("drop")
	assert.Equal(t, []string{"keep"}, r.Reports().IDs())
	assert.True(t, r.IsExcluded("drop"))

	r.SetExcluded(nil)
	assert.Equal(t, []string{"keep", "drop"}, r.Reports().IDs())
	assert.Empty(t, r.Excluded())
}

func TestRegistry_RejectsBuiltinTypes(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.Register(func() Report { return Base{} }), ErrBuiltinReport)
	assert.ErrorIs(t, r.Register(func() Report { return &Base{} }), ErrBuiltinReport)
	assert.ErrorIs(t, r.Register(func() Report { return &Wrapper{} }), ErrBuiltinReport)
	assert.ErrorIs(t, r.Register(func() Report { return &SideWrapper{} }), ErrBuiltinReport)
	assert.Empty(t, r.IDs())
}

func TestRegistry_ExcludeAfterDiscovery(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(stub("a", 0))
	r.MustRegister(stub("b", 0))

	first := r.Reports()
	require.Equal(t, 2, first.Len())

	r.Exclude("a")
	second := r.Reports()
	assert.Equal(t, []string{"b"}, second.IDs())
	assert.Equal(t, 2, first.Len(), "earlier collections are not mutated")
}

func TestRegistry_ExcludedReportsAreNotInstantiated(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.MustRegister(func() Report {
		calls++
		return &stubReport{id: "counted"}
	})
	calls = 0

	r.Exclude("counted")
	r.Reports()
	assert.Zero(t, calls)
}

func TestRegistry_Empty(t *testing.T) {
	got := NewRegistry().Reports()
	assert.Zero(t, got.Len())
	assert.Empty(t, got.Entries())
}

func TestRegistry_SortEvaluatedOnce(t *testing.T) {
	r := NewRegistry()
	var evaluated int
	r.MustRegister(func() Report { return &countingSort{evaluated: &evaluated} })
	evaluated = 0

	r.Reports()
	assert.Equal(t, 1, evaluated)
}

type countingSort struct {
	plainReport
	evaluated *int
}

func (c *countingSort) Sort() int {
	*c.evaluated++
	return 1
}

func TestRegistry_CreateAndCollection(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(stub("a", 0))

	rep, ok := r.Create("a")
	require.True(t, ok)
	assert.Equal(t, "a", ID(rep))

	_, ok = r.Create("missing")
	assert.False(t, ok)

	col := r.Reports()
	got, ok := col.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.Title())

	filtered := col.Filter(func(Report) bool { return false })
	assert.Zero(t, filtered.Len())
}
