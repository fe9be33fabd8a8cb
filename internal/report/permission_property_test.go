package report

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestAggregateProperty 拒绝优先于允许，允许优先于弃权
func TestAggregateProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	decisions := gen.SliceOf(gen.IntRange(0, 2))

	properties.Property("any deny yields deny", prop.ForAll(
		func(raw []int) bool {
			ds := toDecisions(raw)
			hasDeny := false
			for _, d := range ds {
				if d == Deny {
					hasDeny = true
				}
			}
			return (Aggregate(ds...) == Deny) == hasDeny
		},
		decisions,
	))

	properties.Property("allow without deny yields allow", prop.ForAll(
		func(raw []int) bool {
			ds := append(toDecisions(raw), Allow)
			for _, d := range ds {
				if d == Deny {
					return Aggregate(ds...) == Deny
				}
			}
			return Aggregate(ds...) == Allow
		},
		decisions,
	))

	properties.Property("order does not matter", prop.ForAll(
		func(raw []int) bool {
			ds := toDecisions(raw)
			reversed := make([]Decision, len(ds))
			for i, d := range ds {
				reversed[len(ds)-1-i] = d
			}
			return Aggregate(ds...) == Aggregate(reversed...)
		},
		decisions,
	))

	properties.TestingRun(t)
}

func toDecisions(raw []int) []Decision {
	ds := make([]Decision, len(raw))
	for i, v := range raw {
		ds[i] = Decision(v)
	}
	return ds
}
