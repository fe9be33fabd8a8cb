package logic

import (
	"testing"

	"yqhp/reports/internal/report"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParseFilters(t *testing.T) {
	got := ParseFilters(map[string]string{
		"filters[CheckSite]": "Draft",
		"filters[Reason]":    "  BROKENFILE ",
		"filters[Empty]":     "",
		"filters[]":          "x",
		"filters[  ]":        "x",
		"page":               "2",
		"filters[Open":       "y",
	})
	assert.Equal(t, report.Params{"CheckSite": "Draft", "Reason": "  BROKENFILE ", "Empty": ""}, got)
}

func TestParseFilters_ValuesUnmodified(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z][A-Za-z0-9]{0,11}`).Draw(t, "name")
		value := rapid.String().Draw(t, "value")

		got := ParseFilters(map[string]string{FilterPrefix + "[" + name + "]": value})
		if v, ok := got[name]; !ok || v != value {
			t.Fatalf("filter %q: got %q (present=%v), want %q", name, v, ok, value)
		}
	})
}

func TestSortKey(t *testing.T) {
	cols := report.Columns{{Key: "Title"}, {Key: "Parent.Title"}}
	assert.Equal(t, "Title", sortKey(cols, "Title"))
	assert.Equal(t, "Parent.Title", sortKey(cols, "Parent.Title"))
	assert.Empty(t, sortKey(cols, "CMSEditLink"))
	assert.Empty(t, sortKey(cols, "Delete"))
	assert.Empty(t, sortKey(nil, "Title"))
}

func TestFormFields(t *testing.T) {
	fields := []report.Field{
		{Name: "CheckSite", Title: "Check site", Type: "dropdown", Value: "Published"},
		{Name: "Reason", Title: "Problem in", Type: "dropdown"},
	}
	got := formFields(fields, report.Params{"CheckSite": "Draft"})

	assert.Equal(t, "filters[CheckSite]", got[0].Name)
	assert.Equal(t, "Draft", got[0].Value)
	assert.Equal(t, "filters[Reason]", got[1].Name)
	assert.Empty(t, got[1].Value)
}
