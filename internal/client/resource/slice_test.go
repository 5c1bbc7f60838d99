package resource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_ScenarioSecondPage(t *testing.T) {
	got := Page(named("A", 12), 1, 5)
	assert.Equal(t, []string{"A5", "A6", "A7", "A8", "A9"}, names(got))
}

func TestPage_ConcatenationRebuildsCollection(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 6, 12, 23} {
		items := named("R", n)
		for size := 1; size <= 7; size++ {
			var joined []item
			pages := PageCount(n, size)
			for idx := 0; idx < pages; idx++ {
				page := Page(items, idx, size)
				require.LessOrEqual(t, len(page), size)
				joined = append(joined, page...)
			}
			assert.Equal(t, names(items), names(joined), "n=%d size=%d", n, size)
			assert.Empty(t, Page(items, pages, size), "page past the end is empty")
		}
	}
}

func TestPage_OutOfRangeIsEmpty(t *testing.T) {
	items := named("A", 3)

	tests := []struct {
		name        string
		index, size int
		want        []string
	}{
		{name: "last partial page", index: 1, size: 2, want: []string{"A2"}},
		{name: "past the end", index: 5, size: 2, want: []string{}},
		{name: "negative index", index: -1, size: 2, want: []string{}},
		{name: "zero size", index: 0, size: 0, want: []string{}},
		{name: "negative size", index: 0, size: -3, want: []string{}},
		{name: "huge index", index: int(^uint(0) >> 1), size: 2, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(items, tt.index, tt.size)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 5))
	assert.Equal(t, 1, PageCount(5, 5))
	assert.Equal(t, 3, PageCount(12, 5))
	assert.Equal(t, 0, PageCount(12, 0))
}

func TestFilter_ScenarioPrefixCap(t *testing.T) {
	items := []item{
		{Name: "A10"}, {Name: "A11"}, {Name: "A12"}, {Name: "A13"},
		{Name: "A14"}, {Name: "A15"}, {Name: "B1"},
	}
	got := Filter(items, "a1", func(i item) string { return i.Name }, SearchLimit)
	assert.Equal(t, []string{"A10", "A11", "A12", "A13", "A14"}, names(got))
}

func TestFilter_EveryResultMatchesPrefix(t *testing.T) {
	items := []item{
		{Name: "alpha"}, {Name: "Alfred"}, {Name: "beta"}, {Name: "ALPS"},
		{Name: "xal"}, {Name: "al"}, {Name: ""},
	}
	key := func(i item) string { return i.Name }

	for _, q := range []string{"a", "AL", "alp", "b", "x", "zzz", "é"} {
		got := Filter(items, q, key, SearchLimit)
		assert.LessOrEqual(t, len(got), SearchLimit)
		for _, it := range got {
			assert.True(t, strings.HasPrefix(strings.ToLower(it.Name), strings.ToLower(q)), "%q does not start with %q", it.Name, q)
		}
	}
	assert.Equal(t, []string{"alpha", "Alfred", "ALPS", "al"}, names(Filter(items, "AL", key, SearchLimit)))
}

func TestFilter_NoLimit(t *testing.T) {
	got := Filter(named("A", 8), "a", func(i item) string { return i.Name }, 0)
	assert.Len(t, got, 8)
}

func TestVisible_EmptySearchShowsNothing(t *testing.T) {
	s := State[item]{Collection: named("A", 12), Display: DisplaySearch, PageSize: 5, Mode: Closed()}
	assert.Empty(t, Visible(s, testResource().searchKey))

	s.Search = "a"
	assert.Len(t, Visible(s, testResource().searchKey), SearchLimit)
}

func TestVisible_OpenFormShowsNothing(t *testing.T) {
	s := State[item]{Collection: named("A", 12), PageSize: 5, Mode: CreateMode()}
	assert.Empty(t, Visible(s, testResource().searchKey))

	s.Mode = EditMode(3)
	assert.Empty(t, Visible(s, testResource().searchKey))

	s.Mode = Closed()
	assert.Len(t, Visible(s, testResource().searchKey), 5)
}
