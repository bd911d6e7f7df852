package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBuilderIsImmutable(t *testing.T) {
	base := From("blueprints")

	withFilter := base.Eq("user_id", "u1")
	withTwo := withFilter.Eq("is_public", true)

	assert.Empty(t, base.Filters)
	assert.Len(t, withFilter.Filters, 1)
	assert.Len(t, withTwo.Filters, 2)
}

func TestQueryBranchingDoesNotShareFilters(t *testing.T) {
	base := From("blueprints").Eq("user_id", "u1")

	a := base.Eq("name", "A")
	b := base.Eq("name", "B")

	require.Len(t, a.Filters, 2)
	require.Len(t, b.Filters, 2)
	assert.Equal(t, "A", a.Filters[1].Value)
	assert.Equal(t, "B", b.Filters[1].Value)
}

func TestOrderByLastCallWins(t *testing.T) {
	q := From("t").OrderBy("a", true).OrderBy("b", false)
	require.NotNil(t, q.OrderKey)
	assert.Equal(t, "b", q.OrderKey.Column)
	assert.False(t, q.OrderKey.Ascending)
}

func TestVerbStaging(t *testing.T) {
	assert.Equal(t, VerbSelect, From("t").Verb)
	assert.Equal(t, VerbInsert, From("t").Insert(Row{"a": 1}).Verb)
	assert.Equal(t, VerbUpdate, From("t").Update(Row{"a": 1}).Verb)
	assert.Equal(t, VerbDelete, From("t").Delete().Verb)
}

func TestRowHelpers(t *testing.T) {
	r := Row{"id": "x", "name": "A", "n": 1.0}
	assert.Equal(t, "x", r.ID())
	assert.Equal(t, "A", r.String("name"))
	assert.Equal(t, "", r.String("n"))

	c := r.Clone()
	c["name"] = "B"
	assert.Equal(t, "A", r.String("name"))
}
