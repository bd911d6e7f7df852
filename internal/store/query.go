package store

// Verb is the single staged mutation (or bare select) of a query.
type Verb int

const (
	VerbSelect Verb = iota
	VerbInsert
	VerbUpdate
	VerbDelete
)

// Filter is one equality predicate. Multiple filters AND together.
type Filter struct {
	Column string
	Value  interface{}
}

// Order is the single sort key of a select; comparison is lexicographic on
// the string form of the column. Callers needing chronological order store
// ISO 8601 timestamps, which sort consistently.
type Order struct {
	Column    string
	Ascending bool
}

// Query is an immutable request value. Every builder method returns a new
// Query; the original is never touched, so a partially built query can be
// reused and shared safely. Exactly one verb may be staged; mixing insert,
// update and delete on one query is unsupported.
type Query struct {
	Table      string
	Projection string
	Filters    []Filter
	OrderKey   *Order
	Verb       Verb
	InsertRows []Row
	Patch      Row
	Want       bool // single-row result requested
}

// From starts a query against a table. The zero projection selects all
// columns.
func From(table string) Query {
	return Query{Table: table, Projection: "*"}
}

// Select sets the projection. A projection naming a foreign table in the
// form "*, composition_types(name)" asks the engine to attach the matching
// foreign row under that table's name.
func (q Query) Select(projection string) Query {
	q.Projection = projection
	return q
}

// Eq appends an equality predicate.
func (q Query) Eq(column string, value interface{}) Query {
	filters := make([]Filter, len(q.Filters), len(q.Filters)+1)
	copy(filters, q.Filters)
	q.Filters = append(filters, Filter{Column: column, Value: value})
	return q
}

// OrderBy records the sort key. Last call wins; there is no multi-key sort.
func (q Query) OrderBy(column string, ascending bool) Query {
	q.OrderKey = &Order{Column: column, Ascending: ascending}
	return q
}

// Insert stages one or more new rows. The engine assigns id and timestamps.
func (q Query) Insert(rows ...Row) Query {
	q.Verb = VerbInsert
	q.InsertRows = rows
	return q
}

// Update stages a merge-patch applied to every row matching the filters.
func (q Query) Update(patch Row) Query {
	q.Verb = VerbUpdate
	q.Patch = patch
	return q
}

// Delete stages removal of every row matching the filters.
func (q Query) Delete() Query {
	q.Verb = VerbDelete
	return q
}

// Single requests exactly one result row; execution yields ErrNotFound when
// nothing matches.
func (q Query) Single() Query {
	q.Want = true
	return q
}
