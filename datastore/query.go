/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

// FilterOperator is one comparison operator a backend can execute.
type FilterOperator int

const (
	// Equal matches records whose attribute equals the parameter. For a
	// multi-valued attribute the backend treats equality as an
	// element-containment test.
	Equal FilterOperator = iota
	// NotEqual matches records whose attribute differs from the parameter.
	NotEqual
	// LessThan matches records whose attribute orders before the parameter.
	LessThan
	// LessThanOrEqual matches records whose attribute orders before or
	// equals the parameter.
	LessThanOrEqual
	// GreaterThan matches records whose attribute orders after the parameter.
	GreaterThan
	// GreaterThanOrEqual matches records whose attribute orders after or
	// equals the parameter.
	GreaterThanOrEqual
	// In matches records whose attribute equals any of the parameter's
	// candidate values.
	In
	// IsNotNull matches records on which the attribute is set.
	IsNotNull
)

func (op FilterOperator) String() string {
	switch op {
	case Equal:
		return "="
	case NotEqual:
		return "<>"
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	case In:
		return "IN"
	case IsNotNull:
		return "IS NOT NULL"
	default:
		return "unknown"
	}
}

// Filter is one filter term: attribute name, operator, parameter value.
type Filter struct {
	Name     string
	Operator FilterOperator
	Value    Value
}

// FilterCriterion is a predicate bound to one attribute that knows how to
// contribute its filter term to a query.
type FilterCriterion interface {
	// Apply appends exactly one filter term to the query. It never
	// reorders or removes terms already present.
	Apply(q *Query)
}

// Query accumulates filter terms before execution against a backend.
// Terms are kept in append order; applying a sequence of criteria
// expresses their conjunction. Query is not safe for concurrent
// mutation; the enclosing query builder owns it.
type Query struct {
	kind        string
	filters     []Filter
	limit       *int32
	index       *string
	scanForward *bool
	startKey    map[string]Value
}

// NewQuery creates an empty query over records of the given kind.
func NewQuery(kind string) *Query {
	return &Query{kind: kind}
}

// Kind returns the record kind the query targets.
func (q *Query) Kind() string {
	return q.kind
}

// AddFilter appends one filter term to the query.
func (q *Query) AddFilter(name string, op FilterOperator, value Value) {
	q.filters = append(q.filters, Filter{Name: name, Operator: op, Value: value})
}

// Filters returns the accumulated filter terms in append order.
// The returned slice is a copy.
func (q *Query) Filters() []Filter {
	out := make([]Filter, len(q.filters))
	copy(out, q.filters)
	return out
}

// WithCriteria applies each criterion in order and returns the query.
func (q *Query) WithCriteria(criteria ...FilterCriterion) *Query {
	for _, c := range criteria {
		c.Apply(q)
	}
	return q
}

// WithLimit caps the number of records the backend returns.
func (q *Query) WithLimit(limit int32) *Query {
	q.limit = &limit
	return q
}

// Limit returns the configured limit, or nil when unlimited.
func (q *Query) Limit() *int32 {
	return q.limit
}

// WithIndex directs the backend to a named secondary index.
func (q *Query) WithIndex(name string) *Query {
	q.index = &name
	return q
}

// Index returns the configured index name, or nil for the default index.
func (q *Query) Index() *string {
	return q.index
}

// WithScanForward sets the traversal order for ordered backends.
// True (the default) traverses ascending.
func (q *Query) WithScanForward(forward bool) *Query {
	q.scanForward = &forward
	return q
}

// ScanForward returns the configured traversal order, or nil for the
// backend default.
func (q *Query) ScanForward() *bool {
	return q.scanForward
}

// WithStartKey resumes the query after the given key, for pagination.
func (q *Query) WithStartKey(key map[string]Value) *Query {
	q.startKey = key
	return q
}

// StartKey returns the pagination start key, or nil.
func (q *Query) StartKey() map[string]Value {
	return q.startKey
}
