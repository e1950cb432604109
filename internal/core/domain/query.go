package domain

// DefaultListLimit is the page size when a list query does not set one.
const DefaultListLimit = 25

// MaxListLimit caps the page size a client may request.
const MaxListLimit = 100

// DateRange bounds a date column; either end may be open.
type DateRange struct {
	From *Date
	To   *Date
}

// ListQuery describes a filtered, searched and paginated list read.
// Keys in Filters, AnyOf, Ranges and Flags name logical filters, not columns;
// each store resolves them against its own allow-list.
type ListQuery struct {
	Filters map[string]string
	AnyOf   map[string][]string
	Ranges  map[string]DateRange
	Flags   []string
	Search  string
	Limit   int
	Offset  int
}

// Normalized returns a copy with the paging fields clamped.
func (q ListQuery) Normalized() ListQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultListLimit
	}
	if q.Limit > MaxListLimit {
		q.Limit = MaxListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

// WithFilter returns a copy of q with an exact-match filter set. Empty values are ignored.
func (q ListQuery) WithFilter(key, value string) ListQuery {
	if value == "" {
		return q
	}
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[key] = value
	q.Filters = filters
	return q
}

// Page is one slice of a list result together with the total match count.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
