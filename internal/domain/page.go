package domain

// Pagination counters for a query window.
// The query layer guarantees Offset < Total whenever Total > 0 before any
// formatter sees a Page.
type Page struct {
	Total  int
	Offset int
	Limit  int
}
