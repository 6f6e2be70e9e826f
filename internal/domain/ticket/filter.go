package ticket

import vo "helpdesk/internal/domain/ticket/valueobjects"

// Filter describes a ticket listing query. A non-empty Query requests a
// relevance-ranked full-text match over title, description and tags;
// otherwise results are ordered by descending creation time. Structured
// filters are ANDed with the text condition.
type Filter struct {
	Query      string
	Status     *vo.Status
	Priority   *vo.Priority
	AssigneeID *uint
	// Tags matches tickets whose tag set intersects this set.
	Tags []string

	Page  int
	Limit int
}

// HasQuery reports whether the filter carries a full-text search term.
func (f Filter) HasQuery() bool {
	return f.Query != ""
}
