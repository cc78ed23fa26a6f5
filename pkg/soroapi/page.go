package soroapi

import (
	"net/url"
	"strconv"
)

// Default and maximum page sizes enforced by the server for cursor-paginated
// list endpoints.
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// PageInfo describes the position of a returned page within the full result
// set. Cursors are opaque server-minted tokens, pass them back verbatim via
// Pagination's After/Before, never construct or decompose them.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

// Page is a single page of a cursor-paginated result set. TotalCount covers
// the full result set, not just the returned items.
type Page[T any] struct {
	Items      []T      `json:"items"`
	PageInfo   PageInfo `json:"pageInfo"`
	TotalCount int      `json:"totalCount"`
}

// Pagination is a set of cursor-pagination parameters shared by all list
// requests. Zero values mean "not set" and are omitted from the query.
type Pagination struct {
	// First requests that many items from the start of the result set
	// (or after the After cursor). Capped at MaxPageSize by the server.
	First int
	// Last requests that many items from the end of the result set
	// (or before the Before cursor).
	Last int
	// After resumes the query after the given end cursor.
	After string
	// Before resumes the query before the given start cursor.
	Before string
}

func (p Pagination) appendQuery(values url.Values) {
	if p.First != 0 {
		values.Set("first", strconv.Itoa(p.First))
	}
	if p.Last != 0 {
		values.Set("last", strconv.Itoa(p.Last))
	}
	if p.After != "" {
		values.Set("after", p.After)
	}
	if p.Before != "" {
		values.Set("before", p.Before)
	}
}

// Values returns pagination parameters as URL query values.
func (p Pagination) Values() url.Values {
	values := make(url.Values)
	p.appendQuery(values)
	return values
}
