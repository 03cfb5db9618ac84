package output

import "context"

// SearchPort abstracts the external web-search API. Providers must apply a
// bounded timeout and map failures onto entity.ErrSearchUnavailable or
// entity.ErrNoResults.
type SearchPort interface {
	Search(ctx context.Context, query string) (*SearchResult, error)
}

type SearchResult struct {
	Title    string
	URL      string
	Synopsis string
	Source   string
}
