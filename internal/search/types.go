package search

import "time"

type SearchInput struct {
	Query string
	Limit int
}

// Result is one web hit. Date is zero when the source gives none.
type Result struct {
	Title   string
	URL     string
	Snippet string
	Source  string
	Date    time.Time
}

type SearchOutput struct {
	Query   string
	Results []Result
	Total   int
	Took    time.Duration
}
