package rest

import (
	"time"

	"productivity-assistant/internal/search"
	"productivity-assistant/pkg/apiclient"
)

type resultDTO struct {
	Title   string         `json:"title"`
	URL     string         `json:"url"`
	Snippet string         `json:"snippet"`
	Source  string         `json:"source"`
	Date    apiclient.Time `json:"date"`
}

func (d resultDTO) toDomain() search.Result {
	return search.Result{
		Title:   d.Title,
		URL:     d.URL,
		Snippet: d.Snippet,
		Source:  d.Source,
		Date:    d.Date.Time,
	}
}

// searchResp carries search_time in seconds.
type searchResp struct {
	Query        string      `json:"query"`
	Results      []resultDTO `json:"results"`
	TotalResults int         `json:"total_results"`
	SearchTime   float64     `json:"search_time"`
}

func (r searchResp) took() time.Duration {
	return time.Duration(r.SearchTime * float64(time.Second))
}

type suggestionsResp struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}
