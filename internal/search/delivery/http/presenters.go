package http

import (
	"productivity-assistant/internal/search"
	"productivity-assistant/pkg/response"
)

type searchReq struct {
	Query string `form:"q"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=20"`
}

func (r searchReq) toInput() search.SearchInput {
	return search.SearchInput{Query: r.Query, Limit: r.Limit}
}

type suggestionsReq struct {
	Query string `form:"q"`
}

type resultResp struct {
	Title   string             `json:"title"`
	URL     string             `json:"url"`
	Snippet string             `json:"snippet"`
	Source  string             `json:"source"`
	Date    *response.DateTime `json:"date,omitempty"`
}

type searchResp struct {
	Query        string       `json:"query"`
	Results      []resultResp `json:"results"`
	TotalResults int          `json:"total_results"`
	SearchTime   float64      `json:"search_time"`
}

func newSearchResp(out search.SearchOutput) searchResp {
	resp := searchResp{
		Query:        out.Query,
		Results:      make([]resultResp, len(out.Results)),
		TotalResults: out.Total,
		SearchTime:   out.Took.Seconds(),
	}
	for i, r := range out.Results {
		resp.Results[i] = resultResp{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Snippet,
			Source:  r.Source,
		}
		if !r.Date.IsZero() {
			d := response.DateTime(r.Date)
			resp.Results[i].Date = &d
		}
	}
	return resp
}

type suggestionsResp struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}
