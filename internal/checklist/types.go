package checklist

import "errors"

// Item is one markdown checkbox line.
type Item struct {
	// Index counts checkboxes from zero in document order.
	Index   int
	Line    int
	Indent  string
	Checked bool
	Text    string
}

// Progress summarizes the checkboxes of a document.
type Progress struct {
	Total     int
	Completed int
}

func (p Progress) Pending() int { return p.Total - p.Completed }

// Percent is 0 for a document without checkboxes.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total) * 100
}

// Done reports whether there is at least one checkbox and all are checked.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed == p.Total
}

var ErrItemNotFound = errors.New("checklist item not found")
