// Package checklist reads and edits markdown task lists ("- [ ] item")
// embedded in task descriptions.
package checklist

import (
	"regexp"
	"strings"
)

const (
	boxUnchecked = "- [ ]"
	boxChecked   = "- [x]"
)

// captures indent, state and text: "  - [x] Task name"
var itemPattern = regexp.MustCompile(`^(\s*)[-*] \[([ xX])\] (.+)$`)

// Parse returns the checkboxes of content. Lines inside fenced code
// blocks are ignored.
func Parse(content string) []Item {
	var items []Item
	walk(content, func(lineNo int, m []string) {
		items = append(items, Item{
			Index:   len(items),
			Line:    lineNo,
			Indent:  m[1],
			Checked: strings.EqualFold(m[2], "x"),
			Text:    strings.TrimSpace(m[3]),
		})
	})
	return items
}

// Stats counts the checkboxes of content.
func Stats(content string) Progress {
	var p Progress
	for _, it := range Parse(content) {
		p.Total++
		if it.Checked {
			p.Completed++
		}
	}
	return p
}

// Set changes the state of the index-th checkbox and returns the new
// content. Other lines are kept byte for byte.
func Set(content string, index int, checked bool) (string, error) {
	lines := strings.Split(content, "\n")
	found := false
	n := 0
	walk(content, func(lineNo int, m []string) {
		if n == index {
			lines[lineNo] = render(m[1], checked, m[3])
			found = true
		}
		n++
	})
	if !found {
		return content, ErrItemNotFound
	}
	return strings.Join(lines, "\n"), nil
}

// SetAll checks or unchecks every checkbox.
func SetAll(content string, checked bool) string {
	lines := strings.Split(content, "\n")
	walk(content, func(lineNo int, m []string) {
		lines[lineNo] = render(m[1], checked, m[3])
	})
	return strings.Join(lines, "\n")
}

func render(indent string, checked bool, text string) string {
	box := boxUnchecked
	if checked {
		box = boxChecked
	}
	return indent + box + " " + text
}

// walk calls fn for every checkbox line outside fenced code.
func walk(content string, fn func(lineNo int, m []string)) {
	inFence := false
	for i, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := itemPattern.FindStringSubmatch(strings.TrimRight(line, "\r")); m != nil {
			fn(i, m)
		}
	}
}
