package repository

import "productivity-assistant/internal/suggestion"

type ListOptions struct {
	Kind  suggestion.Kind // empty for all
	Limit int
}

type ListResult struct {
	Suggestions []suggestion.Suggestion
	Total       int
}

type AcceptResult struct {
	Message     string
	ActionTaken string
}

type GenerateResult struct {
	Message string
	Count   int
	Titles  []string
}
