package task

import "errors"

var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrInvalidID       = errors.New("invalid task id")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyUpdate     = errors.New("nothing to update")
	ErrInvalidIndex    = errors.New("invalid checklist index")
	ErrNoChecklistItem = errors.New("task has no such checklist item")
)
