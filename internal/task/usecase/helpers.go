package usecase

import (
	"strings"

	"productivity-assistant/internal/task"
	"productivity-assistant/internal/task/repository"
	"productivity-assistant/pkg/apiclient"
)

// notFound turns a backend 404 into ErrTaskNotFound.
func notFound(err error) error {
	if apiclient.IsNotFound(err) {
		return task.ErrTaskNotFound
	}
	return err
}

// normalizeTags trims each comma separated tag and drops empty ones.
func normalizeTags(raw string) string {
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}

func isEmptyUpdate(opt repository.UpdateOptions) bool {
	return opt.Title == nil && opt.Description == nil && opt.Priority == nil &&
		opt.Status == nil && opt.DueDate == nil && opt.ReminderDate == nil &&
		opt.Tags == nil && opt.Category == nil
}
