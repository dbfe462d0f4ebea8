package usecase

import (
	"context"

	"productivity-assistant/internal/calendar"
	"productivity-assistant/internal/suggestion"
	"productivity-assistant/internal/task"
)

// dispatch carries out the payload of an accepted suggestion.
func (uc *implUseCase) dispatch(ctx context.Context, s suggestion.Suggestion, out *suggestion.AcceptOutput) error {
	switch p := s.Payload.(type) {
	case suggestion.TaskPayload:
		if uc.tasks == nil {
			return nil
		}
		t, err := uc.tasks.Create(ctx, task.CreateInput{
			Title:       firstNonEmpty(p.Title, s.Title),
			Description: firstNonEmpty(p.Description, s.Description),
			Priority:    p.Priority,
			DueDate:     p.DueDate,
			Tags:        p.Tags,
			Category:    p.Category,
		})
		if err != nil {
			return err
		}
		out.Task = &t

	case suggestion.EventPayload:
		if uc.events == nil {
			return nil
		}
		ev, err := uc.events.Create(ctx, calendar.CreateInput{
			Title:       firstNonEmpty(p.Title, s.Title),
			Description: firstNonEmpty(p.Description, s.Description),
			StartTime:   p.StartTime,
			EndTime:     p.EndTime,
			Location:    p.Location,
			Attendees:   p.Attendees,
		})
		if err != nil {
			return err
		}
		out.Event = &ev

	case suggestion.GenericPayload, nil:
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
