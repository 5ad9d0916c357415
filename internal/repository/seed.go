package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/cirocosta/todo-tracker-go/internal/model"
)

// Seed populates an empty repository with a fixed set of sample items.
// A repository that already holds data is left untouched.
func Seed(ctx context.Context, repo TodoRepository) (int, error) {
	existing, err := repo.QueryAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("check existing todos: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	now := time.Now()

	samples := []struct {
		title, content, tag, priority, status string
		submitted                             time.Time
	}{
		{"Seed - Buy groceries", "Milk, eggs, bread, and vegetables.", "personal", model.PriorityHigh, model.StatusPending, now},
		{"Seed - Finish project", "Finalize and submit the client project.", "work", model.PriorityMedium, model.StatusCompleted, now.AddDate(0, 0, -2)},
		{"Seed - Call plumber", "Fix leaking kitchen sink.", "home", model.PriorityLow, model.StatusPending, now.AddDate(0, 0, -1)},
		{"Seed - Fix bugs", "Resolve reported UI issues and test again.", "work", model.PriorityHigh, model.StatusPending, now.AddDate(0, 0, -3)},
		{"Seed - Plan birthday party", "Book venue, order cake, and send invites.", "personal", model.PriorityMedium, model.StatusCompleted, now.AddDate(0, 0, -10)},
		{"Seed - Dentist appointment", "Routine checkup at 10am.", "health", model.PriorityHigh, model.StatusCancelled, now.AddDate(0, 0, -5)},
		{"Seed - Read a book", "Finish reading 'Atomic Habits'.", "leisure", model.PriorityLow, model.StatusPending, now.AddDate(0, 0, -7)},
		{"Seed - Submit tax returns", "Upload documents and submit via e-filing.", "finance", model.PriorityHigh, model.StatusCompleted, now.AddDate(0, 0, -15)},
		{"Seed - Team meeting", "Discuss sprint progress and blockers.", "work", model.PriorityMedium, model.StatusPending, now.AddDate(0, 0, -4)},
		{"Seed - Laundry", "Wash and fold clothes.", "home", model.PriorityLow, model.StatusCompleted, now.AddDate(0, 0, -6)},
		{"Seed - Workout", "Gym session: cardio and weights.", "health", model.PriorityMedium, model.StatusCancelled, now.AddDate(0, 0, -2)},
		{"Seed - Grocery shopping", "Weekly grocery run.", "personal", model.PriorityLow, model.StatusPending, now},
		{"Seed - Water plants", "Water all indoor and balcony plants.", "home", model.PriorityLow, model.StatusCompleted, now.AddDate(0, -1, 0)},
		{"Seed - Watch webinar", "Join the free webinar on software testing.", "learning", model.PriorityMedium, model.StatusCompleted, now.AddDate(0, -1, 0)},
		{"Seed - Pay bills", "Electricity, water, and internet bills due.", "finance", model.PriorityHigh, model.StatusCancelled, now.AddDate(0, -1, 0)},
	}

	for _, s := range samples {
		todo := model.Todo{
			Title:         s.title,
			Content:       s.content,
			Tag:           s.tag,
			Status:        s.status,
			Priority:      s.priority,
			SubmittedDate: s.submitted,
			CreatedDate:   now,
		}

		switch s.status {
		case model.StatusCompleted:
			completed := s.submitted.AddDate(0, 0, 1)
			todo.CompletedDate = &completed
		case model.StatusCancelled:
			cancelled := s.submitted.AddDate(0, 0, 1)
			todo.CancelledDate = &cancelled
		}

		if _, err := repo.Add(ctx, todo); err != nil {
			return 0, fmt.Errorf("seed %q: %w", s.title, err)
		}
	}

	return len(samples), nil
}
