package service

import (
	"sort"
	"strings"

	"github.com/cirocosta/todo-tracker-go/internal/model"
)

// sort field names accepted by the unpaged listing
const (
	sortFieldPriority      = "priority"
	sortFieldSubmittedDate = "submittedDate"
)

// applyFilter returns the items matching every active criterion. Criteria
// are AND-combined; a blank or zero criterion places no constraint.
// Soft-deleted items never match.
func applyFilter(todos []model.Todo, filter model.Filter) []model.Todo {
	matched := make([]model.Todo, 0, len(todos))
	for _, todo := range todos {
		if matchesFilter(todo, filter) {
			matched = append(matched, todo)
		}
	}
	return matched
}

func matchesFilter(todo model.Todo, filter model.Filter) bool {
	if todo.Deleted() {
		return false
	}
	if filter.Status != "" && todo.Status != filter.Status {
		return false
	}
	if filter.Priority != "" && todo.Priority != filter.Priority {
		return false
	}
	if filter.Tag != "" && todo.Tag != filter.Tag {
		return false
	}
	if filter.Year > 0 && todo.SubmittedDate.Year() != filter.Year {
		return false
	}
	if filter.Month > 0 && int(todo.SubmittedDate.Month()) != filter.Month {
		return false
	}
	if filter.SearchText != "" {
		keyword := strings.ToLower(filter.SearchText)
		if !strings.Contains(strings.ToLower(todo.Title), keyword) &&
			!strings.Contains(strings.ToLower(todo.Content), keyword) &&
			!strings.Contains(strings.ToLower(todo.Tag), keyword) {
			return false
		}
	}
	return true
}

// priorityRank maps a priority to its sort rank. Unknown values rank below
// Low so they sink to the bottom of an urgency-first ordering.
func priorityRank(priority string) int {
	switch priority {
	case model.PriorityHigh:
		return 3
	case model.PriorityMedium:
		return 2
	case model.PriorityLow:
		return 1
	default:
		return 0
	}
}

// sortForList orders items by the caller-chosen field and direction. An
// unrecognized sort field falls back to newest-first, whatever the requested
// direction.
func sortForList(todos []model.Todo, sortField, sortDirection string) {
	descending := strings.ToLower(sortDirection) == "desc"

	switch sortField {
	case sortFieldPriority:
		sort.SliceStable(todos, func(i, j int) bool {
			ri, rj := priorityRank(todos[i].Priority), priorityRank(todos[j].Priority)
			if descending {
				return ri > rj
			}
			return ri < rj
		})
	case sortFieldSubmittedDate:
		sort.SliceStable(todos, func(i, j int) bool {
			if descending {
				return todos[i].SubmittedDate.After(todos[j].SubmittedDate)
			}
			return todos[i].SubmittedDate.Before(todos[j].SubmittedDate)
		})
	default:
		sort.SliceStable(todos, func(i, j int) bool {
			return todos[i].SubmittedDate.After(todos[j].SubmittedDate)
		})
	}
}

// sortForPage applies the fixed ordering of the paged listing: priority rank
// descending, ties broken by submitted date descending. The caller's sort
// preference is deliberately not consulted here.
func sortForPage(todos []model.Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		ri, rj := priorityRank(todos[i].Priority), priorityRank(todos[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return todos[i].SubmittedDate.After(todos[j].SubmittedDate)
	})
}

// pageWindow cuts one page out of the already-sorted slice. page is assumed
// to be >= 1 and pageSize > 0. A page past the end yields an empty window.
func pageWindow(todos []model.Todo, page, pageSize int) []model.Todo {
	start := (page - 1) * pageSize
	if start >= len(todos) {
		return []model.Todo{}
	}

	end := start + pageSize
	if end > len(todos) {
		end = len(todos)
	}

	return todos[start:end]
}

// totalPages computes ceil(total / pageSize) for pageSize > 0.
func totalPages(total, pageSize int) int {
	return (total + pageSize - 1) / pageSize
}
