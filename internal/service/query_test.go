package service

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/cirocosta/todo-tracker-go/internal/model"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestMatchesFilter(t *testing.T) {
	t.Parallel()

	deleted := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	base := model.Todo{
		ID:            1,
		Title:         "Team meeting",
		Content:       "Discuss sprint progress",
		Tag:           "work",
		Status:        model.StatusPending,
		Priority:      model.PriorityHigh,
		SubmittedDate: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	for name, tc := range map[string]struct {
		todo   model.Todo
		filter model.Filter
		want   bool
	}{
		"empty filter matches": {
			todo:   base,
			filter: model.Filter{},
			want:   true,
		},
		"deleted never matches": {
			todo: func() model.Todo {
				todo := base
				todo.DeletedDate = &deleted
				return todo
			}(),
			filter: model.Filter{},
			want:   false,
		},
		"status match": {
			todo:   base,
			filter: model.Filter{Status: model.StatusPending},
			want:   true,
		},
		"status mismatch": {
			todo:   base,
			filter: model.Filter{Status: model.StatusCompleted},
			want:   false,
		},
		"priority mismatch": {
			todo:   base,
			filter: model.Filter{Priority: model.PriorityLow},
			want:   false,
		},
		"tag mismatch": {
			todo:   base,
			filter: model.Filter{Tag: "personal"},
			want:   false,
		},
		"year match": {
			todo:   base,
			filter: model.Filter{Year: 2025},
			want:   true,
		},
		"year mismatch": {
			todo:   base,
			filter: model.Filter{Year: 2024},
			want:   false,
		},
		"month mismatch": {
			todo:   base,
			filter: model.Filter{Month: 4},
			want:   false,
		},
		"search hits title case-insensitively": {
			todo:   base,
			filter: model.Filter{SearchText: "MEETING"},
			want:   true,
		},
		"search hits content": {
			todo:   base,
			filter: model.Filter{SearchText: "sprint"},
			want:   true,
		},
		"search hits tag": {
			todo:   base,
			filter: model.Filter{SearchText: "wor"},
			want:   true,
		},
		"search miss": {
			todo:   base,
			filter: model.Filter{SearchText: "groceries"},
			want:   false,
		},
		"criteria are AND-combined": {
			todo:   base,
			filter: model.Filter{Status: model.StatusPending, Tag: "personal"},
			want:   false,
		},
		"all criteria together": {
			todo: base,
			filter: model.Filter{
				Status:     model.StatusPending,
				Priority:   model.PriorityHigh,
				Tag:        "work",
				Year:       2025,
				Month:      3,
				SearchText: "meeting",
			},
			want: true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, matchesFilter(tc.todo, tc.filter))
		})
	}
}

func TestPriorityRank(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, priorityRank(model.PriorityHigh))
	assert.Equal(t, 2, priorityRank(model.PriorityMedium))
	assert.Equal(t, 1, priorityRank(model.PriorityLow))
	assert.Equal(t, 0, priorityRank("Urgent"))
	assert.Equal(t, 0, priorityRank(""))
}

func TestSortForList(t *testing.T) {
	t.Parallel()

	mkTodos := func() []model.Todo {
		return []model.Todo{
			{ID: 1, Priority: model.PriorityLow, SubmittedDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Priority: model.PriorityHigh, SubmittedDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 3, Priority: model.PriorityMedium, SubmittedDate: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)},
		}
	}

	for name, tc := range map[string]struct {
		sortField     string
		sortDirection string
		wantIDs       []int64
	}{
		"priority descending": {
			sortField:     "priority",
			sortDirection: "desc",
			wantIDs:       []int64{2, 3, 1},
		},
		"priority ascending": {
			sortField:     "priority",
			sortDirection: "asc",
			wantIDs:       []int64{1, 3, 2},
		},
		"submitted date descending": {
			sortField:     "submittedDate",
			sortDirection: "desc",
			wantIDs:       []int64{3, 1, 2},
		},
		"submitted date ascending": {
			sortField:     "submittedDate",
			sortDirection: "asc",
			wantIDs:       []int64{2, 1, 3},
		},
		"unknown field falls back to newest first": {
			sortField:     "title",
			sortDirection: "desc",
			wantIDs:       []int64{3, 1, 2},
		},
		"unknown field ignores direction": {
			sortField:     "title",
			sortDirection: "asc",
			wantIDs:       []int64{3, 1, 2},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			todos := mkTodos()
			sortForList(todos, tc.sortField, tc.sortDirection)

			gotIDs := make([]int64, 0, len(todos))
			for _, todo := range todos {
				gotIDs = append(gotIDs, todo.ID)
			}

			if diff := cmp.Diff(tc.wantIDs, gotIDs); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortForPage(t *testing.T) {
	t.Parallel()

	todos := []model.Todo{
		{ID: 1, Priority: model.PriorityMedium, SubmittedDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Priority: model.PriorityHigh, SubmittedDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Priority: model.PriorityHigh, SubmittedDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: 4, Priority: model.PriorityLow, SubmittedDate: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)},
	}

	sortForPage(todos)

	gotIDs := make([]int64, 0, len(todos))
	for _, todo := range todos {
		gotIDs = append(gotIDs, todo.ID)
	}

	// high before medium before low, ties newest-first
	if diff := cmp.Diff([]int64{3, 2, 1, 4}, gotIDs); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestPageWindow(t *testing.T) {
	t.Parallel()

	todos := []model.Todo{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}

	for name, tc := range map[string]struct {
		page     int
		pageSize int
		wantIDs  []int64
	}{
		"first page":        {page: 1, pageSize: 2, wantIDs: []int64{1, 2}},
		"middle page":       {page: 2, pageSize: 2, wantIDs: []int64{3, 4}},
		"short last page":   {page: 3, pageSize: 2, wantIDs: []int64{5}},
		"page past the end": {page: 4, pageSize: 2, wantIDs: []int64{}},
		"single big page":   {page: 1, pageSize: 10, wantIDs: []int64{1, 2, 3, 4, 5}},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := pageWindow(todos, tc.page, tc.pageSize)

			gotIDs := make([]int64, 0, len(got))
			for _, todo := range got {
				gotIDs = append(gotIDs, todo.ID)
			}

			if diff := cmp.Diff(tc.wantIDs, gotIDs); diff != "" {
				t.Errorf("window mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(1, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 2, totalPages(4, 2))
}
