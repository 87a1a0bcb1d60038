package model_test

import (
	"testing"
	"time"

	"github.com/nhle/taskboard/internal/model"
)

func TestStatusValidAndColumnIndex(t *testing.T) {
	for i, status := range model.AllStatuses {
		if !status.Valid() {
			t.Errorf("%q.Valid() = false", status)
		}
		if got := status.ColumnIndex(); got != i {
			t.Errorf("%q.ColumnIndex() = %d, want %d", status, got, i)
		}
	}
	if model.Status("archived").Valid() {
		t.Error(`Status("archived").Valid() = true`)
	}
	if got := model.Status("archived").ColumnIndex(); got != -1 {
		t.Errorf(`Status("archived").ColumnIndex() = %d, want -1`, got)
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	order := []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("%q.Rank() = %d not above %q.Rank() = %d",
				order[i], order[i].Rank(), order[i-1], order[i-1].Rank())
		}
	}
	if model.Priority("blocker").Valid() {
		t.Error(`Priority("blocker").Valid() = true`)
	}
}

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	cases := []struct {
		name string
		task model.Task
		want bool
	}{
		{"past due and pending", model.Task{DueDate: &past, Status: model.StatusPending}, true},
		{"past due but completed", model.Task{DueDate: &past, Status: model.StatusCompleted}, false},
		{"due in the future", model.Task{DueDate: &future, Status: model.StatusPending}, false},
		{"no due date", model.Task{Status: model.StatusPending}, false},
	}
	for _, tc := range cases {
		if got := tc.task.Overdue(now); got != tc.want {
			t.Errorf("%s: Overdue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestUserInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Joao Silva", "JS"},
		{"Maria", "M"},
		{"ana clara oliveira", "ACO"},
		{"", ""},
	}
	for _, tc := range cases {
		u := model.User{Name: tc.name}
		if got := u.Initials(); got != tc.want {
			t.Errorf("Initials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestThemeToggle(t *testing.T) {
	if got := model.ThemeLight.Toggle(); got != model.ThemeDark {
		t.Errorf("light.Toggle() = %q, want dark", got)
	}
	if got := model.ThemeDark.Toggle(); got != model.ThemeLight {
		t.Errorf("dark.Toggle() = %q, want light", got)
	}
}
