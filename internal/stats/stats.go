// Package stats computes the derived numbers the dashboard views show.
// Everything here is a pure, single-pass function over store snapshots.
package stats

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/nhle/taskboard/internal/model"
)

// Overview summarizes the whole board for the dashboard header cards.
type Overview struct {
	TotalTasks     int
	Completed      int
	InProgress     int
	Pending        int
	Overdue        int
	ActiveProjects int
	CompletionRate int // rounded percent, 0 when there are no tasks
}

// ComputeOverview tallies the board-wide statistics at time now.
func ComputeOverview(tasks []model.Task, projects []model.Project, now time.Time) Overview {
	o := Overview{
		TotalTasks:     len(tasks),
		ActiveProjects: len(projects),
	}

	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			o.Completed++
		case model.StatusInProgress:
			o.InProgress++
		case model.StatusPending:
			o.Pending++
		}
		if t.Overdue(now) {
			o.Overdue++
		}
	}

	o.CompletionRate = percent(o.Completed, o.TotalTasks)
	return o
}

// UserStats summarizes one user's workload for the teams view.
type UserStats struct {
	UserID         string
	Total          int
	Completed      int
	InProgress     int
	Pending        int
	Overdue        int
	CompletionRate int
}

// ComputeUserStats tallies the tasks assigned to the given user.
func ComputeUserStats(tasks []model.Task, userID string, now time.Time) UserStats {
	s := UserStats{UserID: userID}

	for _, t := range tasks {
		if t.AssigneeID == nil || *t.AssigneeID != userID {
			continue
		}
		s.Total++
		switch t.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusPending:
			s.Pending++
		}
		if t.Overdue(now) {
			s.Overdue++
		}
	}

	s.CompletionRate = percent(s.Completed, s.Total)
	return s
}

// CriticalTasks returns up to limit tasks needing attention: urgent
// priority, overdue, or due within three days and not completed. Results
// are ordered by priority severity, then by due date.
func CriticalTasks(tasks []model.Task, now time.Time, limit int) []model.Task {
	soon := now.AddDate(0, 0, 3)

	var critical []model.Task
	for _, t := range tasks {
		switch {
		case t.Priority == model.PriorityUrgent:
			critical = append(critical, t)
		case t.Overdue(now):
			critical = append(critical, t)
		case t.DueDate != nil && !t.DueDate.After(soon) && t.Status != model.StatusCompleted:
			critical = append(critical, t)
		}
	}

	sort.SliceStable(critical, func(i, j int) bool {
		a, b := critical[i], critical[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		if a.DueDate != nil && b.DueDate != nil {
			return a.DueDate.Before(*b.DueDate)
		}
		return false
	})

	if limit > 0 && len(critical) > limit {
		critical = critical[:limit]
	}
	return critical
}

// RecentTasks returns up to limit tasks ordered by most recent update.
func RecentTasks(tasks []model.Task, limit int) []model.Task {
	recent := append([]model.Task(nil), tasks...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].UpdatedAt.After(recent[j].UpdatedAt)
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// ProductivityDay is one bar of the seven day productivity chart.
type ProductivityDay struct {
	Date      time.Time
	Created   int
	Completed int
}

// Productivity summarizes task throughput over the trailing week.
type Productivity struct {
	Days           []ProductivityDay
	TotalCreated   int
	TotalCompleted int
	CompletionRate int
	AveragePerDay  int
}

// ComputeProductivity counts tasks created and completed per calendar
// day over the last seven days ending at now. A task counts as completed
// on the day of its last update while its status is completed.
func ComputeProductivity(tasks []model.Task, now time.Time) Productivity {
	var p Productivity

	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		entry := ProductivityDay{Date: dayStart}
		for _, t := range tasks {
			if !t.CreatedAt.Before(dayStart) && t.CreatedAt.Before(dayEnd) {
				entry.Created++
			}
			if t.Status == model.StatusCompleted &&
				!t.UpdatedAt.Before(dayStart) && t.UpdatedAt.Before(dayEnd) {
				entry.Completed++
			}
		}
		p.Days = append(p.Days, entry)
		p.TotalCreated += entry.Created
		p.TotalCompleted += entry.Completed
	}

	p.CompletionRate = percent(p.TotalCompleted, p.TotalCreated)
	p.AveragePerDay = int(math.Round(float64(p.TotalCreated) / 7))
	return p
}

// TaskFilter selects tasks for the board and list views. Nil fields
// match everything.
type TaskFilter struct {
	Query      *string // case-insensitive match on title or description
	ProjectID  *string
	AssigneeID *string
	Status     *model.Status
	Priority   *model.Priority
}

// Filter returns the tasks matching every set field of f, preserving
// input order.
func Filter(tasks []model.Task, f TaskFilter) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if f.Query != nil {
			q := strings.ToLower(*f.Query)
			if !strings.Contains(strings.ToLower(t.Title), q) &&
				!strings.Contains(strings.ToLower(t.Description), q) {
				continue
			}
		}
		if f.ProjectID != nil && t.ProjectID != *f.ProjectID {
			continue
		}
		if f.AssigneeID != nil && (t.AssigneeID == nil || *t.AssigneeID != *f.AssigneeID) {
			continue
		}
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortBy names a task ordering for SortTasks.
type SortBy string

const (
	SortByPriority  SortBy = "priority"
	SortByDueDate   SortBy = "due_date"
	SortByUpdatedAt SortBy = "updated_at"
	SortByCreatedAt SortBy = "created_at"
	SortByTitle     SortBy = "title"
)

// SortTasks returns a copy of tasks ordered by the given key. Priority
// sorts most urgent first; timestamps sort newest first; desc flips the
// order. Tasks without a due date sort after those with one.
func SortTasks(tasks []model.Task, by SortBy, desc bool) []model.Task {
	sorted := append([]model.Task(nil), tasks...)

	less := func(a, b model.Task) bool {
		switch by {
		case SortByPriority:
			return a.Priority.Rank() > b.Priority.Rank()
		case SortByDueDate:
			if a.DueDate == nil {
				return false
			}
			if b.DueDate == nil {
				return true
			}
			return a.DueDate.Before(*b.DueDate)
		case SortByCreatedAt:
			return a.CreatedAt.After(b.CreatedAt)
		case SortByTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		default:
			return a.UpdatedAt.After(b.UpdatedAt)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// TasksByStatus splits tasks into kanban columns, preserving input order
// within each column.
func TasksByStatus(tasks []model.Task) map[model.Status][]model.Task {
	columns := make(map[model.Status][]model.Task, len(model.AllStatuses))
	for _, status := range model.AllStatuses {
		columns[status] = nil
	}
	for _, t := range tasks {
		columns[t.Status] = append(columns[t.Status], t)
	}
	return columns
}

// ProjectsForUser returns the projects the user is a member of.
func ProjectsForUser(projects []model.Project, userID string) []model.Project {
	var out []model.Project
	for _, p := range projects {
		if p.HasMember(userID) {
			out = append(out, p)
		}
	}
	return out
}

// percent rounds part/total to a whole percentage, 0 when total is 0.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
