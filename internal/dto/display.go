package dto

import (
	"math"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/adityagv/homework-hub/internal/constants"
	"github.com/adityagv/homework-hub/internal/models"
)

// subjectColorClasses mirrors the dashboard stylesheet. Unknown subjects fall
// back to the default class, never an error.
var subjectColorClasses = map[string]string{
	"Operating System": "color-os",
	"Design Thinking":  "color-dt",
	"Web Development":  "color-wd",
	"Java":             "color-java",
}

const defaultColorClass = "color-default"

// ActiveItem is one renderable row of the dashboard list.
type ActiveItem struct {
	ID               int64  `json:"id"`
	Subject          string `json:"subject"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ColorClass       string `json:"color_class"`
	DeadlineDisplay  string `json:"deadline_display"`
	DeadlineRelative string `json:"deadline_relative"`
}

// Stats summarizes the full collection, completed assignments included.
type Stats struct {
	CompletedCount int `json:"completed_count"`
	TotalCount     int `json:"total_count"`
	DueTodayCount  int `json:"due_today_count"`
	CompletionRate int `json:"completion_rate"`
}

// DisplayModel is everything the dashboard needs to render. It is derived,
// read-only state; it never feeds back into the collection.
type DisplayModel struct {
	Active []ActiveItem `json:"active"`
	Stats  Stats        `json:"stats"`
	Empty  bool         `json:"empty"`
}

// CompletedItem is one row of the completed-history view.
type CompletedItem struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Subject          string `json:"subject"`
	CompletedDisplay string `json:"completed_display"`
}

// SubjectColorClass resolves the display color for a subject.
func SubjectColorClass(subject string) string {
	if class, ok := subjectColorClasses[subject]; ok {
		return class
	}
	return defaultColorClass
}

// Project derives the dashboard model from the current collection: active
// assignments sorted by deadline ascending (insertion order kept for ties)
// plus statistics over the whole collection. It never mutates its input.
func Project(assignments []models.Assignment, now time.Time) DisplayModel {
	active := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if !a.IsCompleted {
			active = append(active, a)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Deadline.Before(active[j].Deadline)
	})

	items := make([]ActiveItem, len(active))
	for i, a := range active {
		items[i] = ActiveItem{
			ID:               a.ID,
			Subject:          a.Subject,
			Name:             a.Name,
			Description:      a.Description,
			ColorClass:       SubjectColorClass(a.Subject),
			DeadlineDisplay:  a.Deadline.Format(constants.DeadlineDisplayFormat),
			DeadlineRelative: humanize.RelTime(a.Deadline, now, "overdue", "from now"),
		}
	}

	return DisplayModel{
		Active: items,
		Stats:  ComputeStats(assignments, now),
		Empty:  len(items) == 0,
	}
}

// ComputeStats counts over the full collection: completed assignments, active
// assignments due on today's calendar date, and the rounded completion rate.
func ComputeStats(assignments []models.Assignment, now time.Time) Stats {
	stats := Stats{TotalCount: len(assignments)}

	for _, a := range assignments {
		if a.IsCompleted {
			stats.CompletedCount++
			continue
		}
		if sameCalendarDay(a.Deadline, now) {
			stats.DueTodayCount++
		}
	}

	if stats.TotalCount > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedCount) / float64(stats.TotalCount) * 100))
	}

	return stats
}

// ProjectCompleted derives the completed-history view.
func ProjectCompleted(assignments []models.Assignment) []CompletedItem {
	items := make([]CompletedItem, 0, len(assignments))
	for _, a := range assignments {
		if !a.IsCompleted {
			continue
		}
		item := CompletedItem{
			ID:      a.ID,
			Name:    a.Name,
			Subject: a.Subject,
		}
		if a.CompletionDate != nil {
			item.CompletedDisplay = a.CompletionDate.Format(constants.CompletionDisplayFormat)
		}
		items = append(items, item)
	}
	return items
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
