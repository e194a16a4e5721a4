package usecase

import (
	"time"

	"github.com/jcarter-pt/traincrm/internal/entity"
)

// TaskBuckets groups open tasks by due date relative to a reference day.
type TaskBuckets struct {
	Overdue  []*entity.Task `json:"overdue"`
	Today    []*entity.Task `json:"today"`
	Upcoming []*entity.Task `json:"upcoming"`
}

// BucketTasks partitions tasks on calendar day, not instant: a task due at
// 09:00 today is "today" all day, not overdue by the afternoon. Completed
// tasks are skipped.
func BucketTasks(tasks []*entity.Task, now time.Time) TaskBuckets {
	buckets := TaskBuckets{
		Overdue:  []*entity.Task{},
		Today:    []*entity.Task{},
		Upcoming: []*entity.Task{},
	}
	today := truncateToDay(now)
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		due := truncateToDay(t.DueDate.In(now.Location()))
		switch {
		case due.Before(today):
			buckets.Overdue = append(buckets.Overdue, t)
		case due.Equal(today):
			buckets.Today = append(buckets.Today, t)
		default:
			buckets.Upcoming = append(buckets.Upcoming, t)
		}
	}
	return buckets
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
