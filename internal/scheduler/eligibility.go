package scheduler

import (
	"slices"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
)

// Checker decides whether a person may take a task on a given day.
type Checker struct {
	sizingTask domain.Task
	noSizing   []domain.Person
}

func NewChecker(team *domain.Team) *Checker {
	return &Checker{
		sizingTask: team.SizingTask,
		noSizing:   slices.Clone(team.NoSizing),
	}
}

func (c *Checker) IsEligible(person domain.Person, task domain.Task, day domain.Weekday, availability domain.Availability) bool {
	if availability.IsUnavailable(person, day) {
		return false
	}
	if task == c.sizingTask && slices.Contains(c.noSizing, person) {
		return false
	}
	return true
}
