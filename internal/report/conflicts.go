package report

import (
	"fmt"
	"sort"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
)

// DefaultOverloadThreshold is the number of same-day tasks above which a person is flagged.
const DefaultOverloadThreshold = 3

// CheckConflicts lists unassigned slots and people with more than threshold tasks on one day.
// The list is advisory; the generator does not enforce it.
func CheckConflicts(schedule *domain.Schedule, threshold int) []string {
	conflicts := []string{}

	for _, day := range schedule.Days {
		for _, task := range schedule.Tasks {
			if o, _ := schedule.Get(day, task); o.Status == domain.OutcomeUnassigned {
				conflicts = append(conflicts, fmt.Sprintf("No one available for '%s' on %s", task, day.DisplayName()))
			}
		}
	}

	log := domain.BuildPersonTaskLog(schedule)
	for _, day := range schedule.Days {
		for _, person := range sortedPeople(log) {
			if load := len(log[person][day]); load > threshold {
				conflicts = append(conflicts, fmt.Sprintf("%s has %d tasks on %s - consider redistributing", person, load, day.DisplayName()))
			}
		}
	}

	return conflicts
}

func sortedPeople(log domain.PersonTaskLog) []domain.Person {
	people := make([]domain.Person, 0, len(log))
	for p := range log {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool { return people[i] < people[j] })
	return people
}
