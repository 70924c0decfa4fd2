package utils

import (
	"fmt"
	"slices"
	"sort"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
)

// ValidateAvailabilityInput reports problems in raw availability input (person -> day names).
// It never stops generation; the caller decides what to do with the list.
func ValidateAvailabilityInput(raw map[string][]string, team *domain.Team) []string {
	problems := []string{}

	for _, person := range team.People {
		if _, exists := raw[string(person)]; !exists {
			problems = append(problems, fmt.Sprintf("Missing availability data for %s", person))
		}
	}

	for _, name := range sortedKeys(raw) {
		if !team.HasPerson(domain.Person(name)) {
			problems = append(problems, fmt.Sprintf("Unknown person '%s'", name))
			continue
		}
		for _, day := range raw[name] {
			if _, ok := domain.ParseWeekday(day); !ok {
				problems = append(problems, fmt.Sprintf("Invalid day '%s' for %s", day, name))
			}
		}
	}

	return problems
}

// NormalizeAvailability converts raw input into domain availability, dropping unknown people and
// day names that cannot be parsed.
func NormalizeAvailability(raw map[string][]string, team *domain.Team) domain.Availability {
	availability := domain.Availability{}

	for name, days := range raw {
		person := domain.Person(name)
		if !team.HasPerson(person) {
			continue
		}

		availability[person] = []domain.Weekday{}
		for _, d := range days {
			day, ok := domain.ParseWeekday(d)
			if !ok || slices.Contains(availability[person], day) {
				continue
			}
			availability[person] = append(availability[person], day)
		}
		sortWeekdays(availability[person])
	}

	return availability
}

func NormalizeHolidays(raw []string) (domain.Holidays, []string) {
	holidays := domain.Holidays{}
	problems := []string{}

	for _, d := range raw {
		day, ok := domain.ParseWeekday(d)
		if !ok {
			problems = append(problems, fmt.Sprintf("Invalid holiday '%s'", d))
			continue
		}
		if !holidays.Contains(day) {
			holidays = append(holidays, day)
		}
	}
	sortWeekdays(holidays)

	return holidays, problems
}

// ValidateScheduleWithInputs checks a finished schedule against the inputs it was generated from.
func ValidateScheduleWithInputs(schedule *domain.Schedule, team *domain.Team, availability domain.Availability, holidays domain.Holidays) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	for _, day := range schedule.Days {
		for _, task := range schedule.Tasks {
			o, _ := schedule.Get(day, task)

			if holidays.Contains(day) {
				if o.Status != domain.OutcomeHoliday {
					return fmt.Errorf("%q on holiday %s is not marked as holiday", task, day)
				}
				continue
			}

			switch o.Status {
			case domain.OutcomeHoliday:
				return fmt.Errorf("%q on %s is marked as holiday", task, day)
			case domain.OutcomeAssigned:
				if !team.HasPerson(o.Person) {
					return fmt.Errorf("%q on %s is assigned to unknown person %s", task, day, o.Person)
				}
				if availability.IsUnavailable(o.Person, day) {
					return fmt.Errorf("%s is unavailable on %s but got %q", o.Person, day, task)
				}
				if task == team.SizingTask && slices.Contains(team.NoSizing, o.Person) {
					return fmt.Errorf("%s cannot do %q", o.Person, task)
				}
			}
		}
	}

	return nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortWeekdays(days []domain.Weekday) {
	sort.Slice(days, func(i, j int) bool {
		return slices.Index(domain.Weekdays, days[i]) < slices.Index(domain.Weekdays, days[j])
	})
}
