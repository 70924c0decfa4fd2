package domain

import (
	"fmt"
	"slices"
)

// Availability holds the days each person is unavailable. A person without an entry is
// available every day.
type Availability map[Person][]Weekday

func (a Availability) IsUnavailable(p Person, day Weekday) bool {
	return slices.Contains(a[p], day)
}

type Holidays []Weekday

func (h Holidays) Contains(day Weekday) bool {
	return slices.Contains(h, day)
}

type OutcomeStatus string

const (
	OutcomeAssigned   OutcomeStatus = "assigned"
	OutcomeHoliday    OutcomeStatus = "holiday"
	OutcomeUnassigned OutcomeStatus = "unassigned"
)

const (
	HolidayMarker     = "🏝️ Holiday"
	NoOneAvailableMsg = "❌ No one available"
	FreeDayMarker     = "😎"
)

// Outcome is the content of one (day, task) cell.
type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Person Person        `json:"person,omitempty"`
}

func AssignedTo(p Person) Outcome {
	return Outcome{Status: OutcomeAssigned, Person: p}
}

func HolidayOutcome() Outcome {
	return Outcome{Status: OutcomeHoliday}
}

func UnassignedOutcome() Outcome {
	return Outcome{Status: OutcomeUnassigned}
}

func (o Outcome) IsAssigned() bool {
	return o.Status == OutcomeAssigned
}

func (o Outcome) String() string {
	switch o.Status {
	case OutcomeAssigned:
		return string(o.Person)
	case OutcomeHoliday:
		return HolidayMarker
	default:
		return NoOneAvailableMsg
	}
}

// Schedule maps each weekday and task to exactly one outcome.
type Schedule struct {
	Days  []Weekday                    `json:"days"`
	Tasks []Task                       `json:"tasks"`
	Cells map[Weekday]map[Task]Outcome `json:"cells"`
}

func NewSchedule(days []Weekday, tasks []Task) *Schedule {
	return &Schedule{
		Days:  slices.Clone(days),
		Tasks: slices.Clone(tasks),
		Cells: make(map[Weekday]map[Task]Outcome, len(days)),
	}
}

func (s *Schedule) Set(day Weekday, task Task, o Outcome) {
	if _, exists := s.Cells[day]; !exists {
		s.Cells[day] = make(map[Task]Outcome, len(s.Tasks))
	}
	s.Cells[day][task] = o
}

func (s *Schedule) Get(day Weekday, task Task) (Outcome, bool) {
	o, ok := s.Cells[day][task]
	return o, ok
}

// TasksFor returns the tasks assigned to p on day, in task order.
func (s *Schedule) TasksFor(p Person, day Weekday) []Task {
	tasks := []Task{}
	for _, task := range s.Tasks {
		if o, ok := s.Get(day, task); ok && o.IsAssigned() && o.Person == p {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// Validate checks that every (day, task) pair has an outcome.
func (s *Schedule) Validate() error {
	for _, day := range s.Days {
		for _, task := range s.Tasks {
			if _, ok := s.Get(day, task); !ok {
				return fmt.Errorf("missing outcome for %q on %s", task, day)
			}
		}
	}
	return nil
}

// PersonTaskLog: person -> day -> tasks assigned that day, in assignment order
type PersonTaskLog map[Person]map[Weekday][]Task

func (l PersonTaskLog) Append(p Person, day Weekday, task Task) {
	if _, exists := l[p]; !exists {
		l[p] = make(map[Weekday][]Task)
	}
	l[p][day] = append(l[p][day], task)
}

// BuildPersonTaskLog derives the log from a schedule.
func BuildPersonTaskLog(s *Schedule) PersonTaskLog {
	log := PersonTaskLog{}
	for _, day := range s.Days {
		for _, task := range s.Tasks {
			if o, ok := s.Get(day, task); ok && o.IsAssigned() {
				log.Append(o.Person, day, task)
			}
		}
	}
	return log
}
