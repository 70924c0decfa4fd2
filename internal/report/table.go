package report

import (
	"strings"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
)

// Table is a flat two-dimensional view of a schedule, ready for display or CSV export.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// TaskTable is indexed by day: one row per weekday, one column per task.
func TaskTable(schedule *domain.Schedule) *Table {
	t := &Table{
		Header: make([]string, 0, len(schedule.Tasks)+1),
		Rows:   make([][]string, 0, len(schedule.Days)),
	}

	t.Header = append(t.Header, "Day")
	for _, task := range schedule.Tasks {
		t.Header = append(t.Header, string(task))
	}

	for _, day := range schedule.Days {
		row := make([]string, 0, len(schedule.Tasks)+1)
		row = append(row, day.DisplayName())
		for _, task := range schedule.Tasks {
			o, _ := schedule.Get(day, task)
			row = append(row, o.String())
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// PersonTable is indexed by person: each cell lists the tasks of that day, or the free-day marker.
func PersonTable(schedule *domain.Schedule, people []domain.Person) *Table {
	t := &Table{
		Header: make([]string, 0, len(schedule.Days)+1),
		Rows:   make([][]string, 0, len(people)),
	}

	t.Header = append(t.Header, "Person")
	for _, day := range schedule.Days {
		t.Header = append(t.Header, day.DisplayName())
	}

	for _, person := range people {
		row := make([]string, 0, len(schedule.Days)+1)
		row = append(row, string(person))
		for _, day := range schedule.Days {
			row = append(row, personCell(schedule.TasksFor(person, day)))
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

func personCell(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return domain.FreeDayMarker
	}

	names := make([]string, len(tasks))
	for i, task := range tasks {
		names[i] = string(task)
	}
	return strings.Join(names, "; ")
}
