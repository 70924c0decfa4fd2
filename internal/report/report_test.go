package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	taskA = domain.Task("Opti (Urgent and Standard)")
	taskB = domain.Task("Algo sales, Review 2nd round raises")
)

func testTeam() *domain.Team {
	return &domain.Team{
		People:      []domain.Person{"Grace", "Zi", "Max"},
		Tasks:       []domain.Task{taskA, taskB},
		TaskWeights: map[domain.Task]int{taskA: 3, taskB: 1},
		SizingTask:  domain.TaskSizing,
	}
}

// Monday: Grace, Zi; Tuesday: Grace, nobody; Wednesday holiday; Thursday: Zi, Zi; Friday: Max, Grace
func testSchedule(team *domain.Team) *domain.Schedule {
	s := domain.NewSchedule(domain.Weekdays, team.Tasks)
	s.Set(domain.Monday, taskA, domain.AssignedTo("Grace"))
	s.Set(domain.Monday, taskB, domain.AssignedTo("Zi"))
	s.Set(domain.Tuesday, taskA, domain.AssignedTo("Grace"))
	s.Set(domain.Tuesday, taskB, domain.UnassignedOutcome())
	s.Set(domain.Wednesday, taskA, domain.HolidayOutcome())
	s.Set(domain.Wednesday, taskB, domain.HolidayOutcome())
	s.Set(domain.Thursday, taskA, domain.AssignedTo("Zi"))
	s.Set(domain.Thursday, taskB, domain.AssignedTo("Zi"))
	s.Set(domain.Friday, taskA, domain.AssignedTo("Max"))
	s.Set(domain.Friday, taskB, domain.AssignedTo("Grace"))
	return s
}

func TestTaskTable(t *testing.T) {
	team := testTeam()
	table := TaskTable(testSchedule(team))

	assert.Equal(t, []string{"Day", string(taskA), string(taskB)}, table.Header)
	require.Len(t, table.Rows, 5)
	assert.Equal(t, []string{"Monday", "Grace", "Zi"}, table.Rows[0])
	assert.Equal(t, []string{"Tuesday", "Grace", domain.NoOneAvailableMsg}, table.Rows[1])
	assert.Equal(t, []string{"Wednesday", domain.HolidayMarker, domain.HolidayMarker}, table.Rows[2])
}

func TestPersonTable(t *testing.T) {
	team := testTeam()
	table := PersonTable(testSchedule(team), team.People)

	assert.Equal(t, []string{"Person", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, table.Header)
	free := domain.FreeDayMarker
	assert.Equal(t, [][]string{
		{"Grace", string(taskA), string(taskA), free, free, string(taskB)},
		{"Zi", string(taskB), free, free, string(taskA) + "; " + string(taskB), free},
		{"Max", free, free, free, free, string(taskA)},
	}, table.Rows)
}

func TestCalculateStatistics(t *testing.T) {
	team := testTeam()
	stats := CalculateStatistics(testSchedule(team), team)

	assert.Equal(t, 7, stats.TotalTasks)
	assert.Equal(t, 2, stats.HolidaySlots)
	assert.Equal(t, 1, stats.UnassignedSlots)
	assert.Equal(t, map[domain.Person]int{"Grace": 3, "Zi": 3, "Max": 1}, stats.PersonTaskCounts)
	assert.Equal(t, map[domain.Task]int{taskA: 4, taskB: 3}, stats.TaskDistribution)
	assert.Equal(t, 2, stats.DailyLoads[domain.Thursday]["Zi"])
	assert.Empty(t, stats.DailyLoads[domain.Wednesday])

	// Grace 3+3+1, Zi 1+3+1, Max 3; total 15
	assert.True(t, decimal.NewFromInt(7).Equal(stats.WeightedLoads["Grace"]))
	assert.True(t, decimal.NewFromInt(5).Equal(stats.WeightedLoads["Zi"]))
	assert.True(t, decimal.RequireFromString("0.2").Equal(stats.WeightedShares["Max"]))
	assert.True(t, decimal.RequireFromString("0.4667").Equal(stats.WeightedShares["Grace"]))
}

func TestCalculateStatistics_AllHolidays(t *testing.T) {
	team := testTeam()
	s := domain.NewSchedule(domain.Weekdays, team.Tasks)
	for _, day := range domain.Weekdays {
		for _, task := range team.Tasks {
			s.Set(day, task, domain.HolidayOutcome())
		}
	}

	stats := CalculateStatistics(s, team)

	assert.Equal(t, 10, stats.HolidaySlots)
	assert.Zero(t, stats.TotalTasks)
	assert.True(t, stats.WeightedShares["Grace"].IsZero())
}

func TestCheckConflicts(t *testing.T) {
	team := testTeam()

	conflicts := CheckConflicts(testSchedule(team), 1)

	assert.Equal(t, []string{
		"No one available for 'Algo sales, Review 2nd round raises' on Tuesday",
		"Zi has 2 tasks on Thursday - consider redistributing",
	}, conflicts)
	assert.Equal(t, conflicts[:1], CheckConflicts(testSchedule(team), DefaultOverloadThreshold))
}

func TestWriteCSV(t *testing.T) {
	team := testTeam()
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, TaskTable(testSchedule(team))))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 6)
	assert.Equal(t, `Day,Opti (Urgent and Standard),"Algo sales, Review 2nd round raises"`, string(lines[0]))
	assert.Equal(t, "Monday,Grace,Zi", string(lines[1]))
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 7, 9, 5, 30, 0, time.UTC)
	assert.Equal(t, "MuniAPMs_Task_Schedule_20250307_090530.csv", Filename("MuniAPMs", "Task_Schedule", "csv", now))
}
