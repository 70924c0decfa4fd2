package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/muniapms/task-scheduler/backend/internal/report"
	"github.com/muniapms/task-scheduler/backend/internal/repository"
	"github.com/muniapms/task-scheduler/backend/internal/scheduler"
	"github.com/muniapms/task-scheduler/backend/internal/utils"
)

const (
	personHeader      = "Person"
	unavailableHeader = "Unavailable"
	// a row with this name lists the holidays of the week
	holidayRow = "Holidays"
)

// ReadAvailability parses a CSV file with a Person and an Unavailable column. Days in the
// Unavailable column are separated by commas, e.g. "Mon, Thu".
func ReadAvailability(r io.Reader) (map[string][]string, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	personCol, unavailableCol := -1, -1
	for i, header := range headers {
		switch strings.TrimSpace(header) {
		case personHeader:
			personCol = i
		case unavailableHeader:
			unavailableCol = i
		}
	}
	if personCol < 0 || unavailableCol < 0 {
		return nil, nil, errors.New("missing Person or Unavailable column")
	}

	raw := map[string][]string{}
	holidays := []string{}

	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, fmt.Errorf("reading row: %w", err)
		}

		if len(row) <= max(personCol, unavailableCol) {
			continue
		}

		name := strings.TrimSpace(row[personCol])
		if name == "" {
			continue
		}

		days := []string{}
		for _, day := range strings.Split(row[unavailableCol], ",") {
			if day = strings.TrimSpace(day); day != "" {
				days = append(days, day)
			}
		}

		if strings.EqualFold(name, holidayRow) {
			holidays = append(holidays, days...)
			continue
		}
		if _, exists := raw[name]; !exists {
			raw[name] = []string{}
		}
		raw[name] = append(raw[name], days...)
	}

	return raw, holidays, nil
}

func LoadAvailability(path string) (map[string][]string, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return ReadAvailability(file)
}

// GenerateAndPrint generates a schedule from raw input and writes the task table and the person
// table to out as CSV. Input problems and conflicts are logged, not returned.
func GenerateAndPrint(team *domain.Team, raw map[string][]string, rawHolidays []string, rnd scheduler.RandomSource, threshold int, out io.Writer) (*domain.Schedule, error) {
	for _, problem := range utils.ValidateAvailabilityInput(raw, team) {
		slog.Warn("availability input", "problem", problem)
	}

	availability := utils.NormalizeAvailability(raw, team)
	holidays, problems := utils.NormalizeHolidays(rawHolidays)
	for _, problem := range problems {
		slog.Warn("holiday input", "problem", problem)
	}

	schedule, _ := scheduler.New(team, rnd).Generate(availability, holidays)

	if err := utils.ValidateScheduleWithInputs(schedule, team, availability, holidays); err != nil {
		return nil, err
	}

	if err := report.WriteCSV(out, report.TaskTable(schedule)); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return nil, err
	}
	if err := report.WriteCSV(out, report.PersonTable(schedule, team.People)); err != nil {
		return nil, err
	}

	stats := report.CalculateStatistics(schedule, team)
	slog.Info("schedule generated",
		"total", stats.TotalTasks,
		"holidaySlots", stats.HolidaySlots,
		"unassignedSlots", stats.UnassignedSlots,
	)
	for _, person := range team.People {
		slog.Info("load", "person", person, "tasks", stats.PersonTaskCounts[person], "weighted", stats.WeightedLoads[person].String())
	}
	for _, conflict := range report.CheckConflicts(schedule, threshold) {
		slog.Warn("conflict", "detail", conflict)
	}

	return schedule, nil
}

// PublishSchedule archives the schedule under the given publisher.
func PublishSchedule(r *repository.Repository, schedule *domain.Schedule, weekOf time.Time, seed *int64, publisher string) (*domain.PublishedSchedule, error) {
	user, err := r.GetUserByUsername(publisher)
	if err != nil {
		return nil, fmt.Errorf("loading publisher %s: %w", publisher, err)
	}

	ps := &domain.PublishedSchedule{
		WeekOf:      weekOf,
		Seed:        seed,
		Schedule:    schedule,
		PublishedBy: user.ID,
	}
	if err := r.InsertPublishedSchedule(ps); err != nil {
		return nil, err
	}

	return ps, nil
}
