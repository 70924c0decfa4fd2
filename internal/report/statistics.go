package report

import (
	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateStatistics counts filled, holiday and unassigned task slots. Weighted loads use the
// team's task weights; they are informational only.
func CalculateStatistics(schedule *domain.Schedule, team *domain.Team) *domain.Statistics {
	stats := &domain.Statistics{
		PersonTaskCounts: make(map[domain.Person]int, len(team.People)),
		TaskDistribution: make(map[domain.Task]int, len(schedule.Tasks)),
		DailyLoads:       make(map[domain.Weekday]map[domain.Person]int, len(schedule.Days)),
		WeightedLoads:    make(map[domain.Person]decimal.Decimal, len(team.People)),
		WeightedShares:   make(map[domain.Person]decimal.Decimal, len(team.People)),
	}

	for _, person := range team.People {
		stats.PersonTaskCounts[person] = 0
		stats.WeightedLoads[person] = decimal.Zero
	}
	for _, task := range schedule.Tasks {
		stats.TaskDistribution[task] = 0
	}

	totalWeight := decimal.Zero
	for _, day := range schedule.Days {
		stats.DailyLoads[day] = make(map[domain.Person]int)

		for _, task := range schedule.Tasks {
			o, _ := schedule.Get(day, task)
			switch o.Status {
			case domain.OutcomeHoliday:
				stats.HolidaySlots++
			case domain.OutcomeAssigned:
				weight := decimal.NewFromInt(int64(team.Weight(task)))

				stats.PersonTaskCounts[o.Person]++
				stats.TaskDistribution[task]++
				stats.DailyLoads[day][o.Person]++
				stats.TotalTasks++
				stats.WeightedLoads[o.Person] = stats.WeightedLoads[o.Person].Add(weight)
				totalWeight = totalWeight.Add(weight)
			default:
				stats.UnassignedSlots++
			}
		}
	}

	for person, load := range stats.WeightedLoads {
		if totalWeight.IsZero() {
			stats.WeightedShares[person] = decimal.Zero
			continue
		}
		stats.WeightedShares[person] = load.DivRound(totalWeight, 4)
	}

	return stats
}
