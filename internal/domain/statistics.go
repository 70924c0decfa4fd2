package domain

import "github.com/shopspring/decimal"

// Statistics summarizes how the task slots of a schedule were filled.
type Statistics struct {
	PersonTaskCounts map[Person]int             `json:"personTaskCounts"`
	TaskDistribution map[Task]int               `json:"taskDistribution"`
	DailyLoads       map[Weekday]map[Person]int `json:"dailyLoads"`
	TotalTasks       int                        `json:"totalTasks"`
	HolidaySlots     int                        `json:"holidaySlots"`
	UnassignedSlots  int                        `json:"unassignedSlots"`
	WeightedLoads    map[Person]decimal.Decimal `json:"weightedLoads"`
	WeightedShares   map[Person]decimal.Decimal `json:"weightedShares"`
}
