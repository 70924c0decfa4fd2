package scheduler

import "github.com/muniapms/task-scheduler/backend/internal/domain"

// personTaskCount: person -> task -> times the person got the task during the run
type personTaskCount map[domain.Person]map[domain.Task]int

func (c personTaskCount) get(p domain.Person, task domain.Task) int {
	return c[p][task]
}

func (c personTaskCount) inc(p domain.Person, task domain.Task) {
	if _, exists := c[p]; !exists {
		c[p] = make(map[domain.Task]int)
	}
	c[p][task]++
}

// dailyTaskCount: day -> person -> tasks the person already got that day
type dailyTaskCount map[domain.Weekday]map[domain.Person]int

func (c dailyTaskCount) get(day domain.Weekday, p domain.Person) int {
	return c[day][p]
}

func (c dailyTaskCount) inc(day domain.Weekday, p domain.Person) {
	if _, exists := c[day]; !exists {
		c[day] = make(map[domain.Person]int)
	}
	c[day][p]++
}
