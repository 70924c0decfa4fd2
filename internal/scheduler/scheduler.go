package scheduler

import (
	"github.com/muniapms/task-scheduler/backend/internal/domain"
)

type Scheduler struct {
	team    *domain.Team
	checker *Checker
	rnd     RandomSource

	// reset at the start of every Generate call
	personTaskCount personTaskCount
	dailyTaskCount  dailyTaskCount
}

// New creates a scheduler for team. A nil rnd falls back to a time-seeded source.
func New(team *domain.Team, rnd RandomSource) *Scheduler {
	if rnd == nil {
		rnd = newTimeSeededSource()
	}

	return &Scheduler{
		team:    team,
		checker: NewChecker(team),
		rnd:     rnd,
	}
}

// Generate fills the Monday..Friday grid one day at a time, tasks in declared order.
func (s *Scheduler) Generate(availability domain.Availability, holidays domain.Holidays) (*domain.Schedule, domain.PersonTaskLog) {
	s.personTaskCount = personTaskCount{}
	s.dailyTaskCount = dailyTaskCount{}

	schedule := domain.NewSchedule(domain.Weekdays, s.team.Tasks)
	personTasks := domain.PersonTaskLog{}

	for _, day := range domain.Weekdays {
		if holidays.Contains(day) {
			for _, task := range s.team.Tasks {
				schedule.Set(day, task, domain.HolidayOutcome())
			}
			continue
		}

		for _, task := range s.team.Tasks {
			eligible := s.eligiblePeople(task, day, availability)
			if len(eligible) == 0 {
				schedule.Set(day, task, domain.UnassignedOutcome())
				continue
			}

			chosen := s.choose(day, task, eligible)

			schedule.Set(day, task, domain.AssignedTo(chosen))
			personTasks.Append(chosen, day, task)
			s.personTaskCount.inc(chosen, task)
			s.dailyTaskCount.inc(day, chosen)
		}
	}

	return schedule, personTasks
}

func (s *Scheduler) eligiblePeople(task domain.Task, day domain.Weekday, availability domain.Availability) []domain.Person {
	eligible := []domain.Person{}
	for _, person := range s.team.People {
		if s.checker.IsEligible(person, task, day, availability) {
			eligible = append(eligible, person)
		}
	}
	return eligible
}

// choose applies the preference cascade: nobody-loaded-today, then never-did-this-task, then
// least-loaded-today. Ties are broken uniformly at random.
func (s *Scheduler) choose(day domain.Weekday, task domain.Task, eligible []domain.Person) domain.Person {
	zeroLoad := filter(eligible, func(p domain.Person) bool {
		return s.dailyTaskCount.get(day, p) == 0
	})
	if len(zeroLoad) > 0 {
		neverDone := filter(zeroLoad, func(p domain.Person) bool {
			return s.personTaskCount.get(p, task) == 0
		})
		if len(neverDone) > 0 {
			return pick(s.rnd, neverDone)
		}
		return pick(s.rnd, zeroLoad)
	}

	// everyone eligible already has a task today
	neverDone := filter(eligible, func(p domain.Person) bool {
		return s.personTaskCount.get(p, task) == 0
	})
	if len(neverDone) > 0 {
		return pick(s.rnd, neverDone)
	}

	minLoad := s.dailyTaskCount.get(day, eligible[0])
	for _, p := range eligible[1:] {
		minLoad = min(minLoad, s.dailyTaskCount.get(day, p))
	}
	leastLoaded := filter(eligible, func(p domain.Person) bool {
		return s.dailyTaskCount.get(day, p) == minLoad
	})
	return pick(s.rnd, leastLoaded)
}

func filter(people []domain.Person, keep func(domain.Person) bool) []domain.Person {
	out := []domain.Person{}
	for _, p := range people {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
