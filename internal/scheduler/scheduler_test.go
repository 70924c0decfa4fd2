package scheduler

import (
	"testing"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstSource always picks the first candidate, which follows roster order.
type firstSource struct {
	calls []int
}

func (f *firstSource) Intn(n int) int {
	f.calls = append(f.calls, n)
	return 0
}

func smallTeam(people []domain.Person, tasks []domain.Task) *domain.Team {
	return &domain.Team{
		People:      people,
		Tasks:       tasks,
		TaskWeights: map[domain.Task]int{},
		SizingTask:  domain.TaskSizing,
	}
}

func assertComplete(t *testing.T, team *domain.Team, schedule *domain.Schedule) {
	t.Helper()
	require.NoError(t, schedule.Validate())
	assert.Len(t, schedule.Cells, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		assert.Len(t, schedule.Cells[day], len(team.Tasks), "day %s", day)
	}
}

func assertLogMatches(t *testing.T, schedule *domain.Schedule, log domain.PersonTaskLog) {
	t.Helper()
	assert.Equal(t, domain.BuildPersonTaskLog(schedule), log)
}

func TestGenerate_FullAvailability(t *testing.T) {
	team := domain.DefaultTeam()
	s := New(team, NewRandomSource(1))

	schedule, log := s.Generate(nil, nil)

	assertComplete(t, team, schedule)
	assertLogMatches(t, schedule, log)

	for _, day := range domain.Weekdays {
		for _, task := range team.Tasks {
			o, _ := schedule.Get(day, task)
			assert.True(t, o.IsAssigned(), "%s %s", day, task)
		}
		// 6 people, 5 tasks: the zero-load tier never gives anyone a second task
		for _, person := range team.People {
			assert.LessOrEqual(t, len(log[person][day]), 1, "%s on %s", person, day)
		}
	}
}

func TestGenerate_Holiday(t *testing.T) {
	team := domain.DefaultTeam()
	s := New(team, NewRandomSource(7))

	schedule, log := s.Generate(nil, domain.Holidays{domain.Wednesday})

	assertComplete(t, team, schedule)
	for _, task := range team.Tasks {
		o, _ := schedule.Get(domain.Wednesday, task)
		assert.Equal(t, domain.HolidayOutcome(), o)
		assert.Equal(t, domain.HolidayMarker, o.String())
	}
	for _, day := range []domain.Weekday{domain.Monday, domain.Tuesday, domain.Thursday, domain.Friday} {
		for _, task := range team.Tasks {
			o, _ := schedule.Get(day, task)
			assert.True(t, o.IsAssigned())
		}
	}
	for person, days := range log {
		assert.NotContains(t, days, domain.Wednesday, "%s has tasks on the holiday", person)
	}
	assert.Empty(t, s.dailyTaskCount[domain.Wednesday])
}

func TestGenerate_HolidayDoesNotConsultRandomSource(t *testing.T) {
	team := smallTeam([]domain.Person{"A", "B"}, []domain.Task{"T"})
	src := &firstSource{}
	s := New(team, src)

	s.Generate(nil, domain.Holidays(domain.Weekdays))

	assert.Empty(t, src.calls)
	assert.Empty(t, s.personTaskCount)
	assert.Empty(t, s.dailyTaskCount)
}

func TestGenerate_UnavailablePersonNeverAssigned(t *testing.T) {
	team := domain.DefaultTeam()
	availability := domain.Availability{"Max": {domain.Monday}}

	for seed := int64(0); seed < 50; seed++ {
		schedule, log := New(team, NewRandomSource(seed)).Generate(availability, nil)

		for _, task := range team.Tasks {
			o, _ := schedule.Get(domain.Monday, task)
			assert.NotEqual(t, domain.Person("Max"), o.Person)
		}
		assert.Empty(t, log["Max"][domain.Monday])
	}
}

func TestGenerate_NoSizingNeverOnSizing(t *testing.T) {
	team := domain.DefaultTeam()
	// leave only the no-sizing people and one other on Tuesday
	availability := domain.Availability{
		"Grace":  {domain.Tuesday},
		"Bouj":   {domain.Tuesday},
		"Dapper": {domain.Tuesday},
	}

	for seed := int64(0); seed < 50; seed++ {
		schedule, _ := New(team, NewRandomSource(seed)).Generate(availability, nil)
		for _, day := range domain.Weekdays {
			o, _ := schedule.Get(day, domain.TaskSizing)
			assert.NotContains(t, team.NoSizing, o.Person)
		}
		o, _ := schedule.Get(domain.Tuesday, domain.TaskSizing)
		assert.Equal(t, domain.Person("Max"), o.Person)
	}
}

func TestGenerate_NoOneAvailable(t *testing.T) {
	team := domain.DefaultTeam()
	availability := domain.Availability{}
	for _, person := range team.People {
		availability[person] = []domain.Weekday{domain.Monday}
	}
	// only the no-sizing people are free on Thursday
	for _, person := range []domain.Person{"Grace", "Bouj", "Dapper", "Max"} {
		availability[person] = append(availability[person], domain.Thursday)
	}

	schedule, log := New(team, NewRandomSource(3)).Generate(availability, nil)

	assertComplete(t, team, schedule)
	assertLogMatches(t, schedule, log)
	for _, task := range team.Tasks {
		o, _ := schedule.Get(domain.Monday, task)
		assert.Equal(t, domain.UnassignedOutcome(), o)
		assert.Equal(t, domain.NoOneAvailableMsg, o.String())
	}
	o, _ := schedule.Get(domain.Thursday, domain.TaskSizing)
	assert.Equal(t, domain.OutcomeUnassigned, o.Status)
	for _, task := range team.Tasks[2:] {
		o, _ := schedule.Get(domain.Thursday, task)
		assert.Contains(t, team.NoSizing, o.Person)
	}
}

func TestGenerate_SeededRunsAreReproducible(t *testing.T) {
	team := domain.DefaultTeam()
	availability := domain.Availability{"Grace": {domain.Friday}, "Zi": {domain.Monday, domain.Tuesday}}
	holidays := domain.Holidays{domain.Thursday}

	first, firstLog := New(team, NewRandomSource(42)).Generate(availability, holidays)
	second, secondLog := New(team, NewRandomSource(42)).Generate(availability, holidays)

	assert.Equal(t, first, second)
	assert.Equal(t, firstLog, secondLog)
}

func TestGenerate_CountersResetBetweenRuns(t *testing.T) {
	team := smallTeam([]domain.Person{"A", "B", "C"}, []domain.Task{"T"})
	s := New(team, &firstSource{})

	first, _ := s.Generate(nil, nil)
	second, _ := s.Generate(nil, nil)

	assert.Equal(t, first, second)
}

func TestGenerate_RotatesSingleTask(t *testing.T) {
	team := smallTeam([]domain.Person{"A", "B", "C"}, []domain.Task{"T"})

	schedule, _ := New(team, &firstSource{}).Generate(nil, nil)

	want := []domain.Person{"A", "B", "C", "A", "A"}
	for i, day := range domain.Weekdays {
		o, _ := schedule.Get(day, "T")
		assert.Equal(t, want[i], o.Person, "day %s", day)
	}
}

func TestGenerate_NobodyGetsEverySlot(t *testing.T) {
	team := smallTeam([]domain.Person{"A", "B", "C"}, []domain.Task{"T"})

	for seed := int64(0); seed < 200; seed++ {
		_, log := New(team, NewRandomSource(seed)).Generate(nil, nil)
		for person, days := range log {
			assert.Less(t, len(days), 5, "seed %d: %s got every slot", seed, person)
		}
	}
}

func TestGenerate_PreferenceCascade(t *testing.T) {
	team := smallTeam([]domain.Person{"A", "B"}, []domain.Task{"T1", "T2", "T3"})

	schedule, _ := New(team, &firstSource{}).Generate(nil, nil)

	want := map[domain.Weekday][]domain.Person{
		// T3: nobody is free today, both never did T3 -> first
		domain.Monday: {"A", "B", "A"},
		// T1: B never did it; T2: A is the only unloaded one; T3: B never did it
		domain.Tuesday: {"B", "A", "B"},
		// everyone did everything: unloaded first, then least loaded
		domain.Wednesday: {"A", "B", "A"},
	}
	for day, people := range want {
		for i, task := range team.Tasks {
			o, _ := schedule.Get(day, task)
			assert.Equal(t, people[i], o.Person, "%s %s", day, task)
		}
	}
}

func TestGenerate_LeastLoadedTier(t *testing.T) {
	team := smallTeam([]domain.Person{"A", "B"}, []domain.Task{"T1", "T2", "T3", "T4"})
	// B is away Monday, so A does all Monday tasks and has done each of them once
	availability := domain.Availability{"B": {domain.Monday}}

	schedule, log := New(team, &firstSource{}).Generate(availability, nil)

	assert.Equal(t, []domain.Task{"T1", "T2", "T3", "T4"}, log["A"][domain.Monday])
	// Tuesday: B takes T1 (unloaded), A takes T2 (unloaded),
	// T3 and T4 go to B, who never did them
	tuesday := []domain.Person{"B", "A", "B", "B"}
	for i, task := range team.Tasks {
		o, _ := schedule.Get(domain.Tuesday, task)
		assert.Equal(t, tuesday[i], o.Person, "%s", task)
	}
	// Wednesday: both did every task, so T3 and T4 go to whoever is least loaded
	wednesday := []domain.Person{"A", "B", "A", "B"}
	for i, task := range team.Tasks {
		o, _ := schedule.Get(domain.Wednesday, task)
		assert.Equal(t, wednesday[i], o.Person, "%s", task)
	}
}

func TestGenerate_TieBreakCandidateSetSizes(t *testing.T) {
	team := smallTeam([]domain.Person{"A", "B", "C"}, []domain.Task{"T1", "T2"})
	src := &firstSource{}

	New(team, src).Generate(nil, domain.Holidays{domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday})

	// T1: all three unloaded and fresh; T2: B and C are unloaded and never did T2
	assert.Equal(t, []int{3, 2}, src.calls)
}

func TestGenerate_RandomAvailabilityInvariants(t *testing.T) {
	team := domain.DefaultTeam()

	for seed := int64(0); seed < 100; seed++ {
		rnd := NewRandomSource(seed)
		availability := domain.Availability{}
		for _, person := range team.People {
			for _, day := range domain.Weekdays {
				if rnd.Intn(3) == 0 {
					availability[person] = append(availability[person], day)
				}
			}
		}
		holidays := domain.Holidays{}
		if rnd.Intn(4) == 0 {
			holidays = append(holidays, domain.Weekdays[rnd.Intn(len(domain.Weekdays))])
		}

		checker := NewChecker(team)
		schedule, log := New(team, rnd).Generate(availability, holidays)

		assertComplete(t, team, schedule)
		assertLogMatches(t, schedule, log)
		for _, day := range domain.Weekdays {
			for _, task := range team.Tasks {
				o, _ := schedule.Get(day, task)
				switch {
				case holidays.Contains(day):
					assert.Equal(t, domain.OutcomeHoliday, o.Status)
				case o.IsAssigned():
					assert.True(t, checker.IsEligible(o.Person, task, day, availability))
				default:
					for _, person := range team.People {
						assert.False(t, checker.IsEligible(person, task, day, availability))
					}
				}
			}
		}
	}
}
