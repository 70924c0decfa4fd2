package domain

import "slices"

type Person string

type Task string

// Team is the fixed roster and task list a schedule is generated for.
type Team struct {
	People      []Person     `json:"people"`
	Tasks       []Task       `json:"tasks"`
	TaskWeights map[Task]int `json:"taskWeights"` // reserved, not read by the generator
	SizingTask  Task         `json:"sizingTask"`
	NoSizing    []Person     `json:"noSizing"`
}

const TaskSizing Task = "Sizing"

func DefaultTeam() *Team {
	return &Team{
		People: []Person{"Grace", "Bouj", "Zi", "Dapper", "Max", "Mark"},
		Tasks: []Task{
			"Opti (Urgent and Standard)",
			TaskSizing,
			"1st & 2nd File, 2nd round raises",
			"Algo sales, Review 2nd round raises",
			"Review AM Raises, 3rd file",
		},
		TaskWeights: map[Task]int{
			"Opti (Urgent and Standard)":          3,
			TaskSizing:                            2,
			"1st & 2nd File, 2nd round raises":    3,
			"Algo sales, Review 2nd round raises": 2,
			"Review AM Raises, 3rd file":          2,
		},
		SizingTask: TaskSizing,
		NoSizing:   []Person{"Zi", "Mark"},
	}
}

func (t *Team) HasPerson(p Person) bool {
	return slices.Contains(t.People, p)
}

func (t *Team) HasTask(task Task) bool {
	return slices.Contains(t.Tasks, task)
}

func (t *Team) Weight(task Task) int {
	return t.TaskWeights[task]
}
