package domain

const (
	MailTypeWeeklyAssignment = "weekly_assignment"
	MailTypeScheduleConflict = "schedule_conflicts"
)

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type AssignmentMailDay struct {
	Day   string   `json:"day"`
	Tasks []string `json:"tasks"`
}

type WeeklyAssignmentMailData struct {
	Person     string              `json:"person"`
	WeekOf     string              `json:"weekOf"`
	Days       []AssignmentMailDay `json:"days"`
	TotalTasks int                 `json:"totalTasks"`
}

type ScheduleConflictMailData struct {
	FullName   string   `json:"fullName"`
	ScheduleID int64    `json:"scheduleID"`
	Conflicts  []string `json:"conflicts"`
}
