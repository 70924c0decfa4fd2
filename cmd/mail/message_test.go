package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplateDir = "../../templates"

// render runs the data through the same json round trip the queue does.
func render(t *testing.T, mailType string, data any) string {
	t.Helper()

	tmpl, _, err := loadTemplate(testTemplateDir, mailType)
	require.NoError(t, err)

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	var decoded any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, decoded))
	return buf.String()
}

func TestWeeklyAssignmentTemplate(t *testing.T) {
	body := render(t, domain.MailTypeWeeklyAssignment, domain.WeeklyAssignmentMailData{
		Person: "Grace",
		WeekOf: "2025-04-14",
		Days: []domain.AssignmentMailDay{
			{Day: "Monday", Tasks: []string{"Sizing", "Review AM Raises, 3rd file"}},
			{Day: "Tuesday", Tasks: []string{}},
		},
		TotalTasks: 2,
	})

	assert.Contains(t, body, "Hi Grace,")
	assert.Contains(t, body, "2025-04-14")
	assert.Contains(t, body, "Sizing; Review AM Raises, 3rd file")
	assert.Contains(t, body, domain.FreeDayMarker)
	assert.Contains(t, body, "Total: 2 tasks.")
}

func TestScheduleConflictTemplate(t *testing.T) {
	body := render(t, domain.MailTypeScheduleConflict, domain.ScheduleConflictMailData{
		FullName:   "Administrator",
		ScheduleID: 12,
		Conflicts:  []string{"No one available for 'Sizing' on Monday"},
	})

	assert.Contains(t, body, "Hi Administrator,")
	assert.Contains(t, body, "Schedule #12 ")
	assert.Contains(t, body, "No one available for &#39;Sizing&#39; on Monday")
}

func TestLoadTemplate_UnknownType(t *testing.T) {
	_, _, err := loadTemplate(testTemplateDir, "create_user")
	assert.Error(t, err)
}

func TestBuildMsg(t *testing.T) {
	body, err := json.Marshal(domain.MailMessage{
		Type: domain.MailTypeScheduleConflict,
		To:   "admin@example.com",
		Data: domain.ScheduleConflictMailData{FullName: "Administrator", ScheduleID: 1, Conflicts: []string{}},
	})
	require.NoError(t, err)

	m, err := buildMsg(body, "rota@example.com", testTemplateDir)
	require.NoError(t, err)
	recipients, err := m.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@example.com"}, recipients)
}

func TestBuildMsg_Errors(t *testing.T) {
	_, err := buildMsg([]byte("not json"), "rota@example.com", testTemplateDir)
	assert.Error(t, err)

	body, err := json.Marshal(domain.MailMessage{Type: domain.MailTypeScheduleConflict, To: "not an address"})
	require.NoError(t, err)
	_, err = buildMsg(body, "rota@example.com", testTemplateDir)
	assert.Error(t, err)
}
