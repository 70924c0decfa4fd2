package scheduler

import (
	"testing"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestChecker_IsEligible(t *testing.T) {
	checker := NewChecker(domain.DefaultTeam())
	availability := domain.Availability{
		"Grace": {domain.Monday, domain.Friday},
	}

	tests := []struct {
		name   string
		person domain.Person
		task   domain.Task
		day    domain.Weekday
		want   bool
	}{
		{"available", "Grace", "Opti (Urgent and Standard)", domain.Tuesday, true},
		{"unavailable day", "Grace", "Opti (Urgent and Standard)", domain.Monday, false},
		{"unavailable day sizing", "Grace", domain.TaskSizing, domain.Friday, false},
		{"sizing allowed", "Bouj", domain.TaskSizing, domain.Monday, true},
		{"no sizing person on sizing", "Zi", domain.TaskSizing, domain.Monday, false},
		{"no sizing person on other task", "Mark", "Review AM Raises, 3rd file", domain.Monday, true},
		{"absent from availability", "Max", domain.TaskSizing, domain.Wednesday, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checker.IsEligible(tt.person, tt.task, tt.day, availability))
		})
	}
}

func TestChecker_NilAvailability(t *testing.T) {
	checker := NewChecker(domain.DefaultTeam())
	assert.True(t, checker.IsEligible("Dapper", domain.TaskSizing, domain.Thursday, nil))
	assert.False(t, checker.IsEligible("Zi", domain.TaskSizing, domain.Thursday, nil))
}
