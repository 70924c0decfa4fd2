package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/muniapms/task-scheduler/backend/internal/utils"
	amqp "github.com/rabbitmq/amqp091-go"
)

func (h *Handler) publishMail(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		h.config.RabbitMQ.Queue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// weeklyAssignmentMails builds one mail per person that has at least one task in the schedule.
func (h *Handler) weeklyAssignmentMails(draft *domain.ScheduleDraft) []domain.MailMessage {
	messages := []domain.MailMessage{}

	for _, person := range h.team.People {
		data := domain.WeeklyAssignmentMailData{
			Person: string(person),
			WeekOf: draft.WeekOf.Format("2006-01-02"),
			Days:   make([]domain.AssignmentMailDay, 0, len(draft.Schedule.Days)),
		}

		for _, day := range draft.Schedule.Days {
			tasks := draft.Schedule.TasksFor(person, day)
			names := make([]string, 0, len(tasks))
			for _, task := range tasks {
				names = append(names, string(task))
			}
			data.Days = append(data.Days, domain.AssignmentMailDay{Day: day.DisplayName(), Tasks: names})
			data.TotalTasks += len(names)
		}

		if data.TotalTasks == 0 {
			continue
		}

		messages = append(messages, domain.MailMessage{
			Type: domain.MailTypeWeeklyAssignment,
			To:   utils.PersonSlug(string(person)) + "@" + h.config.Email.TeamDomain,
			Data: data,
		})
	}

	return messages
}
