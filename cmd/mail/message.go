package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

type mailTemplate struct {
	file    string
	subject string
}

var mailTemplates = map[string]mailTemplate{
	domain.MailTypeWeeklyAssignment: {
		file:    "weekly_assignment_email.html",
		subject: "MuniAPMs Task Rota - Your tasks this week",
	},
	domain.MailTypeScheduleConflict: {
		file:    "schedule_conflicts_email.html",
		subject: "MuniAPMs Task Rota - Schedule conflicts",
	},
}

func loadTemplate(dir string, mailType string) (*template.Template, string, error) {
	mt, ok := mailTemplates[mailType]
	if !ok {
		return nil, "", fmt.Errorf("unsupported mail type %q", mailType)
	}

	tmpl, err := template.ParseFiles(filepath.Join(dir, mt.file))
	if err != nil {
		return nil, "", err
	}

	return tmpl, mt.subject, nil
}

// buildMsg decodes a queued message and renders it. Data arrives as generic JSON, the templates
// address it by its json keys.
func buildMsg(body []byte, from string, templateDir string) (*mail.Msg, error) {
	mailMessage := domain.MailMessage{}
	if err := json.Unmarshal(body, &mailMessage); err != nil {
		return nil, fmt.Errorf("decoding mail message: %w", err)
	}

	tmpl, subject, err := loadTemplate(templateDir, mailMessage.Type)
	if err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("setting sender: %w", err)
	}
	if err := m.To(mailMessage.To); err != nil {
		return nil, fmt.Errorf("setting recipient: %w", err)
	}
	if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
		return nil, fmt.Errorf("rendering body: %w", err)
	}
	m.Subject(subject)

	return m, nil
}
