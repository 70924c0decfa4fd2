package handler

import (
	"net/http"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
)

type weekdayResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	days := make([]weekdayResponse, 0, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		days = append(days, weekdayResponse{Token: string(day), Name: day.DisplayName()})
	}

	h.successResponse(w, r, "team", struct {
		*domain.Team
		Weekdays []weekdayResponse `json:"weekdays"`
	}{
		Team:     h.team,
		Weekdays: days,
	})
}
