package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/muniapms/task-scheduler/backend/internal/calendar"
	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/muniapms/task-scheduler/backend/internal/report"
	"github.com/muniapms/task-scheduler/backend/internal/scheduler"
	"github.com/muniapms/task-scheduler/backend/internal/utils"
)

func draftKey(id string) string {
	return "draft_" + id
}

type generateRequest struct {
	Availability map[string][]string `json:"availability"`
	Holidays     []string            `json:"holidays"`
	Seed         *int64              `json:"seed"`
	WeekOf       string              `json:"weekOf" validate:"omitempty,datetime=2006-01-02"`
}

// buildDraft runs the whole generation pipeline without touching redis or the database.
// Input problems end up as warnings, they never stop the generation.
func (h *Handler) buildDraft(ctx context.Context, req *generateRequest, now time.Time) (*domain.ScheduleDraft, error) {
	weekOf := calendar.WeekStart(now)
	if req.WeekOf != "" {
		t, err := time.ParseInLocation("2006-01-02", req.WeekOf, now.Location())
		if err != nil {
			return nil, err
		}
		weekOf = calendar.WeekStart(t)
	}

	warnings := utils.ValidateAvailabilityInput(req.Availability, h.team)
	availability := utils.NormalizeAvailability(req.Availability, h.team)
	holidays, problems := utils.NormalizeHolidays(req.Holidays)
	warnings = append(warnings, problems...)

	if h.config.Calendar.HolidaySource != "" {
		fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(h.config.Calendar.FetchTimeout)*time.Second)
		defer cancel()

		fetched, err := calendar.FetchHolidays(fetchCtx, h.config.Calendar.HolidaySource, weekOf)
		if err != nil {
			slog.Warn("failed to load holiday calendar", "source", h.config.Calendar.HolidaySource, "error", err)
			warnings = append(warnings, "Holiday calendar could not be loaded, only the submitted holidays were used")
		} else {
			holidays = mergeHolidays(holidays, fetched)
		}
	}

	seed := req.Seed
	if seed == nil {
		seed = h.config.Scheduler.Seed
	}

	var rnd scheduler.RandomSource
	if seed != nil {
		rnd = scheduler.NewRandomSource(*seed)
	}

	s := scheduler.New(h.team, rnd)
	schedule, personTasks := s.Generate(availability, holidays)

	if err := utils.ValidateScheduleWithInputs(schedule, h.team, availability, holidays); err != nil {
		return nil, fmt.Errorf("generated schedule is inconsistent: %w", err)
	}

	draft := &domain.ScheduleDraft{
		ID:           utils.GenerateDraftID(),
		WeekOf:       weekOf,
		Seed:         seed,
		Availability: availability,
		Holidays:     holidays,
		Schedule:     schedule,
		PersonTasks:  personTasks,
		Statistics:   report.CalculateStatistics(schedule, h.team),
		Conflicts:    report.CheckConflicts(schedule, h.config.Scheduler.OverloadThreshold),
		Warnings:     warnings,
		CreatedAt:    now,
	}

	slog.Info("schedule generated",
		"draftID", draft.ID,
		"weekOf", weekOf.Format("2006-01-02"),
		"holidays", len(holidays),
		"unassigned", draft.Statistics.UnassignedSlots,
		"warnings", len(warnings),
	)

	return draft, nil
}

// mergeHolidays returns the union of both sets in Monday to Friday order.
func mergeHolidays(a domain.Holidays, b domain.Holidays) domain.Holidays {
	merged := domain.Holidays{}
	for _, day := range domain.Weekdays {
		if a.Contains(day) || b.Contains(day) {
			merged = append(merged, day)
		}
	}
	return merged
}

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req generateRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	draft, err := h.buildDraft(r.Context(), &req, time.Now())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Set(ctx, draftKey(draft.ID), draft, time.Duration(h.config.Draft.Expiration)*time.Second).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule generated", draft)
}

func (h *Handler) GetScheduleDraft(w http.ResponseWriter, r *http.Request) {
	draft := r.Context().Value(ScheduleDraftCtx).(*domain.ScheduleDraft)

	h.successResponse(w, r, "schedule draft", draft)
}

func (h *Handler) ExportScheduleDraft(w http.ResponseWriter, r *http.Request) {
	draft := r.Context().Value(ScheduleDraftCtx).(*domain.ScheduleDraft)

	h.exportSchedule(w, r, draft.Schedule)
}

// exportSchedule writes the schedule as CSV. ?view=person switches to the per-person table and
// &person=<name> narrows it to a single row.
func (h *Handler) exportSchedule(w http.ResponseWriter, r *http.Request, schedule *domain.Schedule) {
	query := r.URL.Query()

	var table *report.Table
	var base string

	switch query.Get("view") {
	case "", "task":
		table = report.TaskTable(schedule)
		base = "Task_Schedule"
	case "person":
		people := h.team.People
		base = "Individual_Schedule"
		if name := query.Get("person"); name != "" {
			person := domain.Person(name)
			if !h.team.HasPerson(person) {
				h.errorResponse(w, r, fmt.Sprintf("unknown person '%s'", name))
				return
			}
			people = []domain.Person{person}
			base = fmt.Sprintf("%s_%s", base, utils.PersonSlug(name))
		}
		table = report.PersonTable(schedule, people)
	default:
		h.errorResponse(w, r, "view must be either task or person")
		return
	}

	h.writeCSV(w, r, report.Filename(h.config.Scheduler.ExportPrefix, base, "csv", time.Now()), table)
}

func (h *Handler) PublishScheduleDraft(w http.ResponseWriter, r *http.Request) {
	draft := r.Context().Value(ScheduleDraftCtx).(*domain.ScheduleDraft)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	ps := &domain.PublishedSchedule{
		WeekOf:      draft.WeekOf,
		Seed:        draft.Seed,
		Schedule:    draft.Schedule,
		PublishedBy: myInfo.ID,
	}

	if err := h.repository.InsertPublishedSchedule(ps); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "published_schedules_published_by_fkey":
				h.errorResponse(w, r, "publisher not found")
			case "published_schedules_week_of_key":
				h.errorResponse(w, r, "a schedule for this week is being published concurrently")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// the schedule is already stored, so mail failures are only reported
	failed := 0
	for _, msg := range h.weeklyAssignmentMails(draft) {
		if err := h.publishMail(msg); err != nil {
			slog.Error("failed to queue assignment mail", "to", msg.To, "error", err)
			failed++
		}
	}

	if len(draft.Conflicts) > 0 {
		admins, err := h.repository.GetActiveUsersByRole(domain.RoleAdmin)
		if err != nil {
			slog.Error("failed to load admins for conflict report", "error", err)
		}
		for _, admin := range admins {
			msg := domain.MailMessage{
				Type: domain.MailTypeScheduleConflict,
				To:   admin.Email,
				Data: domain.ScheduleConflictMailData{
					FullName:   admin.FullName,
					ScheduleID: ps.ID,
					Conflicts:  draft.Conflicts,
				},
			}
			if err := h.publishMail(msg); err != nil {
				slog.Error("failed to queue conflict mail", "to", msg.To, "error", err)
				failed++
			}
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Del(ctx, draftKey(draft.ID)).Err(); err != nil {
		slog.Error("failed to remove published draft", "draftID", draft.ID, "error", err)
	}

	msg := "schedule published"
	if failed > 0 {
		msg = fmt.Sprintf("schedule published, %d notification mails could not be queued", failed)
	}

	h.successResponse(w, r, msg, ps)
}

func (h *Handler) GetAllPublishedSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.repository.GetAllPublishedSchedules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "published schedules", schedules)
}

type publishedScheduleResponse struct {
	*domain.PublishedSchedule
	PersonTasks domain.PersonTaskLog `json:"personTasks"`
	Statistics  *domain.Statistics   `json:"statistics"`
	Conflicts   []string             `json:"conflicts"`
}

func (h *Handler) GetPublishedSchedule(w http.ResponseWriter, r *http.Request) {
	ps := r.Context().Value(PublishedScheduleCtx).(*domain.PublishedSchedule)

	h.successResponse(w, r, "published schedule", publishedScheduleResponse{
		PublishedSchedule: ps,
		PersonTasks:       domain.BuildPersonTaskLog(ps.Schedule),
		Statistics:        report.CalculateStatistics(ps.Schedule, h.team),
		Conflicts:         report.CheckConflicts(ps.Schedule, h.config.Scheduler.OverloadThreshold),
	})
}

func (h *Handler) ExportPublishedSchedule(w http.ResponseWriter, r *http.Request) {
	ps := r.Context().Value(PublishedScheduleCtx).(*domain.PublishedSchedule)

	h.exportSchedule(w, r, ps.Schedule)
}

func (h *Handler) DeletePublishedSchedule(w http.ResponseWriter, r *http.Request) {
	ps := r.Context().Value(PublishedScheduleCtx).(*domain.PublishedSchedule)

	if err := h.repository.DeletePublishedSchedule(ps.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule deleted", nil)
}
