package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/muniapms/task-scheduler/backend/internal/config"
	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/muniapms/task-scheduler/backend/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	team        *domain.Team

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		team:        domain.DefaultTeam(),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// everything below requires a logged-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Get("/team", h.GetTeam)

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", h.GetAllPublishedSchedules)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/generate", h.GenerateSchedule)

			r.Route("/drafts/{draftID}", func(r chi.Router) {
				r.Use(h.scheduleDraft)
				r.Get("/", h.GetScheduleDraft)
				r.Get("/export", h.ExportScheduleDraft)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).With(h.myInfo).Post("/publish", h.PublishScheduleDraft)
			})

			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.publishedSchedule)
				r.Get("/", h.GetPublishedSchedule)
				r.Get("/export", h.ExportPublishedSchedule)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeletePublishedSchedule)
			})
		})
	})
}
