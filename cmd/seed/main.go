package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/muniapms/task-scheduler/backend/internal/calendar"
	"github.com/muniapms/task-scheduler/backend/internal/config"
	"github.com/muniapms/task-scheduler/backend/internal/domain"
	"github.com/muniapms/task-scheduler/backend/internal/repository"
	"github.com/muniapms/task-scheduler/backend/internal/scheduler"
	"github.com/muniapms/task-scheduler/backend/internal/seed"
	"github.com/muniapms/task-scheduler/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var file string
	var seedValue int64

	flag.IntVar(&op, "op", 0, "operation (1: insert random members, 2: generate from a CSV file and publish, 3: generate from random availability without saving)")
	flag.IntVar(&n, "n", 5, "number of users to insert")
	flag.StringVar(&file, "file", "./internal/seed/data/availability.csv", "availability CSV file for op 2")
	flag.Int64Var(&seedValue, "seed", 0, "random seed, 0 means time-seeded")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	team := domain.DefaultTeam()

	var rnd scheduler.RandomSource
	var seedPtr *int64
	if seedValue != 0 {
		rnd = scheduler.NewRandomSource(seedValue)
		seedPtr = &seedValue
	}

	// op 3 is a dry run and needs neither config nor database
	if op == 3 {
		raw := utils.GenerateRandomAvailability(team, 5)
		holidays := utils.GenerateRandomHolidays(4)
		if _, err := seed.GenerateAndPrint(team, raw, holidays, rnd, 3, os.Stdout); err != nil {
			slog.Error("failed to generate schedule", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("number of users must be positive")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.TeamDomain)
				if err != nil {
					slog.Error("failed to generate user", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("failed to insert user", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("users inserted", slog.Int("count", n-cnt))
		}
	case 2:
		raw, holidays, err := seed.LoadAvailability(file)
		if err != nil {
			slog.Error("failed to load availability", slog.String("file", file), slog.String("error", err.Error()))
			return
		}

		if seedPtr == nil {
			seedPtr = cfg.Scheduler.Seed
			if seedPtr != nil {
				rnd = scheduler.NewRandomSource(*seedPtr)
			}
		}

		schedule, err := seed.GenerateAndPrint(team, raw, holidays, rnd, cfg.Scheduler.OverloadThreshold, os.Stdout)
		if err != nil {
			slog.Error("failed to generate schedule", slog.String("error", err.Error()))
			return
		}

		ps, err := seed.PublishSchedule(repo, schedule, calendar.WeekStart(time.Now()), seedPtr, cfg.InitialAdmin.Username)
		if err != nil {
			slog.Error("failed to publish schedule", slog.String("error", err.Error()))
			return
		}

		slog.Info("schedule published", slog.Int64("id", ps.ID), slog.String("weekOf", ps.WeekOf.Format("2006-01-02")))
	default:
		slog.Error("unknown operation", slog.Int("op", op))
	}
}
