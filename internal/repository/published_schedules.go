package repository

import (
	"database/sql"
	"sort"

	"github.com/muniapms/task-scheduler/backend/internal/domain"
)

// InsertPublishedSchedule stores a schedule. A schedule already published for the same week is replaced.
func (r *Repository) InsertPublishedSchedule(ps *domain.PublishedSchedule) error {
	ctx, cancel := r.transactionContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM published_schedules WHERE week_of = $1`
	if _, err := tx.ExecContext(ctx, query, ps.WeekOf); err != nil {
		return err
	}

	query = `
		INSERT INTO published_schedules (week_of, seed, published_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, ps.WeekOf, ps.Seed, ps.PublishedBy).Scan(&ps.ID, &ps.CreatedAt, &ps.Version); err != nil {
		return err
	}

	query = `
		INSERT INTO published_schedule_cells (published_schedule_id, day_of_week, task_position, task, status, person)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, day := range ps.Schedule.Days {
		for position, task := range ps.Schedule.Tasks {
			o, _ := ps.Schedule.Get(day, task)

			var person sql.NullString
			if o.IsAssigned() {
				person = sql.NullString{String: string(o.Person), Valid: true}
			}

			if _, err := tx.ExecContext(ctx, query, ps.ID, day, position, task, o.Status, person); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPublishedScheduleByID(id int64) (*domain.PublishedSchedule, error) {
	query := `
		SELECT
			ps.week_of,
			ps.seed,
			ps.published_by,
			ps.created_at,
			ps.version,
			psc.day_of_week,
			psc.task_position,
			psc.task,
			psc.status,
			psc.person
		FROM published_schedules ps
		LEFT JOIN published_schedule_cells psc ON ps.id = psc.published_schedule_id
		WHERE ps.id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ps := &domain.PublishedSchedule{ID: id}
	found := false

	type cell struct {
		day      domain.Weekday
		position int
		task     domain.Task
		outcome  domain.Outcome
	}
	cells := []cell{}

	for rows.Next() {
		var row struct {
			seed     sql.NullInt64
			day      sql.NullString
			position sql.NullInt32
			task     sql.NullString
			status   sql.NullString
			person   sql.NullString
		}

		dst := []any{
			&ps.WeekOf,
			&row.seed,
			&ps.PublishedBy,
			&ps.CreatedAt,
			&ps.Version,
			&row.day,
			&row.position,
			&row.task,
			&row.status,
			&row.person,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		found = true

		if row.seed.Valid {
			ps.Seed = &row.seed.Int64
		}

		if !row.day.Valid {
			// a schedule without cells, only possible if the insert was interrupted
			continue
		}

		cells = append(cells, cell{
			day:      domain.Weekday(row.day.String),
			position: int(row.position.Int32),
			task:     domain.Task(row.task.String),
			outcome:  domain.Outcome{Status: domain.OutcomeStatus(row.status.String), Person: domain.Person(row.person.String)},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	// rebuild the task order from the stored positions
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].position < cells[j].position })
	tasks := []domain.Task{}
	seen := map[domain.Task]bool{}
	for _, c := range cells {
		if !seen[c.task] {
			seen[c.task] = true
			tasks = append(tasks, c.task)
		}
	}

	ps.Schedule = domain.NewSchedule(domain.Weekdays, tasks)
	for _, c := range cells {
		ps.Schedule.Set(c.day, c.task, c.outcome)
	}

	return ps, nil
}

// GetAllPublishedSchedules returns metadata only; Schedule is left nil.
func (r *Repository) GetAllPublishedSchedules() ([]*domain.PublishedSchedule, error) {
	query := `
		SELECT id, week_of, seed, published_by, created_at, version
		FROM published_schedules
		ORDER BY week_of DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []*domain.PublishedSchedule{}
	for rows.Next() {
		var ps domain.PublishedSchedule
		var seed sql.NullInt64

		dst := []any{&ps.ID, &ps.WeekOf, &seed, &ps.PublishedBy, &ps.CreatedAt, &ps.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if seed.Valid {
			ps.Seed = &seed.Int64
		}

		schedules = append(schedules, &ps)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) DeletePublishedSchedule(id int64) error {
	query := `DELETE FROM published_schedules WHERE id = $1`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	return err
}

