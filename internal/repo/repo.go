package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Resounding/Targets/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateWeek = errors.New("schedule already exists for week")
)

const taskDateLayout = "2006-01-02"

type Repo struct {
	Pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Customers

func (r *Repo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, billing_rate, email, created_at FROM customers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.BillingRate, &c.Email, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *Repo) GetCustomer(ctx context.Context, id int) (models.Customer, error) {
	var c models.Customer
	err := r.Pool.QueryRow(ctx, `SELECT id, name, billing_rate, email, created_at FROM customers WHERE id=$1`, id).
		Scan(&c.ID, &c.Name, &c.BillingRate, &c.Email, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Customer{}, ErrNotFound
	}
	return c, err
}

func (r *Repo) CreateCustomer(ctx context.Context, name string, billingRate decimal.Decimal, email *string) (models.Customer, error) {
	c := models.Customer{Name: name, BillingRate: billingRate, Email: email}
	err := r.Pool.QueryRow(ctx, `INSERT INTO customers (name, billing_rate, email) VALUES ($1, $2, $3) RETURNING id, created_at`,
		name, billingRate, email).Scan(&c.ID, &c.CreatedAt)
	return c, err
}

func (r *Repo) UpdateCustomer(ctx context.Context, id int, name string, billingRate decimal.Decimal, email *string) (models.Customer, error) {
	c := models.Customer{ID: id, Name: name, BillingRate: billingRate, Email: email}
	err := r.Pool.QueryRow(ctx, `UPDATE customers SET name=$1, billing_rate=$2, email=$3 WHERE id=$4 RETURNING created_at`,
		name, billingRate, email, id).Scan(&c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Customer{}, ErrNotFound
	}
	return c, err
}

func (r *Repo) DeleteCustomer(ctx context.Context, id int) error {
	cmd, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Weekly schedules

func (r *Repo) ListSchedules(ctx context.Context) ([]models.WeeklySchedule, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, year, week, overall_goal, created_at FROM weekly_schedules ORDER BY year DESC, week DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var schedules []models.WeeklySchedule
	for rows.Next() {
		var s models.WeeklySchedule
		if err := rows.Scan(&s.ID, &s.Year, &s.Week, &s.OverallGoal, &s.CreatedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *Repo) GetSchedule(ctx context.Context, id int) (models.WeeklyScheduleWithRelations, error) {
	var s models.WeeklyScheduleWithRelations
	err := r.Pool.QueryRow(ctx, `SELECT id, year, week, overall_goal, created_at FROM weekly_schedules WHERE id=$1`, id).
		Scan(&s.ID, &s.Year, &s.Week, &s.OverallGoal, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.WeeklyScheduleWithRelations{}, ErrNotFound
	}
	if err != nil {
		return models.WeeklyScheduleWithRelations{}, err
	}
	if s.Targets, err = r.ListTargetsBySchedule(ctx, id); err != nil {
		return models.WeeklyScheduleWithRelations{}, err
	}
	if s.Tasks, err = r.ListTasksBySchedule(ctx, id); err != nil {
		return models.WeeklyScheduleWithRelations{}, err
	}
	return s, nil
}

func (r *Repo) GetScheduleByYearWeek(ctx context.Context, year, week int) (models.WeeklyScheduleWithRelations, error) {
	var id int
	err := r.Pool.QueryRow(ctx, `SELECT id FROM weekly_schedules WHERE year=$1 AND week=$2`, year, week).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.WeeklyScheduleWithRelations{}, ErrNotFound
	}
	if err != nil {
		return models.WeeklyScheduleWithRelations{}, err
	}
	return r.GetSchedule(ctx, id)
}

func (r *Repo) CreateSchedule(ctx context.Context, year, week int, overallGoal string) (models.WeeklySchedule, error) {
	s := models.WeeklySchedule{Year: year, Week: week, OverallGoal: overallGoal}
	err := r.Pool.QueryRow(ctx, `INSERT INTO weekly_schedules (year, week, overall_goal) VALUES ($1, $2, $3) RETURNING id, created_at`,
		year, week, overallGoal).Scan(&s.ID, &s.CreatedAt)
	if isUniqueViolation(err) {
		return models.WeeklySchedule{}, ErrDuplicateWeek
	}
	return s, err
}

func (r *Repo) UpdateSchedule(ctx context.Context, id, year, week int, overallGoal string) (models.WeeklySchedule, error) {
	s := models.WeeklySchedule{ID: id, Year: year, Week: week, OverallGoal: overallGoal}
	err := r.Pool.QueryRow(ctx, `UPDATE weekly_schedules SET year=$1, week=$2, overall_goal=$3 WHERE id=$4 RETURNING created_at`,
		year, week, overallGoal, id).Scan(&s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.WeeklySchedule{}, ErrNotFound
	}
	if isUniqueViolation(err) {
		return models.WeeklySchedule{}, ErrDuplicateWeek
	}
	return s, err
}

func (r *Repo) DeleteSchedule(ctx context.Context, id int) error {
	cmd, err := r.Pool.Exec(ctx, `DELETE FROM weekly_schedules WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Targets

func (r *Repo) ListTargets(ctx context.Context) ([]models.Target, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, weekly_schedule_id, customer_id, target_hours, goal, created_at FROM targets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var targets []models.Target
	for rows.Next() {
		var t models.Target
		if err := rows.Scan(&t.ID, &t.WeeklyScheduleID, &t.CustomerID, &t.TargetHours, &t.Goal, &t.CreatedAt); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func (r *Repo) GetTarget(ctx context.Context, id int) (models.TargetWithRelations, error) {
	var t models.TargetWithRelations
	err := r.Pool.QueryRow(ctx, `SELECT t.id, t.weekly_schedule_id, t.customer_id, t.target_hours, t.goal, t.created_at,
			c.id, c.name, c.billing_rate, c.email, c.created_at
		FROM targets t JOIN customers c ON c.id = t.customer_id
		WHERE t.id=$1`, id).
		Scan(&t.ID, &t.WeeklyScheduleID, &t.CustomerID, &t.TargetHours, &t.Goal, &t.CreatedAt,
			&t.Customer.ID, &t.Customer.Name, &t.Customer.BillingRate, &t.Customer.Email, &t.Customer.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TargetWithRelations{}, ErrNotFound
	}
	if err != nil {
		return models.TargetWithRelations{}, err
	}

	rows, err := r.Pool.Query(ctx, `SELECT id, weekly_schedule_id, customer_id, target_id, date, estimated_hours, actual_hours, notes, billable, created_at
		FROM tasks WHERE target_id=$1 ORDER BY date, id`, id)
	if err != nil {
		return models.TargetWithRelations{}, err
	}
	defer rows.Close()
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return models.TargetWithRelations{}, err
		}
		t.Tasks = append(t.Tasks, task)
	}
	return t, rows.Err()
}

func (r *Repo) ListTargetsBySchedule(ctx context.Context, scheduleID int) ([]models.TargetWithCustomer, error) {
	rows, err := r.Pool.Query(ctx, `SELECT t.id, t.weekly_schedule_id, t.customer_id, t.target_hours, t.goal, t.created_at,
			c.id, c.name, c.billing_rate, c.email, c.created_at
		FROM targets t JOIN customers c ON c.id = t.customer_id
		WHERE t.weekly_schedule_id=$1 ORDER BY t.id`, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var targets []models.TargetWithCustomer
	for rows.Next() {
		var t models.TargetWithCustomer
		if err := rows.Scan(&t.ID, &t.WeeklyScheduleID, &t.CustomerID, &t.TargetHours, &t.Goal, &t.CreatedAt,
			&t.Customer.ID, &t.Customer.Name, &t.Customer.BillingRate, &t.Customer.Email, &t.Customer.CreatedAt); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

func (r *Repo) CreateTarget(ctx context.Context, scheduleID, customerID int, targetHours decimal.Decimal, goal string) (models.Target, error) {
	t := models.Target{WeeklyScheduleID: scheduleID, CustomerID: customerID, TargetHours: targetHours, Goal: goal}
	err := r.Pool.QueryRow(ctx, `INSERT INTO targets (weekly_schedule_id, customer_id, target_hours, goal) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		scheduleID, customerID, targetHours, goal).Scan(&t.ID, &t.CreatedAt)
	return t, err
}

func (r *Repo) UpdateTarget(ctx context.Context, id, scheduleID, customerID int, targetHours decimal.Decimal, goal string) (models.Target, error) {
	t := models.Target{ID: id, WeeklyScheduleID: scheduleID, CustomerID: customerID, TargetHours: targetHours, Goal: goal}
	err := r.Pool.QueryRow(ctx, `UPDATE targets SET weekly_schedule_id=$1, customer_id=$2, target_hours=$3, goal=$4 WHERE id=$5 RETURNING created_at`,
		scheduleID, customerID, targetHours, goal, id).Scan(&t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Target{}, ErrNotFound
	}
	return t, err
}

func (r *Repo) DeleteTarget(ctx context.Context, id int) error {
	cmd, err := r.Pool.Exec(ctx, `DELETE FROM targets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Tasks

func scanTask(rows pgx.Rows) (models.Task, error) {
	var t models.Task
	var date time.Time
	err := rows.Scan(&t.ID, &t.WeeklyScheduleID, &t.CustomerID, &t.TargetID, &date,
		&t.EstimatedHours, &t.ActualHours, &t.Notes, &t.Billable, &t.CreatedAt)
	if err != nil {
		return models.Task{}, err
	}
	t.Date = date.Format(taskDateLayout)
	return t, nil
}

func (r *Repo) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, weekly_schedule_id, customer_id, target_id, date, estimated_hours, actual_hours, notes, billable, created_at
		FROM tasks ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *Repo) GetTask(ctx context.Context, id int) (models.TaskWithRelations, error) {
	rows, err := r.Pool.Query(ctx, taskWithRelationsQuery+` WHERE t.id=$1`, id)
	if err != nil {
		return models.TaskWithRelations{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.TaskWithRelations{}, err
		}
		return models.TaskWithRelations{}, ErrNotFound
	}
	return scanTaskWithRelations(rows)
}

const taskWithRelationsQuery = `SELECT t.id, t.weekly_schedule_id, t.customer_id, t.target_id, t.date, t.estimated_hours, t.actual_hours, t.notes, t.billable, t.created_at,
		c.id, c.name, c.billing_rate, c.email, c.created_at,
		tg.id, tg.weekly_schedule_id, tg.customer_id, tg.target_hours, tg.goal, tg.created_at
	FROM tasks t
	JOIN customers c ON c.id = t.customer_id
	LEFT JOIN targets tg ON tg.id = t.target_id`

func scanTaskWithRelations(rows pgx.Rows) (models.TaskWithRelations, error) {
	var t models.TaskWithRelations
	var date time.Time
	var tgID, tgScheduleID, tgCustomerID *int
	var tgHours *decimal.Decimal
	var tgGoal *string
	var tgCreatedAt *time.Time
	err := rows.Scan(&t.ID, &t.WeeklyScheduleID, &t.CustomerID, &t.TargetID, &date,
		&t.EstimatedHours, &t.ActualHours, &t.Notes, &t.Billable, &t.CreatedAt,
		&t.Customer.ID, &t.Customer.Name, &t.Customer.BillingRate, &t.Customer.Email, &t.Customer.CreatedAt,
		&tgID, &tgScheduleID, &tgCustomerID, &tgHours, &tgGoal, &tgCreatedAt)
	if err != nil {
		return models.TaskWithRelations{}, err
	}
	t.Date = date.Format(taskDateLayout)
	if tgID != nil {
		t.Target = &models.Target{
			ID:               *tgID,
			WeeklyScheduleID: *tgScheduleID,
			CustomerID:       *tgCustomerID,
			TargetHours:      *tgHours,
			Goal:             *tgGoal,
			CreatedAt:        *tgCreatedAt,
		}
	}
	return t, nil
}

func (r *Repo) ListTasksBySchedule(ctx context.Context, scheduleID int) ([]models.TaskWithRelations, error) {
	rows, err := r.Pool.Query(ctx, taskWithRelationsQuery+` WHERE t.weekly_schedule_id=$1 ORDER BY t.date, t.id`, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tasks []models.TaskWithRelations
	for rows.Next() {
		task, err := scanTaskWithRelations(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

type TaskFields struct {
	WeeklyScheduleID int
	CustomerID       int
	TargetID         *int
	Date             string
	EstimatedHours   decimal.Decimal
	ActualHours      decimal.Decimal
	Notes            string
	Billable         bool
}

func (r *Repo) CreateTask(ctx context.Context, f TaskFields) (models.Task, error) {
	t := models.Task{
		WeeklyScheduleID: f.WeeklyScheduleID,
		CustomerID:       f.CustomerID,
		TargetID:         f.TargetID,
		Date:             f.Date,
		EstimatedHours:   f.EstimatedHours,
		ActualHours:      f.ActualHours,
		Notes:            f.Notes,
		Billable:         f.Billable,
	}
	err := r.Pool.QueryRow(ctx, `INSERT INTO tasks (weekly_schedule_id, customer_id, target_id, date, estimated_hours, actual_hours, notes, billable)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`,
		f.WeeklyScheduleID, f.CustomerID, f.TargetID, f.Date, f.EstimatedHours, f.ActualHours, f.Notes, f.Billable).
		Scan(&t.ID, &t.CreatedAt)
	return t, err
}

func (r *Repo) UpdateTask(ctx context.Context, id int, f TaskFields) (models.Task, error) {
	t := models.Task{
		ID:               id,
		WeeklyScheduleID: f.WeeklyScheduleID,
		CustomerID:       f.CustomerID,
		TargetID:         f.TargetID,
		Date:             f.Date,
		EstimatedHours:   f.EstimatedHours,
		ActualHours:      f.ActualHours,
		Notes:            f.Notes,
		Billable:         f.Billable,
	}
	err := r.Pool.QueryRow(ctx, `UPDATE tasks SET weekly_schedule_id=$1, customer_id=$2, target_id=$3, date=$4, estimated_hours=$5, actual_hours=$6, notes=$7, billable=$8
		WHERE id=$9 RETURNING created_at`,
		f.WeeklyScheduleID, f.CustomerID, f.TargetID, f.Date, f.EstimatedHours, f.ActualHours, f.Notes, f.Billable, id).
		Scan(&t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	return t, err
}

func (r *Repo) DeleteTask(ctx context.Context, id int) error {
	cmd, err := r.Pool.Exec(ctx, `DELETE FROM tasks WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
