package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func setupTestRepo(t *testing.T) (*Repo, func()) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	schema := fmt.Sprintf("test_%d", time.Now().UnixNano())
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s", schema))
		return err
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	_, err = pool.Exec(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	if err != nil {
		pool.Close()
		t.Fatalf("create schema: %v", err)
	}
	if err := createTestTables(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("create tables: %v", err)
	}
	repo := New(pool)
	return repo, func() {
		_, _ = pool.Exec(ctx, fmt.Sprintf("DROP SCHEMA %s CASCADE", schema))
		pool.Close()
	}
}

func createTestTables(ctx context.Context, pool *pgxpool.Pool) error {
	queries := []string{
		`CREATE TABLE customers (id serial PRIMARY KEY, name text NOT NULL, billing_rate numeric(10,2) NOT NULL, email text, created_at timestamptz NOT NULL DEFAULT now())`,
		`CREATE TABLE weekly_schedules (id serial PRIMARY KEY, year integer NOT NULL, week integer NOT NULL, overall_goal text NOT NULL, created_at timestamptz NOT NULL DEFAULT now(), UNIQUE (year, week))`,
		`CREATE TABLE targets (id serial PRIMARY KEY, weekly_schedule_id integer NOT NULL REFERENCES weekly_schedules(id) ON DELETE CASCADE, customer_id integer NOT NULL REFERENCES customers(id), target_hours numeric(5,2) NOT NULL, goal text NOT NULL, created_at timestamptz NOT NULL DEFAULT now())`,
		`CREATE TABLE tasks (id serial PRIMARY KEY, weekly_schedule_id integer NOT NULL REFERENCES weekly_schedules(id) ON DELETE CASCADE, customer_id integer NOT NULL REFERENCES customers(id), target_id integer REFERENCES targets(id) ON DELETE SET NULL, date date NOT NULL, estimated_hours numeric(5,2) NOT NULL, actual_hours numeric(5,2) NOT NULL DEFAULT 0, notes text NOT NULL, billable boolean NOT NULL DEFAULT true, created_at timestamptz NOT NULL DEFAULT now())`,
	}
	for _, query := range queries {
		if _, err := pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func mustDec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCustomerCRUD(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	email := "acme@example.com"
	created, err := repo.CreateCustomer(ctx, "Acme", mustDec("100.00"), &email)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	got, err := repo.GetCustomer(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Acme" || !got.BillingRate.Equal(mustDec("100.00")) {
		t.Fatalf("unexpected customer: %+v", got)
	}

	updated, err := repo.UpdateCustomer(ctx, created.ID, "Acme Corp", mustDec("120.00"), nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Acme Corp" || updated.Email != nil {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := repo.DeleteCustomer(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetCustomer(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestScheduleUniqueYearWeek(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := repo.CreateSchedule(ctx, 2024, 10, "ship it"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.CreateSchedule(ctx, 2024, 10, "again"); !errors.Is(err, ErrDuplicateWeek) {
		t.Fatalf("expected ErrDuplicateWeek, got %v", err)
	}
}

func TestScheduleRelations(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	customer, err := repo.CreateCustomer(ctx, "Acme", mustDec("100.00"), nil)
	if err != nil {
		t.Fatalf("customer: %v", err)
	}
	schedule, err := repo.CreateSchedule(ctx, 2024, 10, "ship it")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	target, err := repo.CreateTarget(ctx, schedule.ID, customer.ID, mustDec("20.00"), "keep Acme busy")
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	targetID := target.ID
	task, err := repo.CreateTask(ctx, TaskFields{
		WeeklyScheduleID: schedule.ID,
		CustomerID:       customer.ID,
		TargetID:         &targetID,
		Date:             "2024-03-06",
		EstimatedHours:   mustDec("4.00"),
		ActualHours:      mustDec("0"),
		Notes:            "design review",
		Billable:         true,
	})
	if err != nil {
		t.Fatalf("task: %v", err)
	}

	got, err := repo.GetScheduleByYearWeek(ctx, 2024, 10)
	if err != nil {
		t.Fatalf("by year/week: %v", err)
	}
	if len(got.Targets) != 1 || got.Targets[0].Customer.Name != "Acme" {
		t.Fatalf("expected denormalized target customer, got %+v", got.Targets)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].Customer.Name != "Acme" {
		t.Fatalf("expected denormalized task customer, got %+v", got.Tasks)
	}
	if got.Tasks[0].Target == nil || got.Tasks[0].Target.ID != target.ID {
		t.Fatalf("expected denormalized task target, got %+v", got.Tasks[0].Target)
	}
	if got.Tasks[0].Date != "2024-03-06" {
		t.Fatalf("expected canonical date, got %q", got.Tasks[0].Date)
	}

	if _, err := repo.GetScheduleByYearWeek(ctx, 2024, 11); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing week, got %v", err)
	}

	withTasks, err := repo.GetTarget(ctx, target.ID)
	if err != nil {
		t.Fatalf("get target: %v", err)
	}
	if len(withTasks.Tasks) != 1 || withTasks.Tasks[0].ID != task.ID {
		t.Fatalf("expected referencing task, got %+v", withTasks.Tasks)
	}
}

func TestDeleteTargetNullsTaskReference(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	customer, err := repo.CreateCustomer(ctx, "Acme", mustDec("100.00"), nil)
	if err != nil {
		t.Fatalf("customer: %v", err)
	}
	schedule, err := repo.CreateSchedule(ctx, 2024, 10, "ship it")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	target, err := repo.CreateTarget(ctx, schedule.ID, customer.ID, mustDec("20.00"), "goal")
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	targetID := target.ID
	task, err := repo.CreateTask(ctx, TaskFields{
		WeeklyScheduleID: schedule.ID,
		CustomerID:       customer.ID,
		TargetID:         &targetID,
		Date:             "2024-03-04",
		EstimatedHours:   mustDec("2.00"),
		ActualHours:      mustDec("0"),
		Notes:            "work",
		Billable:         true,
	})
	if err != nil {
		t.Fatalf("task: %v", err)
	}

	if err := repo.DeleteTarget(ctx, target.ID); err != nil {
		t.Fatalf("delete target: %v", err)
	}
	got, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.TargetID != nil || got.Target != nil {
		t.Fatalf("expected target reference cleared, got %+v", got)
	}
}
