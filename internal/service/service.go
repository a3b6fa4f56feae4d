package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Resounding/Targets/internal/calendar"
	"github.com/Resounding/Targets/internal/models"
	"github.com/Resounding/Targets/internal/planning"
	"github.com/Resounding/Targets/internal/repo"
)

var ErrInvalidDayIndex = errors.New("day index out of range")

// Store is the entity persistence contract the planning layer and the
// HTTP handlers consume. *repo.Repo is the Postgres implementation.
type Store interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int) (models.Customer, error)
	CreateCustomer(ctx context.Context, name string, billingRate decimal.Decimal, email *string) (models.Customer, error)
	UpdateCustomer(ctx context.Context, id int, name string, billingRate decimal.Decimal, email *string) (models.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error

	ListSchedules(ctx context.Context) ([]models.WeeklySchedule, error)
	GetSchedule(ctx context.Context, id int) (models.WeeklyScheduleWithRelations, error)
	GetScheduleByYearWeek(ctx context.Context, year, week int) (models.WeeklyScheduleWithRelations, error)
	CreateSchedule(ctx context.Context, year, week int, overallGoal string) (models.WeeklySchedule, error)
	UpdateSchedule(ctx context.Context, id, year, week int, overallGoal string) (models.WeeklySchedule, error)
	DeleteSchedule(ctx context.Context, id int) error

	ListTargets(ctx context.Context) ([]models.Target, error)
	GetTarget(ctx context.Context, id int) (models.TargetWithRelations, error)
	ListTargetsBySchedule(ctx context.Context, scheduleID int) ([]models.TargetWithCustomer, error)
	CreateTarget(ctx context.Context, scheduleID, customerID int, targetHours decimal.Decimal, goal string) (models.Target, error)
	UpdateTarget(ctx context.Context, id, scheduleID, customerID int, targetHours decimal.Decimal, goal string) (models.Target, error)
	DeleteTarget(ctx context.Context, id int) error

	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int) (models.TaskWithRelations, error)
	ListTasksBySchedule(ctx context.Context, scheduleID int) ([]models.TaskWithRelations, error)
	CreateTask(ctx context.Context, fields repo.TaskFields) (models.Task, error)
	UpdateTask(ctx context.Context, id int, fields repo.TaskFields) (models.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// Service composes the store with the pure planning core.
type Service struct {
	Store Store
}

func New(store Store) *Service {
	return &Service{Store: store}
}

type DaySummary struct {
	Date    string `json:"date"`
	DayName string `json:"dayName"`
	planning.DayTotals
}

type WeekSummary struct {
	ScheduleID int                       `json:"scheduleId"`
	Year       int                       `json:"year"`
	Week       int                       `json:"week"`
	WeekRange  string                    `json:"weekRange"`
	Days       [6]DaySummary             `json:"days"`
	Totals     planning.WeekTotals       `json:"totals"`
	Targets    []planning.TargetProgress `json:"targets"`
}

// WeekSummary recomputes the dashboard numbers for a schedule from a
// fresh snapshot of its tasks and targets.
func (s *Service) WeekSummary(ctx context.Context, scheduleID int) (WeekSummary, error) {
	schedule, err := s.Store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return WeekSummary{}, err
	}

	summary := WeekSummary{
		ScheduleID: schedule.ID,
		Year:       schedule.Year,
		Week:       schedule.Week,
		WeekRange:  calendar.FormatWeekRange(schedule.Year, schedule.Week),
		Totals:     planning.SumWeek(schedule.Tasks, schedule.Targets),
	}

	weekDates := calendar.WeekDates(schedule.Year, schedule.Week)
	for i, date := range weekDates {
		dateStr := calendar.FormatTaskDate(date)
		var dayTasks []models.TaskWithRelations
		for _, task := range schedule.Tasks {
			if task.Date == dateStr {
				dayTasks = append(dayTasks, task)
			}
		}
		summary.Days[i] = DaySummary{
			Date:      dateStr,
			DayName:   calendar.DayName(i),
			DayTotals: planning.SumDay(dayTasks),
		}
	}

	for _, target := range schedule.Targets {
		summary.Targets = append(summary.Targets, planning.Progress(target.Target, schedule.Tasks))
	}
	return summary, nil
}

// DraftFromDrop reconciles a target dropped onto a day column into a
// pre-filled task draft. Nothing is persisted; the caller submits the
// draft through the task API once the user confirms.
func (s *Service) DraftFromDrop(ctx context.Context, targetID, dayIndex int) (planning.TaskDraft, error) {
	if dayIndex < 0 || dayIndex > 5 {
		return planning.TaskDraft{}, fmt.Errorf("%w: %d", ErrInvalidDayIndex, dayIndex)
	}
	target, err := s.Store.GetTarget(ctx, targetID)
	if err != nil {
		return planning.TaskDraft{}, err
	}
	schedule, err := s.Store.GetSchedule(ctx, target.WeeklyScheduleID)
	if err != nil {
		return planning.TaskDraft{}, err
	}

	var rec planning.DragReconciler
	rec.Drop(target.Target, dayIndex)
	draft, ok := rec.Resolve(dayIndex, calendar.WeekDates(schedule.Year, schedule.Week))
	if !ok {
		return planning.TaskDraft{}, fmt.Errorf("unresolved drop for target %d", targetID)
	}
	return draft, nil
}
