package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Resounding/Targets/internal/calendar"
	"github.com/Resounding/Targets/internal/models"
	"github.com/Resounding/Targets/internal/repo"
	"github.com/Resounding/Targets/internal/service"
)

const maxBodyBytes = 1 << 20

// Request payloads use pointer fields so PUT can patch a subset of
// fields; absent fields keep their stored values.

type customerRequest struct {
	Name        *string          `json:"name"`
	BillingRate *decimal.Decimal `json:"billingRate"`
	Email       *string          `json:"email"`
}

type scheduleRequest struct {
	Year        *int    `json:"year"`
	Week        *int    `json:"week"`
	OverallGoal *string `json:"overallGoal"`
}

type targetRequest struct {
	WeeklyScheduleID *int             `json:"weeklyScheduleId"`
	CustomerID       *int             `json:"customerId"`
	TargetHours      *decimal.Decimal `json:"targetHours"`
	Goal             *string          `json:"goal"`
}

type taskRequest struct {
	WeeklyScheduleID *int             `json:"weeklyScheduleId"`
	CustomerID       *int             `json:"customerId"`
	TargetID         *int             `json:"targetId"` // 0 clears the reference on update
	Date             *string          `json:"date"`
	EstimatedHours   *decimal.Decimal `json:"estimatedHours"`
	ActualHours      *decimal.Decimal `json:"actualHours"`
	Notes            *string          `json:"notes"`
	Billable         *bool            `json:"billable"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return false
	}
	return true
}

func idParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		writeValidationError(w, "Invalid "+name, []fieldError{{Field: name, Message: "must be a positive integer"}})
		return 0, false
	}
	return id, true
}

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Customers

func (a *API) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := a.Store.ListCustomers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

func (a *API) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	customer, err := a.Store.GetCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch customer")
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func validateCustomer(name string, billingRate decimal.Decimal) []fieldError {
	var errs []fieldError
	if name == "" {
		errs = append(errs, fieldError{Field: "name", Message: "is required"})
	}
	if billingRate.IsNegative() {
		errs = append(errs, fieldError{Field: "billingRate", Message: "must not be negative"})
	}
	return errs
}

func (a *API) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs []fieldError
	if req.Name == nil {
		errs = append(errs, fieldError{Field: "name", Message: "is required"})
	}
	if req.BillingRate == nil {
		errs = append(errs, fieldError{Field: "billingRate", Message: "is required"})
	}
	if len(errs) == 0 {
		errs = validateCustomer(*req.Name, *req.BillingRate)
	}
	if len(errs) > 0 {
		writeValidationError(w, "Invalid customer data", errs)
		return
	}
	customer, err := a.Store.CreateCustomer(r.Context(), *req.Name, *req.BillingRate, req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create customer")
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (a *API) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req customerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	existing, err := a.Store.GetCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update customer")
		return
	}
	name, billingRate, email := existing.Name, existing.BillingRate, existing.Email
	if req.Name != nil {
		name = *req.Name
	}
	if req.BillingRate != nil {
		billingRate = *req.BillingRate
	}
	if req.Email != nil {
		email = req.Email
	}
	if errs := validateCustomer(name, billingRate); len(errs) > 0 {
		writeValidationError(w, "Invalid customer data", errs)
		return
	}
	customer, err := a.Store.UpdateCustomer(r.Context(), id, name, billingRate, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update customer")
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (a *API) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := a.Store.DeleteCustomer(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Weekly schedules

func (a *API) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := a.Store.ListSchedules(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch weekly schedules")
		return
	}
	if schedules == nil {
		schedules = []models.WeeklySchedule{}
	}
	writeJSON(w, http.StatusOK, schedules)
}

func (a *API) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	schedule, err := a.Store.GetSchedule(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Weekly schedule not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch weekly schedule")
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (a *API) handleGetScheduleByWeek(w http.ResponseWriter, r *http.Request) {
	year, ok := idParam(w, r, "year")
	if !ok {
		return
	}
	week, ok := idParam(w, r, "week")
	if !ok {
		return
	}
	schedule, err := a.Store.GetScheduleByYearWeek(r.Context(), year, week)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Weekly schedule not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch weekly schedule")
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func validateSchedule(year, week int) []fieldError {
	var errs []fieldError
	if year < 1 {
		errs = append(errs, fieldError{Field: "year", Message: "must be a positive year"})
	}
	if week < 1 || week > 53 {
		errs = append(errs, fieldError{Field: "week", Message: "must be between 1 and 53"})
	}
	return errs
}

func (a *API) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs []fieldError
	if req.Year == nil {
		errs = append(errs, fieldError{Field: "year", Message: "is required"})
	}
	if req.Week == nil {
		errs = append(errs, fieldError{Field: "week", Message: "is required"})
	}
	if req.OverallGoal == nil {
		errs = append(errs, fieldError{Field: "overallGoal", Message: "is required"})
	}
	if len(errs) == 0 {
		errs = validateSchedule(*req.Year, *req.Week)
	}
	if len(errs) > 0 {
		writeValidationError(w, "Invalid weekly schedule data", errs)
		return
	}
	schedule, err := a.Store.CreateSchedule(r.Context(), *req.Year, *req.Week, *req.OverallGoal)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateWeek) {
			writeValidationError(w, "Invalid weekly schedule data", []fieldError{{Field: "week", Message: "schedule already exists for this week"}})
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create weekly schedule")
		return
	}
	writeJSON(w, http.StatusCreated, schedule)
}

func (a *API) handleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req scheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	existing, err := a.Store.GetSchedule(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Weekly schedule not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update weekly schedule")
		return
	}
	year, week, overallGoal := existing.Year, existing.Week, existing.OverallGoal
	if req.Year != nil {
		year = *req.Year
	}
	if req.Week != nil {
		week = *req.Week
	}
	if req.OverallGoal != nil {
		overallGoal = *req.OverallGoal
	}
	if errs := validateSchedule(year, week); len(errs) > 0 {
		writeValidationError(w, "Invalid weekly schedule data", errs)
		return
	}
	schedule, err := a.Store.UpdateSchedule(r.Context(), id, year, week, overallGoal)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			writeError(w, http.StatusNotFound, "Weekly schedule not found")
		case errors.Is(err, repo.ErrDuplicateWeek):
			writeValidationError(w, "Invalid weekly schedule data", []fieldError{{Field: "week", Message: "schedule already exists for this week"}})
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update weekly schedule")
		}
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (a *API) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := a.Store.DeleteSchedule(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Weekly schedule not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete weekly schedule")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleWeekSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	summary, err := a.Planner.WeekSummary(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Weekly schedule not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to compute summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Targets

func (a *API) handleListTargets(w http.ResponseWriter, r *http.Request) {
	targets, err := a.Store.ListTargets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch targets")
		return
	}
	if targets == nil {
		targets = []models.Target{}
	}
	writeJSON(w, http.StatusOK, targets)
}

func (a *API) handleGetTarget(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	target, err := a.Store.GetTarget(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Target not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch target")
		return
	}
	writeJSON(w, http.StatusOK, target)
}

func (a *API) handleListTargetsBySchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID, ok := idParam(w, r, "weeklyScheduleId")
	if !ok {
		return
	}
	targets, err := a.Store.ListTargetsBySchedule(r.Context(), scheduleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch targets")
		return
	}
	if targets == nil {
		targets = []models.TargetWithCustomer{}
	}
	writeJSON(w, http.StatusOK, targets)
}

func validateTarget(targetHours decimal.Decimal) []fieldError {
	if targetHours.IsNegative() {
		return []fieldError{{Field: "targetHours", Message: "must not be negative"}}
	}
	return nil
}

func (a *API) handleCreateTarget(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs []fieldError
	if req.WeeklyScheduleID == nil {
		errs = append(errs, fieldError{Field: "weeklyScheduleId", Message: "is required"})
	}
	if req.CustomerID == nil {
		errs = append(errs, fieldError{Field: "customerId", Message: "is required"})
	}
	if req.TargetHours == nil {
		errs = append(errs, fieldError{Field: "targetHours", Message: "is required"})
	}
	if req.Goal == nil {
		errs = append(errs, fieldError{Field: "goal", Message: "is required"})
	}
	if len(errs) == 0 {
		errs = validateTarget(*req.TargetHours)
	}
	if len(errs) > 0 {
		writeValidationError(w, "Invalid target data", errs)
		return
	}
	target, err := a.Store.CreateTarget(r.Context(), *req.WeeklyScheduleID, *req.CustomerID, *req.TargetHours, *req.Goal)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create target")
		return
	}
	writeJSON(w, http.StatusCreated, target)
}

func (a *API) handleUpdateTarget(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req targetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	existing, err := a.Store.GetTarget(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Target not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update target")
		return
	}
	scheduleID, customerID := existing.WeeklyScheduleID, existing.CustomerID
	targetHours, goal := existing.TargetHours, existing.Goal
	if req.WeeklyScheduleID != nil {
		scheduleID = *req.WeeklyScheduleID
	}
	if req.CustomerID != nil {
		customerID = *req.CustomerID
	}
	if req.TargetHours != nil {
		targetHours = *req.TargetHours
	}
	if req.Goal != nil {
		goal = *req.Goal
	}
	if errs := validateTarget(targetHours); len(errs) > 0 {
		writeValidationError(w, "Invalid target data", errs)
		return
	}
	target, err := a.Store.UpdateTarget(r.Context(), id, scheduleID, customerID, targetHours, goal)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Target not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update target")
		return
	}
	writeJSON(w, http.StatusOK, target)
}

func (a *API) handleDeleteTarget(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := a.Store.DeleteTarget(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Target not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete target")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleTargetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	dayIndex, err := strconv.Atoi(chi.URLParam(r, "dayIndex"))
	if err != nil {
		writeValidationError(w, "Invalid day index", []fieldError{{Field: "dayIndex", Message: "must be an integer between 0 and 5"}})
		return
	}
	draft, err := a.Planner.DraftFromDrop(r.Context(), id, dayIndex)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDayIndex):
			writeValidationError(w, "Invalid day index", []fieldError{{Field: "dayIndex", Message: "must be an integer between 0 and 5"}})
		case errors.Is(err, repo.ErrNotFound):
			writeError(w, http.StatusNotFound, "Target not found")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to build task draft")
		}
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Tasks

func (a *API) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := a.Store.ListTasks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (a *API) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	task, err := a.Store.GetTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (a *API) handleListTasksBySchedule(w http.ResponseWriter, r *http.Request) {
	scheduleID, ok := idParam(w, r, "weeklyScheduleId")
	if !ok {
		return
	}
	tasks, err := a.Store.ListTasksBySchedule(r.Context(), scheduleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}
	if tasks == nil {
		tasks = []models.TaskWithRelations{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func validateTaskFields(f repo.TaskFields) []fieldError {
	var errs []fieldError
	if _, err := calendar.ParseTaskDate(f.Date); err != nil {
		errs = append(errs, fieldError{Field: "date", Message: "must be a YYYY-MM-DD date"})
	}
	if f.EstimatedHours.IsNegative() {
		errs = append(errs, fieldError{Field: "estimatedHours", Message: "must not be negative"})
	}
	if f.ActualHours.IsNegative() {
		errs = append(errs, fieldError{Field: "actualHours", Message: "must not be negative"})
	}
	return errs
}

// checkTaskTarget enforces that a referenced target belongs to the
// same weekly schedule and customer as the task.
func (a *API) checkTaskTarget(r *http.Request, f repo.TaskFields) ([]fieldError, error) {
	if f.TargetID == nil {
		return nil, nil
	}
	target, err := a.Store.GetTarget(r.Context(), *f.TargetID)
	if errors.Is(err, repo.ErrNotFound) {
		return []fieldError{{Field: "targetId", Message: "target not found"}}, nil
	}
	if err != nil {
		return nil, err
	}
	var errs []fieldError
	if target.WeeklyScheduleID != f.WeeklyScheduleID {
		errs = append(errs, fieldError{Field: "targetId", Message: "target belongs to a different weekly schedule"})
	}
	if target.CustomerID != f.CustomerID {
		errs = append(errs, fieldError{Field: "targetId", Message: "target belongs to a different customer"})
	}
	return errs, nil
}

func (a *API) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs []fieldError
	if req.WeeklyScheduleID == nil {
		errs = append(errs, fieldError{Field: "weeklyScheduleId", Message: "is required"})
	}
	if req.CustomerID == nil {
		errs = append(errs, fieldError{Field: "customerId", Message: "is required"})
	}
	if req.Date == nil {
		errs = append(errs, fieldError{Field: "date", Message: "is required"})
	}
	if req.EstimatedHours == nil {
		errs = append(errs, fieldError{Field: "estimatedHours", Message: "is required"})
	}
	if req.Notes == nil {
		errs = append(errs, fieldError{Field: "notes", Message: "is required"})
	}
	if len(errs) > 0 {
		writeValidationError(w, "Invalid task data", errs)
		return
	}

	fields := repo.TaskFields{
		WeeklyScheduleID: *req.WeeklyScheduleID,
		CustomerID:       *req.CustomerID,
		TargetID:         req.TargetID,
		Date:             *req.Date,
		EstimatedHours:   *req.EstimatedHours,
		ActualHours:      decimal.Zero,
		Notes:            *req.Notes,
		Billable:         true,
	}
	if req.ActualHours != nil {
		fields.ActualHours = *req.ActualHours
	}
	if req.Billable != nil {
		fields.Billable = *req.Billable
	}
	if errs := validateTaskFields(fields); len(errs) > 0 {
		writeValidationError(w, "Invalid task data", errs)
		return
	}
	targetErrs, err := a.checkTaskTarget(r, fields)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create task")
		return
	}
	if len(targetErrs) > 0 {
		writeValidationError(w, "Invalid task data", targetErrs)
		return
	}

	task, err := a.Store.CreateTask(r.Context(), fields)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create task")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (a *API) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req taskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	existing, err := a.Store.GetTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update task")
		return
	}

	fields := repo.TaskFields{
		WeeklyScheduleID: existing.WeeklyScheduleID,
		CustomerID:       existing.CustomerID,
		TargetID:         existing.TargetID,
		Date:             existing.Date,
		EstimatedHours:   existing.EstimatedHours,
		ActualHours:      existing.ActualHours,
		Notes:            existing.Notes,
		Billable:         existing.Billable,
	}
	if req.WeeklyScheduleID != nil {
		fields.WeeklyScheduleID = *req.WeeklyScheduleID
	}
	if req.CustomerID != nil {
		fields.CustomerID = *req.CustomerID
	}
	if req.TargetID != nil {
		if *req.TargetID == 0 {
			fields.TargetID = nil
		} else {
			fields.TargetID = req.TargetID
		}
	}
	if req.Date != nil {
		fields.Date = *req.Date
	}
	if req.EstimatedHours != nil {
		fields.EstimatedHours = *req.EstimatedHours
	}
	if req.ActualHours != nil {
		fields.ActualHours = *req.ActualHours
	}
	if req.Notes != nil {
		fields.Notes = *req.Notes
	}
	if req.Billable != nil {
		fields.Billable = *req.Billable
	}

	if errs := validateTaskFields(fields); len(errs) > 0 {
		writeValidationError(w, "Invalid task data", errs)
		return
	}
	targetErrs, err := a.checkTaskTarget(r, fields)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update task")
		return
	}
	if len(targetErrs) > 0 {
		writeValidationError(w, "Invalid task data", targetErrs)
		return
	}

	task, err := a.Store.UpdateTask(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (a *API) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := a.Store.DeleteTask(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
