package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Resounding/Targets/internal/service"
)

type API struct {
	Store   service.Store
	Planner *service.Service
	Origins []string
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(loggingMiddleware)
	r.Use(a.corsMiddleware)

	r.Get("/health", a.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", a.handleListCustomers)
			r.Post("/", a.handleCreateCustomer)
			r.Get("/{id}", a.handleGetCustomer)
			r.Put("/{id}", a.handleUpdateCustomer)
			r.Delete("/{id}", a.handleDeleteCustomer)
		})
		r.Route("/weekly-schedules", func(r chi.Router) {
			r.Get("/", a.handleListSchedules)
			r.Post("/", a.handleCreateSchedule)
			r.Get("/by-week/{year}/{week}", a.handleGetScheduleByWeek)
			r.Get("/{id}", a.handleGetSchedule)
			r.Get("/{id}/summary", a.handleWeekSummary)
			r.Put("/{id}", a.handleUpdateSchedule)
			r.Delete("/{id}", a.handleDeleteSchedule)
		})
		r.Route("/targets", func(r chi.Router) {
			r.Get("/", a.handleListTargets)
			r.Post("/", a.handleCreateTarget)
			r.Get("/by-schedule/{weeklyScheduleId}", a.handleListTargetsBySchedule)
			r.Get("/{id}", a.handleGetTarget)
			r.Get("/{id}/draft/{dayIndex}", a.handleTargetDraft)
			r.Put("/{id}", a.handleUpdateTarget)
			r.Delete("/{id}", a.handleDeleteTarget)
		})
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", a.handleListTasks)
			r.Post("/", a.handleCreateTask)
			r.Get("/by-schedule/{weeklyScheduleId}", a.handleListTasksBySchedule)
			r.Get("/{id}", a.handleGetTask)
			r.Put("/{id}", a.handleUpdateTask)
			r.Delete("/{id}", a.handleDeleteTask)
		})
	})

	return r
}
