package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	BillingRate decimal.Decimal `json:"billingRate"`
	Email       *string         `json:"email"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type WeeklySchedule struct {
	ID          int       `json:"id"`
	Year        int       `json:"year"`
	Week        int       `json:"week"`
	OverallGoal string    `json:"overallGoal"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Target struct {
	ID               int             `json:"id"`
	WeeklyScheduleID int             `json:"weeklyScheduleId"`
	CustomerID       int             `json:"customerId"`
	TargetHours      decimal.Decimal `json:"targetHours"`
	Goal             string          `json:"goal"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Task date is the canonical YYYY-MM-DD string, never a timestamp.
type Task struct {
	ID               int             `json:"id"`
	WeeklyScheduleID int             `json:"weeklyScheduleId"`
	CustomerID       int             `json:"customerId"`
	TargetID         *int            `json:"targetId"`
	Date             string          `json:"date"`
	EstimatedHours   decimal.Decimal `json:"estimatedHours"`
	ActualHours      decimal.Decimal `json:"actualHours"`
	Notes            string          `json:"notes"`
	Billable         bool            `json:"billable"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Denormalized read shapes: schedule-scoped queries return these so
// callers never join entities themselves.

type TargetWithCustomer struct {
	Target
	Customer Customer `json:"customer"`
}

type TargetWithRelations struct {
	Target
	Customer Customer `json:"customer"`
	Tasks    []Task   `json:"tasks"`
}

type TaskWithRelations struct {
	Task
	Customer Customer `json:"customer"`
	Target   *Target  `json:"target,omitempty"`
}

type WeeklyScheduleWithRelations struct {
	WeeklySchedule
	Targets []TargetWithCustomer `json:"targets"`
	Tasks   []TaskWithRelations  `json:"tasks"`
}
