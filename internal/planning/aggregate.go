// Package planning computes the weekly dashboard numbers: per-day and
// per-week hour/revenue totals, per-target allocation progress, and
// the transient drag-to-day task draft. Everything here is pure
// computation over caller-supplied snapshots; all quantities stay in
// exact decimals end to end.
package planning

import (
	"github.com/shopspring/decimal"

	"github.com/Resounding/Targets/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

type DayTotals struct {
	EstimatedHours   decimal.Decimal `json:"estimatedHours"`
	ActualHours      decimal.Decimal `json:"actualHours"`
	EstimatedRevenue decimal.Decimal `json:"estimatedRevenue"`
	ActualRevenue    decimal.Decimal `json:"actualRevenue"`
}

type WeekTotals struct {
	DayTotals
	TotalTargetHours decimal.Decimal `json:"totalTargetHours"`
}

type TargetProgress struct {
	TargetID       int             `json:"targetId"`
	AllocatedHours decimal.Decimal `json:"allocatedHours"`
	TargetHours    decimal.Decimal `json:"targetHours"`
	Percentage     decimal.Decimal `json:"percentage"`
	RemainingHours decimal.Decimal `json:"remainingHours"`
}

// SumDay totals estimated and actual hours over the given tasks, and
// estimated and actual revenue (hours times the customer billing rate)
// over the billable ones. Non-billable tasks contribute hours but no
// revenue. An empty slice yields zero totals.
func SumDay(tasks []models.TaskWithRelations) DayTotals {
	totals := DayTotals{
		EstimatedHours:   decimal.Zero,
		ActualHours:      decimal.Zero,
		EstimatedRevenue: decimal.Zero,
		ActualRevenue:    decimal.Zero,
	}
	for _, task := range tasks {
		totals.EstimatedHours = totals.EstimatedHours.Add(task.EstimatedHours)
		totals.ActualHours = totals.ActualHours.Add(task.ActualHours)
		if task.Billable {
			rate := task.Customer.BillingRate
			totals.EstimatedRevenue = totals.EstimatedRevenue.Add(task.EstimatedHours.Mul(rate))
			totals.ActualRevenue = totals.ActualRevenue.Add(task.ActualHours.Mul(rate))
		}
	}
	return totals
}

// SumWeek totals the full task set of a schedule and adds the sum of
// target hours. Targets are weekly allocations and never decompose by
// day.
func SumWeek(tasks []models.TaskWithRelations, targets []models.TargetWithCustomer) WeekTotals {
	totals := WeekTotals{DayTotals: SumDay(tasks), TotalTargetHours: decimal.Zero}
	for _, target := range targets {
		totals.TotalTargetHours = totals.TotalTargetHours.Add(target.TargetHours)
	}
	return totals
}

// Progress reports how much of a target's weekly allocation is covered
// by planned tasks. Allocation tracks estimated hours, not actuals,
// and only counts tasks whose TargetID matches; callers pre-filter the
// set to the schedule. Percentage is clamped to [0, 100] and a zero
// target yields zero percent.
func Progress(target models.Target, tasks []models.TaskWithRelations) TargetProgress {
	allocated := decimal.Zero
	for _, task := range tasks {
		if task.TargetID != nil && *task.TargetID == target.ID {
			allocated = allocated.Add(task.EstimatedHours)
		}
	}

	percentage := decimal.Zero
	if target.TargetHours.IsPositive() {
		percentage = allocated.Div(target.TargetHours).Mul(oneHundred)
		if percentage.GreaterThan(oneHundred) {
			percentage = oneHundred
		}
	}

	remaining := target.TargetHours.Sub(allocated)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return TargetProgress{
		TargetID:       target.ID,
		AllocatedHours: allocated,
		TargetHours:    target.TargetHours,
		Percentage:     percentage,
		RemainingHours: remaining,
	}
}
