package planning

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Resounding/Targets/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func billedTask(targetID *int, est, act string, billable bool, rate string) models.TaskWithRelations {
	return models.TaskWithRelations{
		Task: models.Task{
			TargetID:       targetID,
			EstimatedHours: dec(est),
			ActualHours:    dec(act),
			Billable:       billable,
		},
		Customer: models.Customer{BillingRate: dec(rate)},
	}
}

func TestSumDayEmpty(t *testing.T) {
	totals := SumDay(nil)
	for name, got := range map[string]decimal.Decimal{
		"estimatedHours":   totals.EstimatedHours,
		"actualHours":      totals.ActualHours,
		"estimatedRevenue": totals.EstimatedRevenue,
		"actualRevenue":    totals.ActualRevenue,
	} {
		if !got.IsZero() {
			t.Fatalf("%s: expected zero, got %s", name, got)
		}
	}
}

func TestSumDayRevenue(t *testing.T) {
	totals := SumDay([]models.TaskWithRelations{
		billedTask(nil, "4.00", "2.00", true, "100.00"),
	})
	if !totals.EstimatedRevenue.Equal(dec("400.00")) {
		t.Fatalf("estimated revenue: got %s, want 400.00", totals.EstimatedRevenue)
	}
	if !totals.ActualRevenue.Equal(dec("200.00")) {
		t.Fatalf("actual revenue: got %s, want 200.00", totals.ActualRevenue)
	}
}

func TestSumDayNonBillable(t *testing.T) {
	totals := SumDay([]models.TaskWithRelations{
		billedTask(nil, "4.00", "2.00", false, "100.00"),
	})
	if !totals.EstimatedHours.Equal(dec("4.00")) || !totals.ActualHours.Equal(dec("2.00")) {
		t.Fatalf("hours: got %s/%s, want 4.00/2.00", totals.EstimatedHours, totals.ActualHours)
	}
	if !totals.EstimatedRevenue.IsZero() || !totals.ActualRevenue.IsZero() {
		t.Fatalf("revenue: got %s/%s, want zero", totals.EstimatedRevenue, totals.ActualRevenue)
	}
}

func TestSumDayExactDecimals(t *testing.T) {
	// 0.1 + 0.2 is the classic binary-float trap; sums must stay exact.
	tasks := []models.TaskWithRelations{
		billedTask(nil, "0.10", "0.10", true, "33.33"),
		billedTask(nil, "0.20", "0.20", true, "33.33"),
	}
	totals := SumDay(tasks)
	if !totals.EstimatedHours.Equal(dec("0.30")) {
		t.Fatalf("hours: got %s, want 0.30", totals.EstimatedHours)
	}
	if !totals.EstimatedRevenue.Equal(dec("9.999")) {
		t.Fatalf("revenue: got %s, want 9.999", totals.EstimatedRevenue)
	}
}

func TestSumDayAdditive(t *testing.T) {
	a := []models.TaskWithRelations{
		billedTask(nil, "1.25", "0.50", true, "80.00"),
		billedTask(nil, "2.00", "2.00", false, "80.00"),
	}
	b := []models.TaskWithRelations{
		billedTask(nil, "3.75", "1.00", true, "120.00"),
	}
	union := SumDay(append(append([]models.TaskWithRelations{}, a...), b...))
	ta, tb := SumDay(a), SumDay(b)

	if !union.EstimatedHours.Equal(ta.EstimatedHours.Add(tb.EstimatedHours)) {
		t.Fatal("estimated hours not additive")
	}
	if !union.ActualHours.Equal(ta.ActualHours.Add(tb.ActualHours)) {
		t.Fatal("actual hours not additive")
	}
	if !union.EstimatedRevenue.Equal(ta.EstimatedRevenue.Add(tb.EstimatedRevenue)) {
		t.Fatal("estimated revenue not additive")
	}
	if !union.ActualRevenue.Equal(ta.ActualRevenue.Add(tb.ActualRevenue)) {
		t.Fatal("actual revenue not additive")
	}
}

func TestSumWeekTargetHours(t *testing.T) {
	targets := []models.TargetWithCustomer{
		{Target: models.Target{TargetHours: dec("10.00")}},
		{Target: models.Target{TargetHours: dec("7.50")}},
	}
	totals := SumWeek(nil, targets)
	if !totals.TotalTargetHours.Equal(dec("17.50")) {
		t.Fatalf("target hours: got %s, want 17.50", totals.TotalTargetHours)
	}
	if !totals.EstimatedHours.IsZero() {
		t.Fatalf("expected zero task totals, got %s", totals.EstimatedHours)
	}
}

func TestProgress(t *testing.T) {
	target := models.Target{ID: 7, TargetHours: dec("20.00")}
	seven, eight := 7, 8
	tasks := []models.TaskWithRelations{
		billedTask(&seven, "5.00", "0", true, "100.00"),
		billedTask(&seven, "5.00", "0", true, "100.00"),
		billedTask(&eight, "9.00", "0", true, "100.00"), // other target, ignored
		billedTask(nil, "9.00", "0", true, "100.00"),    // unassigned, ignored
	}
	p := Progress(target, tasks)
	if !p.AllocatedHours.Equal(dec("10.00")) {
		t.Fatalf("allocated: got %s, want 10.00", p.AllocatedHours)
	}
	if !p.Percentage.Equal(dec("50")) {
		t.Fatalf("percentage: got %s, want 50", p.Percentage)
	}
	if !p.RemainingHours.Equal(dec("10.00")) {
		t.Fatalf("remaining: got %s, want 10.00", p.RemainingHours)
	}
}

func TestProgressOverAllocatedClamps(t *testing.T) {
	target := models.Target{ID: 1, TargetHours: dec("20")}
	one := 1
	tasks := []models.TaskWithRelations{billedTask(&one, "30", "0", true, "1")}
	p := Progress(target, tasks)
	if !p.Percentage.Equal(dec("100")) {
		t.Fatalf("percentage: got %s, want 100", p.Percentage)
	}
	if !p.RemainingHours.IsZero() {
		t.Fatalf("remaining: got %s, want 0", p.RemainingHours)
	}
}

func TestProgressZeroTargetHours(t *testing.T) {
	target := models.Target{ID: 1, TargetHours: decimal.Zero}
	one := 1
	tasks := []models.TaskWithRelations{billedTask(&one, "5", "0", true, "1")}
	p := Progress(target, tasks)
	if !p.Percentage.IsZero() {
		t.Fatalf("percentage: got %s, want 0", p.Percentage)
	}
	if !p.AllocatedHours.Equal(dec("5")) {
		t.Fatalf("allocated: got %s, want 5", p.AllocatedHours)
	}
}
