package planning

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Resounding/Targets/internal/calendar"
	"github.com/Resounding/Targets/internal/models"
)

// Drop phase of the drag reconciler.
type DropPhase int

const (
	Idle DropPhase = iota
	Pending
	Resolved
)

// TaskDraft is the pre-filled task-creation proposal derived from
// dropping a target onto a day column. Nothing is persisted until the
// caller submits it through the task API.
type TaskDraft struct {
	WeeklyScheduleID int             `json:"weeklyScheduleId"`
	CustomerID       int             `json:"customerId"`
	TargetID         *int            `json:"targetId"`
	Date             string          `json:"date"`
	EstimatedHours   decimal.Decimal `json:"estimatedHours"`
	ActualHours      decimal.Decimal `json:"actualHours"`
	Notes            string          `json:"notes"`
	Billable         bool            `json:"billable"`
}

// NewTaskDraft builds the drop proposal for a target landing on the
// given date: customer and target inherited from the target, ordinary
// task-creation defaults for everything else.
func NewTaskDraft(target models.Target, date time.Time) TaskDraft {
	targetID := target.ID
	return TaskDraft{
		WeeklyScheduleID: target.WeeklyScheduleID,
		CustomerID:       target.CustomerID,
		TargetID:         &targetID,
		Date:             calendar.FormatTaskDate(date),
		EstimatedHours:   decimal.Zero,
		ActualHours:      decimal.Zero,
		Notes:            "",
		Billable:         true,
	}
}

// DragReconciler captures a single dragged target and the day column
// it was dropped on, until the drop is resolved into a task draft or
// cancelled. At most one capture is live at a time; a new drop
// overwrites an unresolved one (last drop wins).
type DragReconciler struct {
	phase    DropPhase
	target   models.Target
	dayIndex int
}

func (r *DragReconciler) Phase() DropPhase { return r.phase }

// Drop records a drag ending over the day column at dayIndex (0-5).
func (r *DragReconciler) Drop(target models.Target, dayIndex int) {
	r.phase = Pending
	r.target = target
	r.dayIndex = dayIndex
}

// Resolve is called by a day column observing the pending capture.
// Only the column whose index matches consumes it; everyone else gets
// ok=false and the capture stays pending.
func (r *DragReconciler) Resolve(dayIndex int, weekDates [6]time.Time) (TaskDraft, bool) {
	if r.phase != Pending || r.dayIndex != dayIndex {
		return TaskDraft{}, false
	}
	r.phase = Resolved
	return NewTaskDraft(r.target, weekDates[dayIndex]), true
}

// Clear drops any capture unconditionally, whether the form was
// confirmed or cancelled, so a stale drop never re-fires on a later
// render.
func (r *DragReconciler) Clear() {
	*r = DragReconciler{}
}
