package models

// Recurrence rule types.
const (
	RecurrenceOneTime    = "one_time"
	RecurrenceWeekly     = "weekly"
	RecurrenceMonthlyNth = "monthly_nth"
)

// RecurrenceRule describes which calendar dates a schedule occurs on.
// Exactly one shape is populated, consistent with Type: OneTime rules carry
// SpecificDate; Weekly rules carry DayOfWeek; MonthlyNth rules carry both
// DayOfWeek and WeekOfMonth.
type RecurrenceRule struct {
	Type         string `json:"type"`
	AnchorDate   string `json:"anchorDate"`             // e.g. "2025-06-02"; dates before this never match
	DayOfWeek    *int   `json:"dayOfWeek,omitempty"`    // 0 = Sunday .. 6 = Saturday
	WeekOfMonth  *int   `json:"weekOfMonth,omitempty"`  // 1..5; 1st, 2nd, ... 5th occurrence of DayOfWeek
	SpecificDate string `json:"specificDate,omitempty"` // e.g. "2025-12-24", one_time only
}

// ServiceTime is one bookable session within a schedule's occurrence.
type ServiceTime struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`          // e.g. "09:00"
	EndTime   string `json:"endTime"`            // e.g. "10:30"
	Capacity  int    `json:"capacity,omitempty"` // overrides the schedule's SlotCapacity when > 0
}

// Fee describes the cost of one booking. An amount of zero denotes a
// free or members-only service.
type Fee struct {
	FeeType string  `json:"feeType"`
	Amount  float64 `json:"amount"`
}

// ScheduleDefinition is the read-only schedule configuration fetched from
// the church backend. A date is an occurrence when it matches ANY of the
// recurrence rules.
type ScheduleDefinition struct {
	ScheduleID      string           `json:"scheduleId"`
	Name            string           `json:"name"`
	SlotCapacity    int              `json:"slotCapacity"`
	RecurrenceRules []RecurrenceRule `json:"recurrenceRules"`
	ServiceTimes    []ServiceTime    `json:"serviceTimes"`
	Fees            []Fee            `json:"fees,omitempty"`
}
