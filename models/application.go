package models

// Application wizard steps. Transitions between steps are pure functions in
// the scheduling service; the session itself is just data cached in Redis.
const (
	StepSelectDate = "select_date"
	StepSelectTime = "select_time"
	StepReview     = "review"
)

// ApplicationSession is the explicit state of one sacrament-application
// wizard run. It replaces in-place mutation: every transition takes a
// session and returns the updated copy.
type ApplicationSession struct {
	ScheduleID       string           `json:"scheduleId"`
	Step             string           `json:"step"`
	SelectedDate     string           `json:"selectedDate,omitempty"`
	SelectedTimeID   string           `json:"selectedTimeId,omitempty"`
	AutoSelectedTime bool             `json:"autoSelectedTime,omitempty"`
	Availability     *DayAvailability `json:"availability,omitempty"`
}
