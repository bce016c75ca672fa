package services

import "churchms/models"

// Application wizard transitions. Each transition is a pure function from
// session state to session state; the handlers own loading and storing the
// session, so nothing here touches Redis or the backend.

// StartApplication opens a new wizard session for a schedule.
func StartApplication(scheduleID string) models.ApplicationSession {
	return models.ApplicationSession{
		ScheduleID: scheduleID,
		Step:       models.StepSelectDate,
	}
}

// SelectDate records the chosen occurrence date together with its computed
// availability. When the schedule has exactly one service time on that date
// and it still has room, the time is selected automatically and the wizard
// skips straight to review. A single service time with no room is NOT
// auto-selected: the wizard stays on the time step so the caller can show
// the slot as unavailable instead of silently blocking.
func SelectDate(session models.ApplicationSession, availability *models.DayAvailability) models.ApplicationSession {
	session.SelectedDate = availability.Date
	session.SelectedTimeID = ""
	session.AutoSelectedTime = false
	session.Availability = availability
	session.Step = models.StepSelectTime

	if len(availability.Slots) == 1 && availability.Slots[0].Available {
		session.SelectedTimeID = availability.Slots[0].ServiceTimeID
		session.AutoSelectedTime = true
		session.Step = models.StepReview
	}
	return session
}

// SelectTime records a manual service-time choice and advances to review.
// An unknown service time leaves the session unchanged and reports ok=false.
func SelectTime(session models.ApplicationSession, serviceTimeID string) (models.ApplicationSession, bool) {
	if session.Availability == nil {
		return session, false
	}
	for _, slot := range session.Availability.Slots {
		if slot.ServiceTimeID == serviceTimeID {
			session.SelectedTimeID = serviceTimeID
			session.AutoSelectedTime = false
			session.Step = models.StepReview
			return session, true
		}
	}
	return session, false
}
