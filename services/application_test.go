package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchms/models"
)

func dayWithSlots(slots ...models.ServiceTimeAvailability) *models.DayAvailability {
	return &models.DayAvailability{
		ScheduleID: "sched-1",
		Date:       "2025-06-08",
		Occurrence: true,
		Slots:      slots,
	}
}

func TestStartApplication(t *testing.T) {
	session := StartApplication("sched-1")
	assert.Equal(t, "sched-1", session.ScheduleID)
	assert.Equal(t, models.StepSelectDate, session.Step)
	assert.Empty(t, session.SelectedDate)
}

func TestSelectDate_MultipleTimes(t *testing.T) {
	session := StartApplication("sched-1")
	availability := dayWithSlots(
		models.ServiceTimeAvailability{ServiceTimeID: "t1", Available: true},
		models.ServiceTimeAvailability{ServiceTimeID: "t2", Available: true},
	)

	session = SelectDate(session, availability)
	assert.Equal(t, models.StepSelectTime, session.Step)
	assert.Equal(t, "2025-06-08", session.SelectedDate)
	assert.Empty(t, session.SelectedTimeID)
	assert.False(t, session.AutoSelectedTime)
}

func TestSelectDate_SingleAvailableTimeAutoAdvances(t *testing.T) {
	session := StartApplication("sched-1")
	availability := dayWithSlots(
		models.ServiceTimeAvailability{ServiceTimeID: "t1", Available: true, Remaining: 2},
	)

	session = SelectDate(session, availability)
	assert.Equal(t, models.StepReview, session.Step)
	assert.Equal(t, "t1", session.SelectedTimeID)
	assert.True(t, session.AutoSelectedTime)
}

func TestSelectDate_SingleFullTimeStaysOnTimeStep(t *testing.T) {
	// The only service time is fully booked: it must be presented rather
	// than auto-selected, so the caller can show it as unavailable.
	session := StartApplication("sched-1")
	availability := dayWithSlots(
		models.ServiceTimeAvailability{ServiceTimeID: "t1", Available: false, Remaining: 0},
	)

	session = SelectDate(session, availability)
	assert.Equal(t, models.StepSelectTime, session.Step)
	assert.Empty(t, session.SelectedTimeID)
	assert.False(t, session.AutoSelectedTime)
}

func TestSelectDate_ResetsEarlierTimeChoice(t *testing.T) {
	session := StartApplication("sched-1")
	session = SelectDate(session, dayWithSlots(
		models.ServiceTimeAvailability{ServiceTimeID: "t1", Available: true},
		models.ServiceTimeAvailability{ServiceTimeID: "t2", Available: true},
	))
	session, ok := SelectTime(session, "t2")
	require.True(t, ok)

	// Picking a new date discards the previous time selection.
	session = SelectDate(session, dayWithSlots(
		models.ServiceTimeAvailability{ServiceTimeID: "t1", Available: true},
		models.ServiceTimeAvailability{ServiceTimeID: "t2", Available: true},
	))
	assert.Empty(t, session.SelectedTimeID)
	assert.Equal(t, models.StepSelectTime, session.Step)
}

func TestSelectTime(t *testing.T) {
	session := StartApplication("sched-1")
	session = SelectDate(session, dayWithSlots(
		models.ServiceTimeAvailability{ServiceTimeID: "t1", Available: true},
		models.ServiceTimeAvailability{ServiceTimeID: "t2", Available: false},
	))

	updated, ok := SelectTime(session, "t2")
	require.True(t, ok)
	assert.Equal(t, models.StepReview, updated.Step)
	assert.Equal(t, "t2", updated.SelectedTimeID)
	assert.False(t, updated.AutoSelectedTime)
}

func TestSelectTime_UnknownTime(t *testing.T) {
	session := StartApplication("sched-1")
	session = SelectDate(session, dayWithSlots(
		models.ServiceTimeAvailability{ServiceTimeID: "t1", Available: true},
		models.ServiceTimeAvailability{ServiceTimeID: "t2", Available: true},
	))

	updated, ok := SelectTime(session, "t9")
	assert.False(t, ok)
	assert.Equal(t, session, updated, "unknown time leaves the session unchanged")
}

func TestSelectTime_BeforeDate(t *testing.T) {
	session := StartApplication("sched-1")
	_, ok := SelectTime(session, "t1")
	assert.False(t, ok)
}
