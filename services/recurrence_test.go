package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchms/models"
)

func intPtr(v int) *int { return &v }

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, value)
	require.NoError(t, err)
	return parsed
}

func scheduleWithRules(rules ...models.RecurrenceRule) *models.ScheduleDefinition {
	return &models.ScheduleDefinition{
		ScheduleID:      "sched-1",
		SlotCapacity:    10,
		RecurrenceRules: rules,
		ServiceTimes:    []models.ServiceTime{{ID: "t1", StartTime: "09:00", EndTime: "10:00"}},
	}
}

func TestOccursOn_OneTime(t *testing.T) {
	schedule := scheduleWithRules(models.RecurrenceRule{
		Type:         models.RecurrenceOneTime,
		SpecificDate: "2025-12-24",
	})

	assert.True(t, OccursOn(schedule, mustDate(t, "2025-12-24")))
	assert.False(t, OccursOn(schedule, mustDate(t, "2025-12-23")))
	assert.False(t, OccursOn(schedule, mustDate(t, "2025-12-25")))
}

func TestOccursOn_Weekly(t *testing.T) {
	// Every Tuesday starting 2025-06-02.
	schedule := scheduleWithRules(models.RecurrenceRule{
		Type:       models.RecurrenceWeekly,
		AnchorDate: "2025-06-02",
		DayOfWeek:  intPtr(2),
	})

	assert.True(t, OccursOn(schedule, mustDate(t, "2025-06-03")), "first Tuesday after anchor")
	assert.True(t, OccursOn(schedule, mustDate(t, "2025-06-10")))
	assert.False(t, OccursOn(schedule, mustDate(t, "2025-06-04")), "Wednesday")
	assert.False(t, OccursOn(schedule, mustDate(t, "2025-05-27")), "Tuesday before anchor")
}

func TestOccursOn_MonthlyNth(t *testing.T) {
	// Second Saturday of every month. In July 2025 the Saturdays fall on
	// the 5th, 12th, 19th and 26th.
	schedule := scheduleWithRules(models.RecurrenceRule{
		Type:        models.RecurrenceMonthlyNth,
		AnchorDate:  "2025-01-01",
		DayOfWeek:   intPtr(6),
		WeekOfMonth: intPtr(2),
	})

	assert.True(t, OccursOn(schedule, mustDate(t, "2025-07-12")))
	assert.False(t, OccursOn(schedule, mustDate(t, "2025-07-05")), "first Saturday")
	assert.False(t, OccursOn(schedule, mustDate(t, "2025-07-19")), "third Saturday")
	assert.False(t, OccursOn(schedule, mustDate(t, "2025-07-26")), "fourth Saturday")
}

func TestOccursOn_MonthlyNth_FifthWeek(t *testing.T) {
	// A fifth Saturday exists in August 2025 (the 30th) but not in July 2025.
	schedule := scheduleWithRules(models.RecurrenceRule{
		Type:        models.RecurrenceMonthlyNth,
		AnchorDate:  "2025-01-01",
		DayOfWeek:   intPtr(6),
		WeekOfMonth: intPtr(5),
	})

	assert.True(t, OccursOn(schedule, mustDate(t, "2025-08-30")))
	for _, date := range []string{"2025-07-05", "2025-07-12", "2025-07-19", "2025-07-26"} {
		assert.False(t, OccursOn(schedule, mustDate(t, date)), "no fifth Saturday in July 2025: %s", date)
	}
}

func TestOccursOn_MultiRuleOr(t *testing.T) {
	// Every Tuesday AND every Friday.
	schedule := scheduleWithRules(
		models.RecurrenceRule{Type: models.RecurrenceWeekly, AnchorDate: "2025-06-01", DayOfWeek: intPtr(2)},
		models.RecurrenceRule{Type: models.RecurrenceWeekly, AnchorDate: "2025-06-01", DayOfWeek: intPtr(5)},
	)

	assert.True(t, OccursOn(schedule, mustDate(t, "2025-06-03")), "Tuesday")
	assert.True(t, OccursOn(schedule, mustDate(t, "2025-06-06")), "Friday")
	assert.False(t, OccursOn(schedule, mustDate(t, "2025-06-04")), "Wednesday")
	assert.False(t, OccursOn(schedule, mustDate(t, "2025-06-08")), "Sunday")
}

func TestOccursOn_MalformedRules(t *testing.T) {
	day := mustDate(t, "2025-06-07")

	// monthly_nth without dayOfWeek never matches.
	assert.False(t, OccursOn(scheduleWithRules(models.RecurrenceRule{
		Type:        models.RecurrenceMonthlyNth,
		AnchorDate:  "2025-01-01",
		WeekOfMonth: intPtr(1),
	}), day))

	// weekly without dayOfWeek never matches.
	assert.False(t, OccursOn(scheduleWithRules(models.RecurrenceRule{
		Type:       models.RecurrenceWeekly,
		AnchorDate: "2025-01-01",
	}), day))

	// Unknown type never matches.
	assert.False(t, OccursOn(scheduleWithRules(models.RecurrenceRule{
		Type:       "lunar",
		AnchorDate: "2025-01-01",
		DayOfWeek:  intPtr(6),
	}), day))

	// Unparseable anchor date disables the rule.
	assert.False(t, OccursOn(scheduleWithRules(models.RecurrenceRule{
		Type:       models.RecurrenceWeekly,
		AnchorDate: "sometime in June",
		DayOfWeek:  intPtr(6),
	}), day))

	// No rules at all.
	assert.False(t, OccursOn(scheduleWithRules(), day))
}

func TestOccursOn_Idempotent(t *testing.T) {
	schedule := scheduleWithRules(models.RecurrenceRule{
		Type:       models.RecurrenceWeekly,
		AnchorDate: "2025-06-01",
		DayOfWeek:  intPtr(0),
	})
	day := mustDate(t, "2025-06-08")

	first := OccursOn(schedule, day)
	second := OccursOn(schedule, day)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestWeekOfMonth_Buckets(t *testing.T) {
	cases := map[string]int{
		"2025-07-01": 1,
		"2025-07-07": 1,
		"2025-07-08": 2,
		"2025-07-14": 2,
		"2025-07-15": 3,
		"2025-07-28": 4,
		"2025-07-29": 5,
		"2025-07-31": 5,
	}
	for date, want := range cases {
		assert.Equal(t, want, WeekOfMonth(mustDate(t, date)), date)
	}
}

func TestOccurrencesInMonth(t *testing.T) {
	// Every Sunday.
	schedule := scheduleWithRules(models.RecurrenceRule{
		Type:       models.RecurrenceWeekly,
		AnchorDate: "2025-01-01",
		DayOfWeek:  intPtr(0),
	})

	dates := OccurrencesInMonth(schedule, 2025, time.June)
	assert.Equal(t, []string{"2025-06-01", "2025-06-08", "2025-06-15", "2025-06-22", "2025-06-29"}, dates)
}

func TestOccurrencesInMonth_AnchorMidMonth(t *testing.T) {
	// Anchor in the middle of the month cuts off earlier occurrences.
	schedule := scheduleWithRules(models.RecurrenceRule{
		Type:       models.RecurrenceWeekly,
		AnchorDate: "2025-06-15",
		DayOfWeek:  intPtr(0),
	})

	dates := OccurrencesInMonth(schedule, 2025, time.June)
	assert.Equal(t, []string{"2025-06-15", "2025-06-22", "2025-06-29"}, dates)
}
