package services

import (
	"time"

	"churchms/models"
)

// DateLayout is the wire format for calendar dates across the backend API.
const DateLayout = "2006-01-02"

// OccursOn reports whether the schedule has an occurrence on the given date.
// A date is an occurrence when it matches ANY of the schedule's recurrence
// rules. Each rule is evaluated independently and only contributes once its
// anchor date has been reached; malformed rules never match.
func OccursOn(schedule *models.ScheduleDefinition, date time.Time) bool {
	day := truncateToDay(date)
	for _, rule := range schedule.RecurrenceRules {
		if ruleMatches(rule, day) {
			return true
		}
	}
	return false
}

// OccurrencesInMonth walks every day of the given month and collects the
// dates on which the schedule occurs, formatted as wire dates.
func OccurrencesInMonth(schedule *models.ScheduleDefinition, year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	dates := []string{}
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		if OccursOn(schedule, day) {
			dates = append(dates, day.Format(DateLayout))
		}
	}
	return dates
}

// WeekOfMonth buckets a date into fixed 7-day windows counted from the 1st:
// days 1-7 are week 1, days 8-14 week 2, and so on up to week 5. The bucketing
// deliberately ignores which weekday the month started on; the backend counts
// "Nth weekday of the month" the same way, so both sides must agree.
func WeekOfMonth(date time.Time) int {
	return (date.Day() + 6) / 7
}

func ruleMatches(rule models.RecurrenceRule, day time.Time) bool {
	active, ok := anchorReached(rule, day)
	if !ok || !active {
		return false
	}

	switch rule.Type {
	case models.RecurrenceOneTime:
		specific, err := time.Parse(DateLayout, rule.SpecificDate)
		if err != nil {
			return false
		}
		return day.Equal(truncateToDay(specific))

	case models.RecurrenceWeekly:
		if rule.DayOfWeek == nil {
			return false
		}
		return int(day.Weekday()) == *rule.DayOfWeek

	case models.RecurrenceMonthlyNth:
		if rule.DayOfWeek == nil || rule.WeekOfMonth == nil {
			return false
		}
		return int(day.Weekday()) == *rule.DayOfWeek && WeekOfMonth(day) == *rule.WeekOfMonth

	default:
		return false
	}
}

// anchorReached reports whether the rule is active on the given day. A rule
// without an anchor date is always active; a rule whose anchor date cannot be
// parsed is treated as malformed and never active.
func anchorReached(rule models.RecurrenceRule, day time.Time) (active bool, ok bool) {
	if rule.AnchorDate == "" {
		return true, true
	}
	anchor, err := time.Parse(DateLayout, rule.AnchorDate)
	if err != nil {
		return false, false
	}
	return !day.Before(truncateToDay(anchor)), true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
