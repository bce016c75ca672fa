package services

import (
	"errors"
	"regexp"
	"strings"

	"churchms/models"
)

// Legacy schedules arrive from the backend as free-text phrases such as
// "Every Tuesday" or "Second Saturday of every month". This adapter turns
// such text into a structured RecurrenceRule at the ingestion boundary so
// the resolver itself never touches raw strings. Matching is whole-word
// only: "Monday" must not match inside "Mondayish".

var (
	// ErrPatternUnrecognized means no day name was found in the text.
	ErrPatternUnrecognized = errors.New("recurrence pattern not recognized")
	// ErrPatternAmbiguous means the text names more than one weekday.
	ErrPatternAmbiguous = errors.New("recurrence pattern names multiple weekdays")
)

var dayNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bsunday\b`),
	regexp.MustCompile(`\bmonday\b`),
	regexp.MustCompile(`\btuesday\b`),
	regexp.MustCompile(`\bwednesday\b`),
	regexp.MustCompile(`\bthursday\b`),
	regexp.MustCompile(`\bfriday\b`),
	regexp.MustCompile(`\bsaturday\b`),
}

var ordinalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:first|1st)\b`),
	regexp.MustCompile(`\b(?:second|2nd)\b`),
	regexp.MustCompile(`\b(?:third|3rd)\b`),
	regexp.MustCompile(`\b(?:fourth|4th)\b`),
	regexp.MustCompile(`\b(?:fifth|5th)\b`),
}

// ParseRecurrencePattern translates a free-text schedule phrase into a
// RecurrenceRule anchored at anchorDate. A day name with an ordinal word
// becomes a monthly_nth rule; a bare day name becomes a weekly rule. Text
// naming no weekday, or more than one, is a data-quality problem and is
// returned as an error for the caller to surface — never guessed at.
func ParseRecurrencePattern(text, anchorDate string) (*models.RecurrenceRule, error) {
	lowered := strings.ToLower(text)

	dayOfWeek := -1
	for weekday, pattern := range dayNamePatterns {
		if !pattern.MatchString(lowered) {
			continue
		}
		if dayOfWeek >= 0 {
			return nil, ErrPatternAmbiguous
		}
		dayOfWeek = weekday
	}
	if dayOfWeek < 0 {
		return nil, ErrPatternUnrecognized
	}

	// First matching ordinal wins.
	for i, pattern := range ordinalPatterns {
		if pattern.MatchString(lowered) {
			week := i + 1
			return &models.RecurrenceRule{
				Type:        models.RecurrenceMonthlyNth,
				AnchorDate:  anchorDate,
				DayOfWeek:   &dayOfWeek,
				WeekOfMonth: &week,
			}, nil
		}
	}

	return &models.RecurrenceRule{
		Type:       models.RecurrenceWeekly,
		AnchorDate: anchorDate,
		DayOfWeek:  &dayOfWeek,
	}, nil
}
