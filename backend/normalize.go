package backend

import (
	"errors"

	"go.uber.org/zap"

	"churchms/models"
	"churchms/services"
	"churchms/utils"
)

var (
	errNoRecurrenceRules = errors.New("no recurrence rules")
	errNoServiceTimes    = errors.New("no service times")
)

// normalizeSchedule validates the backend payload and converts it into the
// canonical ScheduleDefinition. Free-text patterns are translated into
// structured rules; a pattern naming no weekday (or several) is a
// data-quality problem, logged and dropped so it contributes no occurrences.
func normalizeSchedule(dto scheduleDTO) (*models.ScheduleDefinition, error) {
	if len(dto.Rules) == 0 {
		return nil, errNoRecurrenceRules
	}
	if len(dto.ServiceTimes) == 0 {
		return nil, errNoServiceTimes
	}

	rules := make([]models.RecurrenceRule, 0, len(dto.Rules))
	for _, raw := range dto.Rules {
		if raw.Type == "" && raw.Pattern != "" {
			parsed, err := services.ParseRecurrencePattern(raw.Pattern, raw.AnchorDate)
			if err != nil {
				utils.GetLogger().Warn("Dropping unusable recurrence pattern",
					zap.String("scheduleId", dto.ScheduleID),
					zap.String("pattern", raw.Pattern),
					zap.Error(err))
				continue
			}
			rules = append(rules, *parsed)
			continue
		}
		rules = append(rules, raw.RecurrenceRule)
	}

	fees := make([]models.Fee, 0, len(dto.Fees))
	for _, fee := range dto.Fees {
		amount := 0.0
		switch {
		case fee.Amount != nil:
			amount = *fee.Amount
		case fee.Fee != nil:
			amount = *fee.Fee
		}
		if amount < 0 {
			amount = 0
		}
		fees = append(fees, models.Fee{FeeType: fee.FeeType, Amount: amount})
	}

	return &models.ScheduleDefinition{
		ScheduleID:      dto.ScheduleID,
		Name:            dto.Name,
		SlotCapacity:    dto.SlotCapacity,
		RecurrenceRules: rules,
		ServiceTimes:    dto.ServiceTimes,
		Fees:            fees,
	}, nil
}
