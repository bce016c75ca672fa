package backend

import (
	"context"
	"fmt"
	"net/url"

	"churchms/models"
)

// scheduleDTO mirrors the backend's schedule payload. Older backend records
// carry the fee amount under "fee" instead of "amount", and some rules arrive
// as a free-text pattern instead of a structured rule; both are normalized
// here so the rest of the service only ever sees one canonical shape.
type scheduleDTO struct {
	ScheduleID   string               `json:"scheduleId"`
	Name         string               `json:"name"`
	SlotCapacity int                  `json:"slotCapacity"`
	Rules        []recurrenceRuleDTO  `json:"recurrenceRules"`
	ServiceTimes []models.ServiceTime `json:"serviceTimes"`
	Fees         []feeDTO             `json:"fees"`
}

type recurrenceRuleDTO struct {
	models.RecurrenceRule
	Pattern string `json:"pattern,omitempty"` // e.g. "Second Saturday of every month"
}

type feeDTO struct {
	FeeType string   `json:"feeType"`
	Amount  *float64 `json:"amount"`
	Fee     *float64 `json:"fee"` // legacy key
}

// GetSchedule fetches and normalizes one schedule definition.
func (c *Client) GetSchedule(ctx context.Context, scheduleID string) (*models.ScheduleDefinition, error) {
	var dto scheduleDTO
	if err := c.get(ctx, "/schedules/"+url.PathEscape(scheduleID), nil, &dto); err != nil {
		return nil, err
	}

	schedule, err := normalizeSchedule(dto)
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, err)
	}
	return schedule, nil
}

// ListSchedules fetches and normalizes all schedule definitions.
func (c *Client) ListSchedules(ctx context.Context) ([]models.ScheduleDefinition, error) {
	var dtos []scheduleDTO
	if err := c.get(ctx, "/schedules", nil, &dtos); err != nil {
		return nil, err
	}

	schedules := make([]models.ScheduleDefinition, 0, len(dtos))
	for _, dto := range dtos {
		schedule, err := normalizeSchedule(dto)
		if err != nil {
			return nil, fmt.Errorf("schedule %s: %w", dto.ScheduleID, err)
		}
		schedules = append(schedules, *schedule)
	}
	return schedules, nil
}
