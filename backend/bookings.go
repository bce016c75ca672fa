package backend

import (
	"context"
	"net/url"
)

type bookedCountsDTO struct {
	ScheduleID string         `json:"scheduleId"`
	Date       string         `json:"date"`
	Counts     map[string]int `json:"counts"`
}

// GetBookedCounts fetches the confirmed-booking aggregate for one schedule and date.
func (c *Client) GetBookedCounts(ctx context.Context, scheduleID, date string) (map[string]int, error) {
	query := url.Values{}
	query.Set("date", date)

	var dto bookedCountsDTO
	if err := c.get(ctx, "/schedules/"+url.PathEscape(scheduleID)+"/booked-counts", query, &dto); err != nil {
		return nil, err
	}

	if dto.Counts == nil {
		return map[string]int{}, nil
	}
	return dto.Counts, nil
}
