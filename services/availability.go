package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"churchms/config"
	"churchms/models"
	"churchms/utils"
)

// RemainingSlots returns how many bookings a slot can still take. The booked
// count comes from the backend aggregate; negative or missing counts are
// treated as zero, and the result is never negative.
func RemainingSlots(capacity, bookedCount int) int {
	if bookedCount < 0 {
		bookedCount = 0
	}
	remaining := capacity - bookedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsTimeSlotAvailable reports whether a slot can take at least one more booking.
func IsTimeSlotAvailable(capacity, bookedCount int) bool {
	return RemainingSlots(capacity, bookedCount) > 0
}

// ScheduleSource supplies read-only schedule configuration, normalized to
// the canonical shape before it reaches this service.
type ScheduleSource interface {
	GetSchedule(ctx context.Context, scheduleID string) (*models.ScheduleDefinition, error)
	ListSchedules(ctx context.Context) ([]models.ScheduleDefinition, error)
}

// BookingCountSource supplies confirmed-booking aggregates per service time.
// Service times with no bookings may be absent from the map.
type BookingCountSource interface {
	GetBookedCounts(ctx context.Context, scheduleID, date string) (map[string]int, error)
}

// AvailabilityService computes occurrence calendars and per-service-time
// slot availability for schedules.
type AvailabilityService interface {
	GetMonthOccurrences(ctx context.Context, scheduleID string, year int, month time.Month) (*models.MonthOccurrences, error)
	GetDayAvailability(ctx context.Context, scheduleID, date string) (*models.DayAvailability, error)
}

// DefaultAvailabilityService is a concrete implementation backed by the
// church backend API and a Redis cache. The cache is purely an optimization
// keyed by schedule and date; entries expire by TTL.
type DefaultAvailabilityService struct {
	Schedules   ScheduleSource
	Bookings    BookingCountSource
	CacheClient *redis.Client
}

// GetMonthOccurrences resolves every occurrence date of a schedule within
// the given month.
func (s *DefaultAvailabilityService) GetMonthOccurrences(ctx context.Context, scheduleID string, year int, month time.Month) (*models.MonthOccurrences, error) {
	cacheKey := fmt.Sprintf("occ:%s:%04d-%02d", scheduleID, year, int(month))
	if cached := s.readCache(ctx, cacheKey); cached != nil {
		var result models.MonthOccurrences
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
	}

	schedule, err := s.Schedules.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	result := &models.MonthOccurrences{
		ScheduleID: scheduleID,
		Year:       year,
		Month:      int(month),
		Dates:      OccurrencesInMonth(schedule, year, month),
	}
	s.writeCache(ctx, cacheKey, result)
	return result, nil
}

// GetDayAvailability computes remaining slots per service time for a schedule
// on one date. Dates the schedule does not occur on return Occurrence=false
// with no slots.
func (s *DefaultAvailabilityService) GetDayAvailability(ctx context.Context, scheduleID, date string) (*models.DayAvailability, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected %s", date, DateLayout)
	}

	cacheKey := fmt.Sprintf("avail:%s:%s", scheduleID, date)
	if cached := s.readCache(ctx, cacheKey); cached != nil {
		var result models.DayAvailability
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
	}

	schedule, err := s.Schedules.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	result := &models.DayAvailability{
		ScheduleID: scheduleID,
		Date:       date,
		Slots:      []models.ServiceTimeAvailability{},
	}

	if !OccursOn(schedule, day) {
		s.writeCache(ctx, cacheKey, result)
		return result, nil
	}
	result.Occurrence = true

	bookedCounts, err := s.Bookings.GetBookedCounts(ctx, scheduleID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked counts: %w", err)
	}

	result.Slots = buildSlots(schedule, bookedCounts)
	s.writeCache(ctx, cacheKey, result)
	return result, nil
}

// buildSlots computes availability for every service time of a schedule.
// A per-time capacity override takes precedence over the schedule capacity.
func buildSlots(schedule *models.ScheduleDefinition, bookedCounts map[string]int) []models.ServiceTimeAvailability {
	slots := make([]models.ServiceTimeAvailability, len(schedule.ServiceTimes))
	for i, serviceTime := range schedule.ServiceTimes {
		capacity := schedule.SlotCapacity
		if serviceTime.Capacity > 0 {
			capacity = serviceTime.Capacity
		}
		booked := bookedCounts[serviceTime.ID]
		if booked < 0 {
			booked = 0
		}
		slots[i] = models.ServiceTimeAvailability{
			ServiceTimeID: serviceTime.ID,
			StartTime:     serviceTime.StartTime,
			EndTime:       serviceTime.EndTime,
			Capacity:      capacity,
			Booked:        booked,
			Remaining:     RemainingSlots(capacity, booked),
			Available:     IsTimeSlotAvailable(capacity, booked),
		}
	}
	return slots
}

func (s *DefaultAvailabilityService) readCache(ctx context.Context, key string) []byte {
	if s.CacheClient == nil {
		return nil
	}
	data, err := s.CacheClient.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}

func (s *DefaultAvailabilityService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.CacheClient == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
	if err := s.CacheClient.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache availability", zap.String("key", key), zap.Error(err))
	}
}
