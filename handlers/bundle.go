package handlers

import (
	"github.com/go-redis/redis/v8"

	"churchms/services"
)

// HandlerBundle groups all endpoint handlers and their dependencies.
type HandlerBundle struct {
	Availability services.AvailabilityService
	Schedules    services.ScheduleSource
	SessionCache *redis.Client
}
