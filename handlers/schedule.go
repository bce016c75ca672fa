package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"churchms/backend"
	"churchms/services"
)

// ListSchedulesHandler returns all schedule definitions known to the backend.
func (hb *HandlerBundle) ListSchedulesHandler(c *gin.Context) {
	logger := getLogger(c)

	schedules, err := hb.Schedules.ListSchedules(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list schedules", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve schedules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// MonthOccurrencesHandler returns the occurrence dates of a schedule for one
// month, for rendering the appointment calendar.
func (hb *HandlerBundle) MonthOccurrencesHandler(c *gin.Context) {
	logger := getLogger(c)
	scheduleID := c.Param("scheduleID")

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	occurrences, err := hb.Availability.GetMonthOccurrences(c.Request.Context(), scheduleID, year, time.Month(month))
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		logger.Error("Failed to compute month occurrences",
			zap.String("scheduleId", scheduleID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to compute occurrences"})
		return
	}
	c.JSON(http.StatusOK, occurrences)
}

// DayAvailabilityHandler returns remaining slots per service time for a
// schedule on one date.
func (hb *HandlerBundle) DayAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	scheduleID := c.Param("scheduleID")
	date := c.Query("date")
	if _, err := time.Parse(services.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	availability, err := hb.Availability.GetDayAvailability(c.Request.Context(), scheduleID, date)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		logger.Error("Failed to compute day availability",
			zap.String("scheduleId", scheduleID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to compute availability"})
		return
	}
	c.JSON(http.StatusOK, availability)
}
