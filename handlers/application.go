package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"churchms/backend"
	"churchms/models"
	"churchms/services"
	"churchms/utils"
)

// StartApplicationSession opens a new sacrament-application wizard session.
func (hb *HandlerBundle) StartApplicationSession(c *gin.Context) {
	logger := getLogger(c)
	var input struct {
		ScheduleID string `json:"scheduleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	// Reject unknown schedules up front.
	if _, err := hb.Schedules.GetSchedule(c.Request.Context(), input.ScheduleID); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		logger.Error("Failed to fetch schedule", zap.String("scheduleId", input.ScheduleID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve schedule"})
		return
	}

	session := services.StartApplication(input.ScheduleID)
	sessionID := uuid.New().String()
	if err := hb.storeSession(c, sessionID, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store application session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": sessionID,
		"session":   session,
	})
}

// UpdateApplicationSession applies one wizard transition: selecting an
// occurrence date (which recomputes availability and may auto-select the
// only open service time) or selecting a service time manually.
func (hb *HandlerBundle) UpdateApplicationSession(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")
	var input struct {
		Date          string `json:"date,omitempty"`
		ServiceTimeID string `json:"serviceTimeId,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, ok := hb.loadSession(c, sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "application session not found or expired"})
		return
	}

	switch {
	case input.Date != "":
		availability, err := hb.Availability.GetDayAvailability(c.Request.Context(), session.ScheduleID, input.Date)
		if err != nil {
			logger.Error("Failed to compute availability for session",
				zap.String("sessionID", sessionID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to compute availability"})
			return
		}
		if !availability.Occurrence {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "schedule does not occur on the selected date"})
			return
		}
		session = services.SelectDate(session, availability)

	case input.ServiceTimeID != "":
		var selected bool
		session, selected = services.SelectTime(session, input.ServiceTimeID)
		if !selected {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown service time for the selected date"})
			return
		}

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either date or serviceTimeId must be provided"})
		return
	}

	if err := hb.storeSession(c, sessionID, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store application session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "session": session})
}

// GetApplicationSession returns the current wizard state.
func (hb *HandlerBundle) GetApplicationSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, ok := hb.loadSession(c, sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "application session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "session": session})
}

func (hb *HandlerBundle) storeSession(c *gin.Context, sessionID string, session models.ApplicationSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return hb.SessionCache.Set(c.Request.Context(), utils.SessionCachePrefix+sessionID, data, utils.SessionCacheTTL).Err()
}

func (hb *HandlerBundle) loadSession(c *gin.Context, sessionID string) (models.ApplicationSession, bool) {
	var session models.ApplicationSession
	data, err := hb.SessionCache.Get(c.Request.Context(), utils.SessionCachePrefix+sessionID).Bytes()
	if err != nil {
		return session, false
	}
	if err := json.Unmarshal(data, &session); err != nil {
		return session, false
	}
	return session, true
}
