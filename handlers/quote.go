package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"churchms/backend"
	"churchms/models"
	"churchms/services"
)

// QuoteFeesHandler prices a schedule's fees for one member, applying the
// membership discount when the member is eligible.
func (hb *HandlerBundle) QuoteFeesHandler(c *gin.Context) {
	logger := getLogger(c)
	var input struct {
		ScheduleID string                 `json:"scheduleId" binding:"required"`
		Discount   *models.MemberDiscount `json:"discount,omitempty"`
		IsEligible bool                   `json:"isEligible"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	schedule, err := hb.Schedules.GetSchedule(c.Request.Context(), input.ScheduleID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		logger.Error("Failed to fetch schedule for fee quote",
			zap.String("scheduleId", input.ScheduleID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve schedule"})
		return
	}

	quotes := services.QuoteFees(schedule.Fees, input.Discount, input.IsEligible)
	c.JSON(http.StatusOK, gin.H{
		"scheduleId": input.ScheduleID,
		"fees":       quotes,
	})
}
