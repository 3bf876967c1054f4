package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"seminarhall/models"
	"seminarhall/services/schedule"
	"seminarhall/services/seminar"
	"seminarhall/utils"
)

// CheckAvailabilityHandler runs a conflict check for a candidate booking.
// A conflict comes back as 200 with ok=false; only malformed requests fail.
func CheckAvailabilityHandler(svc seminar.SeminarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		result, err := svc.CheckAvailability(req)
		if err != nil {
			if schedule.IsInvalidRequest(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			utils.GetLogger().Error("availability check failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// DayAvailabilityHandler returns merged blocks and free ranges for one hall
// and date.
func DayAvailabilityHandler(svc seminar.SeminarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hall := c.Query("hall")
		date := c.Query("date")
		if hall == "" || date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hall and date query parameters are required"})
			return
		}

		day, err := svc.DayAvailability(hall, date)
		if err != nil {
			utils.GetLogger().Error("day availability failed",
				zap.String("hall", hall), zap.String("date", date), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load day availability"})
			return
		}
		c.JSON(http.StatusOK, day)
	}
}

// MonthSummaryHandler returns the per-day occupancy grid for a month.
func MonthSummaryHandler(svc seminar.SeminarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hall := c.Query("hall")
		year, errY := strconv.Atoi(c.Query("year"))
		month, errM := strconv.Atoi(c.Query("month"))
		if hall == "" || errY != nil || errM != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hall, year and month query parameters are required"})
			return
		}

		days, err := svc.MonthSummary(hall, year, month)
		if err != nil {
			utils.GetLogger().Error("month summary failed",
				zap.String("hall", hall), zap.Int("year", year), zap.Int("month", month), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load month summary"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"hall": hall, "year": year, "month": month, "days": days})
	}
}
