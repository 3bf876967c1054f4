package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"seminarhall/models"
	"seminarhall/services/schedule"
	"seminarhall/services/seminar"
	"seminarhall/utils"
)

// SubmitSeminarHandler accepts a booking request. The submitter's role comes
// from the auth middleware; admin submissions are approved on the spot.
func SubmitSeminarHandler(svc seminar.SeminarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s models.Seminar
		if err := c.ShouldBindJSON(&s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		role, _ := c.Get("userRole")
		roleStr, _ := role.(string)

		saved, err := svc.Submit(&s, roleStr)
		if err != nil {
			respondSeminarError(c, err, "Failed to submit seminar")
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}

// ListSeminarsHandler lists seminars, optionally filtered by status.
func ListSeminarsHandler(svc seminar.SeminarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		seminars, err := svc.List(c.Query("status"))
		if err != nil {
			utils.GetLogger().Error("failed to list seminars", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list seminars"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"seminars": seminars})
	}
}

// UpdateSeminarStatusHandler moves a seminar through the review workflow.
func UpdateSeminarStatusHandler(svc seminar.SeminarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var input struct {
			Status  string `json:"status" binding:"required"`
			Remarks string `json:"remarks"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		updated, err := svc.UpdateStatus(id, input.Status, input.Remarks)
		if err != nil {
			respondSeminarError(c, err, "Failed to update seminar status")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteSeminarHandler removes a seminar record.
func DeleteSeminarHandler(svc seminar.SeminarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(id); err != nil {
			respondSeminarError(c, err, "Failed to delete seminar")
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}

// respondSeminarError maps workflow errors onto status codes: bad requests
// are 400, unknown ids 404, booking conflicts 409, everything else 500.
func respondSeminarError(c *gin.Context, err error, fallback string) {
	if schedule.IsInvalidRequest(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, seminar.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	var conflict *seminar.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Result.Message, "result": conflict.Result})
		return
	}
	utils.GetLogger().Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
