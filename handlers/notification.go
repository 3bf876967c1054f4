package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"seminarhall/services/notification"
	"seminarhall/utils"
)

// ListNotificationsHandler returns stored notifications for an email address.
func ListNotificationsHandler(svc notification.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
			return
		}
		notifications, err := svc.ListForEmail(email)
		if err != nil {
			utils.GetLogger().Error("failed to list notifications", zap.String("email", email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications": notifications})
	}
}
