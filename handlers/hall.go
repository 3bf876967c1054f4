package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"seminarhall/models"
	"seminarhall/services/hall"
	"seminarhall/utils"
)

// ListHallsHandler returns the hall directory. Pass ?all=true to include
// deactivated halls.
func ListHallsHandler(svc hall.HallService) gin.HandlerFunc {
	return func(c *gin.Context) {
		halls, err := svc.List(c.Query("all") != "true")
		if err != nil {
			utils.GetLogger().Error("failed to list halls", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list halls"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"halls": halls})
	}
}

// GetHallHandler looks a hall up by id or name.
func GetHallHandler(svc hall.HallService) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		h, err := svc.Get(key)
		if err != nil {
			utils.GetLogger().Error("failed to get hall", zap.String("key", key), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get hall"})
			return
		}
		if h == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hall not found"})
			return
		}
		c.JSON(http.StatusOK, h)
	}
}

func CreateHallHandler(svc hall.HallService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var h models.Hall
		if err := c.ShouldBindJSON(&h); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		created, err := svc.Create(&h)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func UpdateHallHandler(svc hall.HallService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var h models.Hall
		if err := c.ShouldBindJSON(&h); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		h.ID = c.Param("id")
		updated, err := svc.Update(&h)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteHallHandler(svc hall.HallService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(id); err != nil {
			utils.GetLogger().Error("failed to delete hall", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hall"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
