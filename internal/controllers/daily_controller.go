package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gratitude-be/internal/middleware"
	"gratitude-be/internal/models"
	"gratitude-be/internal/service"
)

type DailyController struct {
	dailyService service.DailyService
}

func NewDailyController(dailyService service.DailyService) *DailyController {
	return &DailyController{
		dailyService: dailyService,
	}
}

// Submit handles POST /api/v1/daily
func (dc *DailyController) Submit(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	var req models.DailyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	entry, err := dc.dailyService.Submit(sess, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You've already submitted your gratitude for today!",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Today handles GET /api/v1/daily/today. 404 means the form should be shown;
// 200 means the read-only view of today's entry.
func (dc *DailyController) Today(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	entry, err := dc.dailyService.TodayEntry(sess)
	if err != nil {
		if errors.Is(err, service.ErrNotSubmitted) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No entry submitted today",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// History handles GET /api/v1/daily — the user's own entries, no user_id column
func (dc *DailyController) History(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	entries, err := dc.dailyService.History(sess)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
