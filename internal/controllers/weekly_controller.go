package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gratitude-be/internal/middleware"
	"gratitude-be/internal/models"
	"gratitude-be/internal/service"
)

type WeeklyController struct {
	weeklyService service.WeeklyService
}

func NewWeeklyController(weeklyService service.WeeklyService) *WeeklyController {
	return &WeeklyController{
		weeklyService: weeklyService,
	}
}

// Submit handles POST /api/v1/weekly
func (wc *WeeklyController) Submit(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	var req models.WeeklyLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	letter, err := wc.weeklyService.Submit(sess, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You have already submitted a weekly letter for this week. You can only submit one per week.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, letter)
}

// Current handles GET /api/v1/weekly/current. 404 means the form should be
// shown; 200 returns the already-submitted letter for this ISO week.
func (wc *WeeklyController) Current(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	letter, err := wc.weeklyService.CurrentLetter(sess)
	if err != nil {
		if errors.Is(err, service.ErrNotSubmitted) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No letter submitted this week",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, letter)
}

// History handles GET /api/v1/weekly — the user's own letters, no user_id column
func (wc *WeeklyController) History(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	letters, err := wc.weeklyService.History(sess)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"letters": letters})
}
