package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gratitude-be/internal/middleware"
	"gratitude-be/internal/service"
)

// AdminController serves the superuser's unfiltered views. Rows here keep
// their user_id column, unlike the per-user history endpoints.
type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// Users handles GET /api/v1/admin/users
func (ac *AdminController) Users(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	users, err := ac.adminService.AllUsers(sess)
	if err != nil {
		ac.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// DailyEntries handles GET /api/v1/admin/daily
func (ac *AdminController) DailyEntries(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	entries, err := ac.adminService.AllDailyEntries(sess)
	if err != nil {
		ac.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// WeeklyLetters handles GET /api/v1/admin/weekly
func (ac *AdminController) WeeklyLetters(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session required"})
		return
	}

	letters, err := ac.adminService.AllWeeklyLetters(sess)
	if err != nil {
		ac.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"letters": letters})
}

func (ac *AdminController) writeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotSuperuser) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Superuser access required"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
