package controllers

import (
	"net/http"

	dbpkg "lumoxcloud/db"
	"lumoxcloud/models"

	"github.com/gin-gonic/gin"
)

// GET /dashboard
// Lists the user's purchases plus every plan available for sale.
func Dashboard(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var purchases []models.PlanPurchase
	if err := db.Where("user_id = ?", user.ID).Find(&purchases).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	var plans []models.Plan
	if err := db.Order("id asc").Find(&plans).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"user":      user,
		"purchases": purchases,
		"plans":     plans,
	})
}
