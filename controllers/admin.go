package controllers

import (
	"log"
	"net/http"

	dbpkg "lumoxcloud/db"
	"lumoxcloud/models"

	"github.com/gin-gonic/gin"
)

// GET /admin
// Lists every user, plan and purchase. No pagination.
func AdminPanel(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var users []models.User
	if err := db.Order("id asc").Find(&users).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	var plans []models.Plan
	if err := db.Order("id asc").Find(&plans).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	var purchases []models.PlanPurchase
	if err := db.Order("id asc").Find(&purchases).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"users":     users,
		"plans":     plans,
		"purchases": purchases,
	})
}

// GET,POST /admin/add_plan
// GET renders the form, POST creates the plan. Price and duration come
// from form fields; malformed numbers are rejected by the binder.
func AddPlan(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.HTML(http.StatusOK, "add_plan.html", gin.H{})
		return
	}

	var plan models.Plan
	if err := c.Bind(&plan); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if plan.Name == "" {
		RespondError(c, "name is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := db.Create(&plan).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// GET /admin/delete_plan/:plan_id
// Removes the plan. Purchases referencing it are left as-is.
func DeletePlan(c *gin.Context) {
	id, ok := ParamID(c, "plan_id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := db.Delete(&models.Plan{}, "id = ?", id).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// GET /admin/complete_payment/:purchase_id
// Force-completes a purchase by id, whatever its current status.
func CompletePayment(c *gin.Context) {
	id, ok := ParamID(c, "purchase_id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var purchase models.PlanPurchase
	if err := db.First(&purchase, id).Error; err == nil {
		purchase.Status = models.PURCHASE_STATUS_COMPLETED
		if err := db.Save(&purchase).Error; err != nil {
			log.Printf("failed to complete purchase %d: %v", purchase.ID, err)
		}
	}

	c.Redirect(http.StatusFound, "/admin")
}
