package controllers

import (
	"log"
	"net/http"
	"strconv"

	dbpkg "lumoxcloud/db"
	"lumoxcloud/models"
	"lumoxcloud/tools"

	"github.com/gin-gonic/gin"
)

// GET /purchase/:plan_id
// Creates a Stripe checkout session for the plan, renders its URL as a QR
// image and records a pending purchase. The three steps run in sequence
// with no rollback: a provider session may exist without a local row if a
// later step fails.
func Purchase(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	planID, ok := ParamID(c, "plan_id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var plan models.Plan
	if err := db.First(&plan, planID).Error; err != nil {
		RespondError(c, "plan not found", http.StatusNotFound)
		return
	}

	checkoutURL, err := tools.CreateCheckoutSession(user.ID, &plan, conf.BaseURL)
	if err != nil {
		log.Printf("stripe checkout error: %v", err)
		RespondError(c, "payment provider error", http.StatusInternalServerError)
		return
	}

	qrPath := tools.QRCodePath(conf.QrDir, user.ID, plan.ID)
	if err := tools.WriteQRCode(checkoutURL, qrPath); err != nil {
		log.Printf("qr code write error: %v", err)
		RespondError(c, "failed to generate qr code", http.StatusInternalServerError)
		return
	}

	purchase := models.PlanPurchase{
		UserID: user.ID,
		PlanID: plan.ID,
		Status: models.PURCHASE_STATUS_PENDING,
	}
	if err := db.Create(&purchase).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "purchase.html", gin.H{
		"plan":         plan,
		"qr_path":      "/" + qrPath,
		"checkout_url": checkoutURL,
	})
}

// GET /payment_success
// Unauthenticated redirect target for the payment provider. Trusts the
// user_id/plan_id query params as-is: a matching pending purchase is
// completed, anything else falls through to the dashboard redirect.
func PaymentSuccess(c *gin.Context) {
	userID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)
	planID, _ := strconv.ParseInt(c.Query("plan_id"), 10, 64)

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var purchase models.PlanPurchase
	err := db.Where("user_id = ? AND plan_id = ? AND status = ?",
		userID, planID, models.PURCHASE_STATUS_PENDING).First(&purchase).Error
	if err == nil {
		purchase.Status = models.PURCHASE_STATUS_COMPLETED
		if err := db.Save(&purchase).Error; err != nil {
			log.Printf("failed to complete purchase %d: %v", purchase.ID, err)
		}
	}

	c.Redirect(http.StatusFound, "/dashboard")
}
