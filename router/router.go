package router

import (
	"log"
	"net/http"

	"lumoxcloud/config"
	"lumoxcloud/controllers"
	"lumoxcloud/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
// Public routes + authenticated routes (AuthRequired) + admin routes (Adminizer).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(sessions.Sessions("lumoxcloud_session", cookie.NewStore([]byte(cfg.Security.SessionSecret))))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Public (no auth)
	r.GET("/", Logger(), controllers.Home)
	r.GET("/login", Logger(), controllers.Login)
	r.GET("/login/google/authorized", Logger(), controllers.GoogleAuthorized)

	// Provider redirect target, intentionally unauthenticated
	r.GET("/payment_success", Logger(), controllers.PaymentSuccess)

	// Authenticated routes (session required)
	auth := r.Group("")
	auth.Use(controllers.AuthRequired())
	auth.GET("/dashboard", Logger(), controllers.Dashboard)
	auth.GET("/logout", Logger(), controllers.Logout)
	auth.GET("/purchase/:plan_id", Logger(), controllers.Purchase)

	// Admin routes
	admin := auth.Group("/admin")
	admin.Use(Adminizer())
	admin.GET("", Logger(), controllers.AdminPanel)
	admin.GET("/add_plan", Logger(), controllers.AddPlan)
	admin.POST("/add_plan", Logger(), controllers.AddPlan)
	admin.GET("/delete_plan/:plan_id", Logger(), controllers.DeletePlan)
	admin.GET("/complete_payment/:purchase_id", Logger(), controllers.CompletePayment)

	log.Printf("Routes initialized")
}
