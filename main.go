package main

import (
	"log"
	"os"

	"lumoxcloud/config"
	"lumoxcloud/controllers"
	dbpkg "lumoxcloud/db"
	"lumoxcloud/router"
	"lumoxcloud/tools"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// =====================
// ENV esperadas
// =====================
//
// Server
// - PORT                  (ex: 8080)
// - BASE_URL              (ex: http://localhost:8080, used in OAuth/Stripe callbacks)
// - SECRET_KEY            (session cookie signing secret)
//
// Google OAuth
// - GOOGLE_CLIENT_ID
// - GOOGLE_CLIENT_SECRET
//
// Stripe
// - STRIPE_SECRET_KEY
//
// =====================

func init() {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
	}
}

func main() {
	cfg := config.Get(getenv("CONFIG_PATH", "config.json"))

	dbpkg.SetConfigurations(cfg)
	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	controllers.SetConfigurations(cfg)
	controllers.SetOAuthConfig(cfg)
	tools.SetStripeKey(cfg.Stripe.SecretKey)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	router.Initialize(r, cfg)

	log.Printf("LumoxCloud listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
