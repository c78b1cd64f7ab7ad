package config

import (
	"encoding/json"
	"log"
	"os"
)

// insecureSessionSecret is the fallback used when no secret is configured.
// Known weakness kept for dev parity; never run production with it.
const insecureSessionSecret = "supersecretkey"

type Configuration struct {
	ApiPort string `json:"api_port"`
	BaseURL string `json:"base_url"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	QrDir string `json:"qr_dir"`

	Security struct {
		SessionSecret string `json:"session_secret"`
	} `json:"security"`

	Google struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"google"`

	Stripe struct {
		SecretKey string `json:"secret_key"`
	} `json:"stripe"`
}

// Get loads the configuration file and applies env overrides.
// The file is optional: secrets normally come from the environment
// (via .env in dev), matching the deployment setup.
func Get(path string) Configuration {
	var c Configuration

	if b, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Printf("config: %s not found, using defaults and env", path)
	}

	// env overrides
	if v := os.Getenv("PORT"); v != "" {
		c.ApiPort = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.Security.SessionSecret = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		c.Google.ClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		c.Google.ClientSecret = v
	}
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		c.Stripe.SecretKey = v
	}

	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:" + c.ApiPort
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.QrDir == "" {
		c.QrDir = "static/qr"
	}
	if c.Security.SessionSecret == "" {
		log.Printf("config: SECRET_KEY not set, falling back to insecure default")
		c.Security.SessionSecret = insecureSessionSecret
	}

	return c
}
