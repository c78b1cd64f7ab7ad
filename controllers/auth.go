package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"lumoxcloud/config"
	dbpkg "lumoxcloud/db"
	"lumoxcloud/models"
	"lumoxcloud/tools"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const oauthStateKey = "oauth_state"
const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var oauthConf *oauth2.Config

// SetOAuthConfig wires the Google auth-code flow. The handshake itself is
// delegated entirely to golang.org/x/oauth2.
func SetOAuthConfig(cfg config.Configuration) {
	oauthConf = &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.BaseURL + "/login/google/authorized",
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.profile",
			"https://www.googleapis.com/auth/userinfo.email",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleUserInfo é o subconjunto da resposta de userinfo que usamos.
type GoogleUserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// fetchGoogleUserInfo resolve o token trocado em um perfil Google.
// Declared as a var so tests can swap it out.
var fetchGoogleUserInfo = func(ctx context.Context, token *oauth2.Token) (GoogleUserInfo, error) {
	client := oauthConf.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return GoogleUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleUserInfo{}, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return GoogleUserInfo{}, err
	}
	return info, nil
}

// GET /
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// GET /login
func Login(c *gin.Context) {
	state := tools.RandomString(32)
	s := sessions.Default(c)
	s.Set(oauthStateKey, state)
	if err := s.Save(); err != nil {
		RespondError(c, "failed to save session", http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, oauthConf.AuthCodeURL(state))
}

// GET /login/google/authorized
// Provider callback: exchanges the code, fetches the profile and
// establishes the session. Any provider-side failure sends the visitor
// back to the login page, like the original flow.
func GoogleAuthorized(c *gin.Context) {
	s := sessions.Default(c)
	state, _ := s.Get(oauthStateKey).(string)
	s.Delete(oauthStateKey)
	_ = s.Save()

	if state == "" || c.Query("state") != state {
		c.Redirect(http.StatusFound, "/")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	token, err := oauthConf.Exchange(c.Request.Context(), code)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	info, err := fetchGoogleUserInfo(c.Request.Context(), token)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	user, err := LoginOrCreateUser(db, info)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := LoginUser(c, user); err != nil {
		RespondError(c, "failed to save session", http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// LoginOrCreateUser finds the user by OAuth subject id, creating one on
// first sign-in. Email collisions across different OAuth ids surface as
// the store's unique constraint error.
func LoginOrCreateUser(db *gorm.DB, info GoogleUserInfo) (models.User, error) {
	var user models.User
	err := db.Where("oauth_id = ?", info.ID).First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		user = models.User{
			Name:          info.Name,
			Email:         info.Email,
			OAuthProvider: "google",
			OAuthID:       info.ID,
		}
		if err := db.Create(&user).Error; err != nil {
			return models.User{}, err
		}
		return user, nil
	}
	return user, err
}

// GET /logout
func Logout(c *gin.Context) {
	if err := LogoutUser(c); err != nil {
		RespondError(c, "failed to clear session", http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
