package controllers

import (
	"lumoxcloud/config"

	"github.com/gin-gonic/gin"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// RespondError writes a plain-text error, matching the storefront's
// minimal error surface (no validation feedback pages).
func RespondError(c *gin.Context, msg string, code int) {
	c.String(code, msg)
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}
