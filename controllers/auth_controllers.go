package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/backend"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

// AuthController relays login/logout/verify to the auth backend and
// mirrors the jwt cookie onto the panel's own domain, where the auth
// middleware validates it locally.
type AuthController struct {
	Backend *backend.Client
}

func NewAuthController(client *backend.Client) *AuthController {
	return &AuthController{Backend: client}
}

// Login -> proxy credentials, mirror the session cookie
func (ac *AuthController) Login(c *gin.Context) {
	var creds backend.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	resp, err := ac.Backend.Login(c.Request.Context(), creds)
	if err != nil {
		relayError(c, err)
		return
	}

	if cookie := ac.Backend.SessionCookie(); cookie != nil {
		c.SetCookie(utils.SessionCookieName, cookie.Value, cookie.MaxAge, "/", "", false, true)
	}

	utils.InfoLogger.Printf("Admin login: %s", creds.Email)
	utils.RespondJSON(c, http.StatusOK, "Login successful", resp)
}

// Logout -> proxy and drop the local cookie
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Backend.Logout(c.Request.Context()); err != nil {
		utils.ErrorLogger.Printf("Error on backend logout: %v", err)
	}

	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// Verify -> session check for the admin panel shell
func (ac *AuthController) Verify(c *gin.Context) {
	resp := ac.Backend.Verify(c.Request.Context())
	utils.RespondJSON(c, http.StatusOK, "Session state", resp)
}
