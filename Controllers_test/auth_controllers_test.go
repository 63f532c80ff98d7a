package Controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-order-panel/session"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

func TestLoginMirrorsSessionCookie(t *testing.T) {
	ts := newTestStack(t, "auth_login")

	code, resp := doJSON(t, ts.Client, "POST", ts.Panel.URL+"/login",
		map[string]interface{}{"email": "admin@restaurante.local", "password": "admin123"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["status"])

	// The jwt cookie now lives on the panel's domain.
	panelURL, _ := url.Parse(ts.Panel.URL)
	var token string
	for _, ck := range ts.Client.Jar.Cookies(panelURL) {
		if ck.Name == utils.SessionCookieName {
			token = ck.Value
		}
	}
	assert.NotEmpty(t, token)

	claims, err := utils.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newTestStack(t, "auth_badcreds")

	code, resp := doJSON(t, ts.Client, "POST", ts.Panel.URL+"/login",
		map[string]interface{}{"email": "admin@restaurante.local", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, resp["status"])
}

func TestLogoutDropsCookie(t *testing.T) {
	ts := newTestStack(t, "auth_logout")

	code, _ := doJSON(t, ts.Client, "POST", ts.Panel.URL+"/login",
		map[string]interface{}{"email": "admin@restaurante.local", "password": "admin123"})
	assert.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, ts.Client, "POST", ts.Panel.URL+"/logout", nil)
	assert.Equal(t, http.StatusOK, code)

	panelURL, _ := url.Parse(ts.Panel.URL)
	for _, ck := range ts.Client.Jar.Cookies(panelURL) {
		assert.NotEqual(t, utils.SessionCookieName, ck.Name)
	}
}

func TestSessionCookieNamesDoNotCollide(t *testing.T) {
	// The browser session cookie and the auth cookie must coexist.
	assert.NotEqual(t, session.CookieName, utils.SessionCookieName)
}
