package Controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-order-panel/backend"
	"github.com/yeremiapane/restaurant-order-panel/catalog"
	"github.com/yeremiapane/restaurant-order-panel/kds"
	"github.com/yeremiapane/restaurant-order-panel/kitchen"
	"github.com/yeremiapane/restaurant-order-panel/localbackend"
	"github.com/yeremiapane/restaurant-order-panel/router"
	"github.com/yeremiapane/restaurant-order-panel/session"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

// testStack runs the whole panel against an in-process backend: a gorm
// sqlite database behind the localbackend surface, the panel router in
// front, and an http client with a cookie jar playing the browser.
type testStack struct {
	DB      *gorm.DB
	Panel   *httptest.Server
	Backend *httptest.Server
	Client  *http.Client
	Deps    router.Deps
}

func newTestStack(t *testing.T, name string) *testStack {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	local := localbackend.New(db)
	if err := local.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := local.Seed(); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	backendEngine := gin.New()
	local.Mount(backendEngine)
	backendSrv := httptest.NewServer(backendEngine)
	t.Cleanup(backendSrv.Close)

	client := backend.NewClient(backend.Options{
		PublicURL: backendSrv.URL + "/public-panel",
		AdminURL:  backendSrv.URL + "/admin-panel",
		AuthURL:   backendSrv.URL + "/auth",
		ImagesURL: backendSrv.URL + "/images",
	})

	cache := catalog.NewCache(client)
	if _, err := cache.LoadCategories(context.Background()); err != nil {
		t.Fatalf("failed to load categories: %v", err)
	}
	if _, err := cache.LoadProducts(context.Background()); err != nil {
		t.Fatalf("failed to load products: %v", err)
	}

	sessions := session.NewManager(time.Hour)
	t.Cleanup(sessions.Stop)

	hub := kds.NewHub()
	board := kitchen.NewBoard(client, hub)

	deps := router.Deps{
		Backend:  client,
		Cache:    cache,
		Sessions: sessions,
		Board:    board,
		Hub:      hub,
	}
	panelSrv := httptest.NewServer(router.SetupRouter(deps))
	t.Cleanup(panelSrv.Close)

	jar, _ := cookiejar.New(nil)
	return &testStack{
		DB:      db,
		Panel:   panelSrv,
		Backend: backendSrv,
		Client:  &http.Client{Jar: jar},
		Deps:    deps,
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// newCookieClient is a second browser: its own jar, so its own session.
func newCookieClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to build cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// adminCookie fabricates a valid admin session cookie the way the auth
// backend would issue one. The seeded admin account has id 1.
func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return &http.Cookie{Name: utils.SessionCookieName, Value: token}
}
