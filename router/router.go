package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/backend"
	"github.com/yeremiapane/restaurant-order-panel/catalog"
	"github.com/yeremiapane/restaurant-order-panel/controllers"
	"github.com/yeremiapane/restaurant-order-panel/kds"
	"github.com/yeremiapane/restaurant-order-panel/kitchen"
	"github.com/yeremiapane/restaurant-order-panel/middlewares"
	"github.com/yeremiapane/restaurant-order-panel/session"
)

// Deps carries everything the routes need. main builds one of these;
// tests build smaller ones against httptest backends.
type Deps struct {
	Backend  *backend.Client
	Cache    *catalog.Cache
	Sessions *session.Manager
	Board    *kitchen.Board
	Hub      *kds.Hub
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(deps.Cache)
	cartCtrl := controllers.NewCartController(deps.Cache)
	orderCtrl := controllers.NewOrderController(deps.Backend)
	kitchenCtrl := controllers.NewKitchenController(deps.Board, deps.Hub)
	authCtrl := controllers.NewAuthController(deps.Backend)
	adminCtrl := controllers.NewAdminController(deps.Backend)
	imageCtrl := controllers.NewImageController(deps.Backend)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      CUSTOMER ROUTES
	// ----------------------------------------------------------------
	r.GET("/categorias", menuCtrl.GetCategories)
	r.GET("/productos", menuCtrl.GetProducts)
	r.GET("/productos/:product_id", menuCtrl.GetProductByID)

	// Cart routes ride on the browser session cookie.
	cart := r.Group("/")
	cart.Use(middlewares.SessionMiddleware(deps.Sessions))
	{
		cart.POST("/carrito/producto/:product_id", cartCtrl.OpenProduct)
		cart.PATCH("/carrito/borrador", cartCtrl.UpdateDraft)
		cart.DELETE("/carrito/borrador", cartCtrl.CancelDraft)
		cart.POST("/carrito/borrador/confirmar", cartCtrl.ConfirmDraft)

		cart.GET("/carrito", cartCtrl.GetCart)
		cart.PATCH("/carrito/linea/:line_key", cartCtrl.UpdateLineQuantity)
		cart.DELETE("/carrito/linea/:line_key", cartCtrl.RemoveLine)
		cart.DELETE("/carrito", cartCtrl.ClearCart)

		cart.POST("/pedidos", orderCtrl.SubmitOrder)
	}

	// ----------------------------------------------------------------
	//                      AUTH ROUTES
	// ----------------------------------------------------------------
	login := r.Group("/")
	login.Use(middlewares.NewStrictRateLimiter())
	{
		login.POST("/login", authCtrl.Login)
	}
	r.POST("/logout", authCtrl.Logout)
	r.GET("/verify", authCtrl.Verify)

	// ----------------------------------------------------------------
	//                      KITCHEN ROUTES
	// ----------------------------------------------------------------
	kitchenGroup := r.Group("/cocina")
	kitchenGroup.Use(middlewares.AuthMiddleware())
	{
		kitchenGroup.GET("/tablero", kitchenCtrl.GetBoard)
		kitchenGroup.GET("/tablero/:status", kitchenCtrl.GetOrdersByStatus)
		kitchenGroup.PATCH("/pedidos/:order_id/estado", kitchenCtrl.UpdateOrderStatus)
		kitchenGroup.POST("/tablero/refrescar", kitchenCtrl.Refresh)
	}
	// WebSocket upgrade cannot carry custom headers from browsers, the
	// jwt cookie check happens inside the handler.
	r.GET("/cocina/ws", kitchenCtrl.Feed)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		admin.POST("/categorias", adminCtrl.CreateCategory)
		admin.PATCH("/categorias/:cat_id", adminCtrl.UpdateCategory)

		admin.POST("/ingredientes", adminCtrl.CreateIngredient)
		admin.PATCH("/ingredientes/:ingredient_id", adminCtrl.UpdateIngredient)

		admin.POST("/tamanos", adminCtrl.CreateSize)
		admin.PATCH("/tamanos/:size_id", adminCtrl.UpdateSize)

		admin.POST("/opciones", adminCtrl.CreateOption)
		admin.PATCH("/opciones/:option_id", adminCtrl.UpdateOption)

		admin.POST("/productos", adminCtrl.CreateProduct)
		admin.PATCH("/productos/:product_id", adminCtrl.UpdateProduct)

		admin.GET("/imagenes", imageCtrl.ListImages)
		admin.POST("/imagenes", imageCtrl.UploadImage)
		admin.POST("/imagenes/desde-url", imageCtrl.UploadImageFromURL)
		admin.DELETE("/imagenes", imageCtrl.DeleteImage)
	}

	return r
}
