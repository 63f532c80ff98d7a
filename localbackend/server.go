package localbackend

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/models"
	"github.com/yeremiapane/restaurant-order-panel/utils"
	"gorm.io/gorm"
)

// Server implements the backend REST subset the panel talks to, backed
// by a gorm database. It is mounted in-process when LOCAL_BACKEND=true
// so development and tests do not need the remote service.
//
// The wire contract mirrors the remote backend: raw JSON entities on
// success, {"message": "..."} on error, a jwt cookie set by /auth/login.
type Server struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Server {
	return &Server{DB: db}
}

// Migrate creates the schema and ensures the four order statuses exist.
func (s *Server) Migrate() error {
	err := s.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Ingredient{},
		&models.Size{},
		&models.Option{},
		&models.Product{},
		&models.ProductIngredient{},
		&models.ProductSize{},
		&models.ProductOption{},
		&models.OrderStatus{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemIngredient{},
	)
	if err != nil {
		return err
	}

	statuses := []models.OrderStatus{
		{ID: 1, Name: models.StatusPending},
		{ID: 2, Name: models.StatusCooked},
		{ID: 3, Name: models.StatusAwaitingPay},
		{ID: 4, Name: models.StatusPaid},
	}
	for _, st := range statuses {
		var existing models.OrderStatus
		if err := s.DB.First(&existing, st.ID).Error; err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.DB.Create(&st).Error; err != nil {
			return err
		}
	}
	utils.InfoLogger.Println("Local backend schema ready")
	return nil
}

// Mount registers the public, auth and admin surfaces on the router.
// Paths match what backend.Client expects when its base URLs point at
// this same process.
func (s *Server) Mount(r gin.IRouter) {
	public := r.Group("/public-panel")
	{
		public.GET("/categoria", s.ListCategories)
		public.GET("/producto", s.ListProducts)
		public.GET("/producto/:id", s.GetProduct)
		public.GET("/ingrediente", s.ListIngredients)
		public.GET("/tamano", s.ListSizes)
		public.GET("/opciones", s.ListOptions)
		public.GET("/estado-pedido", s.ListOrderStatuses)

		public.POST("/pedido", s.CreateOrder)
		public.GET("/pedido", s.ListOrders)
		public.GET("/pedido/:id", s.GetOrder)
		public.PATCH("/pedido/:id/estado", s.UpdateOrderStatus)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", s.Login)
		auth.POST("/logout", s.Logout)
		auth.GET("/verify", s.Verify)
	}

	admin := r.Group("/admin-panel")
	admin.Use(s.requireAdmin())
	{
		admin.POST("/categoria", s.CreateCategory)
		admin.PATCH("/categoria/:id", s.UpdateCategory)
		admin.POST("/ingrediente", s.CreateIngredient)
		admin.PATCH("/ingrediente/:id", s.UpdateIngredient)
		admin.POST("/tamano", s.CreateSize)
		admin.PATCH("/tamano/:id", s.UpdateSize)
		admin.POST("/opciones", s.CreateOption)
		admin.PATCH("/opciones/:id", s.UpdateOption)
		admin.POST("/producto", s.CreateProduct)
		admin.PATCH("/producto/:id", s.UpdateProduct)
	}
}

func fail(c *gin.Context, status int, err error) {
	utils.ErrorLogger.Printf("local backend: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(status, gin.H{"message": err.Error()})
}

func pathUint(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid id"))
		return 0, false
	}
	return uint(id), true
}
