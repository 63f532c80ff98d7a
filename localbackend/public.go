package localbackend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/models"
	"github.com/yeremiapane/restaurant-order-panel/utils"
	"gorm.io/gorm"
)

// Public surface: the catalog reads and the order endpoints the customer
// panel uses. No auth, same as the remote backend.

func (s *Server) ListCategories(c *gin.Context) {
	var out []models.Category
	if err := s.DB.Where("active = ?", true).Order("id").Find(&out).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func productQuery(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Ingredients.Ingredient").
		Preload("Options.Option").
		Preload("AvailableSizes.Size")
}

func (s *Server) ListProducts(c *gin.Context) {
	var out []models.Product
	if err := productQuery(s.DB).Where("active = ?", true).Order("id").Find(&out).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) GetProduct(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var out models.Product
	if err := productQuery(s.DB).First(&out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, errors.New("product not found"))
			return
		}
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) ListIngredients(c *gin.Context) {
	var out []models.Ingredient
	if err := s.DB.Order("id").Find(&out).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) ListSizes(c *gin.Context) {
	var out []models.Size
	if err := s.DB.Order("id").Find(&out).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) ListOptions(c *gin.Context) {
	var out []models.Option
	if err := s.DB.Order("id").Find(&out).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) ListOrderStatuses(c *gin.Context) {
	var out []models.OrderStatus
	if err := s.DB.Order("id").Find(&out).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CreateOrder persists an order draft. The nested create wrappers are
// unwrapped into order items and their ingredient rows inside one
// transaction, and the stored total is recomputed from the line
// subtotals rather than trusted from the client.
func (s *Server) CreateOrder(c *gin.Context) {
	var draft models.OrderDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if draft.Customer == "" {
		fail(c, http.StatusBadRequest, errors.New("cliente is required"))
		return
	}
	if len(draft.Items.Create) == 0 {
		fail(c, http.StatusBadRequest, errors.New("order has no items"))
		return
	}

	statusID := draft.StatusID
	if statusID == 0 {
		statusID = models.StatusPendingID
	}

	order := models.Order{
		Customer: draft.Customer,
		Notes:    draft.Notes,
		StatusID: statusID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, it := range draft.Items.Create {
			var product models.Product
			if err := tx.First(&product, it.ProductID).Error; err != nil {
				return errors.New("unknown product in order")
			}
			item := models.OrderItem{
				ProductID:     it.ProductID,
				Quantity:      it.Quantity,
				UnitPrice:     it.UnitPrice,
				Subtotal:      it.Subtotal,
				ProductSizeID: it.SizeID,
				OptionID:      it.OptionID,
			}
			for _, ing := range it.Ingredients.Create {
				item.Ingredients = append(item.Ingredients, models.OrderItemIngredient{
					IngredientID: ing.IngredientID,
				})
			}
			order.Total += it.Subtotal
			order.Items = append(order.Items, item)
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created for %s (%s)",
		order.ID, order.Customer, utils.FormatCurrency(order.Total))

	s.respondOrder(c, http.StatusCreated, order.ID)
}

func orderQuery(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Status").
		Preload("Items.Product").
		Preload("Items.Ingredients.Ingredient")
}

func (s *Server) ListOrders(c *gin.Context) {
	var out []models.Order
	if err := orderQuery(s.DB).Order("id desc").Find(&out).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) GetOrder(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	s.respondOrder(c, http.StatusOK, id)
}

func (s *Server) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var body struct {
		StatusID uint `json:"estado_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	var status models.OrderStatus
	if err := s.DB.First(&status, body.StatusID).Error; err != nil {
		fail(c, http.StatusBadRequest, errors.New("unknown order status"))
		return
	}

	res := s.DB.Model(&models.Order{}).Where("id = ?", id).Update("status_id", body.StatusID)
	if res.Error != nil {
		fail(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		fail(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	utils.InfoLogger.Printf("Order %d moved to %s", id, status.Name)
	s.respondOrder(c, http.StatusOK, id)
}

func (s *Server) respondOrder(c *gin.Context, status int, id uint) {
	var out models.Order
	if err := orderQuery(s.DB).First(&out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, errors.New("order not found"))
			return
		}
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(status, out)
}
