package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/catalog"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

// MenuController serves the customer-facing catalog out of the cache.
// A failed backend read degrades to the last successfully loaded data
// with a stale flag instead of an empty page.
type MenuController struct {
	Cache *catalog.Cache
}

func NewMenuController(cache *catalog.Cache) *MenuController {
	return &MenuController{Cache: cache}
}

// GetCategories -> list categories, refreshed from the backend
func (mc *MenuController) GetCategories(c *gin.Context) {
	categories, err := mc.Cache.LoadCategories(c.Request.Context())
	if err != nil {
		if len(categories) == 0 {
			utils.RespondError(c, http.StatusBadGateway, err)
			return
		}
		utils.InfoLogger.Printf("Serving stale categories after load error: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"status":  true,
			"message": "List of categories (stale)",
			"data":    categories,
			"stale":   true,
		})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

// GetProducts -> list products, optionally filtered by category name
func (mc *MenuController) GetProducts(c *gin.Context) {
	categoryName := c.Query("categoria")

	var err error
	var products = mc.Cache.Products()
	if categoryName != "" {
		products, err = mc.Cache.LoadProductsByCategory(c.Request.Context(), categoryName)
	} else {
		products, err = mc.Cache.LoadProducts(c.Request.Context())
	}

	if err != nil {
		if len(products) == 0 {
			utils.RespondError(c, http.StatusBadGateway, err)
			return
		}
		utils.InfoLogger.Printf("Serving stale products after load error: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"status":  true,
			"message": "List of products (stale)",
			"data":    products,
			"stale":   true,
		})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// GetProductByID -> one cached product (customization facets included)
func (mc *MenuController) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid product id"))
		return
	}

	product, ok := mc.Cache.Product(uint(id))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}
