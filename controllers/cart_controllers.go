package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/catalog"
	"github.com/yeremiapane/restaurant-order-panel/middlewares"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

var errNoDraft = errors.New("no product open for customization")

// CartController drives the order composition of one session: open a
// product, adjust the draft personalization, confirm it into the cart
// ledger, and edit the committed lines.
type CartController struct {
	Cache *catalog.Cache
}

func NewCartController(cache *catalog.Cache) *CartController {
	return &CartController{Cache: cache}
}

// respondCart answers with the ledger plus its derived totals so the UI
// never has to sum lines itself.
func (cc *CartController) respondCart(c *gin.Context, message string) {
	s := middlewares.CurrentSession(c)
	if s == nil {
		return
	}
	utils.RespondJSON(c, http.StatusOK, message, gin.H{
		"items":       s.Cart.Lines(),
		"total":       s.Cart.Total(),
		"total_items": s.Cart.ItemCount(),
	})
}

// OpenProduct -> start customizing one product (fresh defaults)
func (cc *CartController) OpenProduct(c *gin.Context) {
	s := middlewares.CurrentSession(c)
	if s == nil {
		return
	}

	id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid product id"))
		return
	}

	product, ok := cc.Cache.Product(uint(id))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	draft := s.OpenProduct(product)
	utils.RespondJSON(c, http.StatusOK, "Product opened for customization", gin.H{
		"producto":        product,
		"personalizacion": draft,
	})
}

// UpdateDraft -> mutate the in-progress personalization
func (cc *CartController) UpdateDraft(c *gin.Context) {
	s := middlewares.CurrentSession(c)
	if s == nil {
		return
	}

	product, draft, ok := s.Draft()
	if !ok {
		utils.RespondError(c, http.StatusConflict, errNoDraft)
		return
	}

	var body struct {
		SizeID           *uint `json:"tamano_id"`
		OptionID         *uint `json:"opcion_id"`
		ToggleIngredient *uint `json:"ingrediente_id"`
		Quantity         *int  `json:"cantidad"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.SizeID != nil {
		draft.SelectSize(product, *body.SizeID)
	}
	if body.OptionID != nil {
		draft.SelectOption(product, *body.OptionID)
	}
	if body.ToggleIngredient != nil {
		draft.ToggleIngredient(*body.ToggleIngredient)
	}
	if body.Quantity != nil {
		draft.SetQuantity(*body.Quantity)
	}

	utils.RespondJSON(c, http.StatusOK, "Customization updated", gin.H{
		"personalizacion": draft,
		"precio_unitario": draft.UnitPrice(product),
	})
}

// CancelDraft -> discard the in-progress personalization
func (cc *CartController) CancelDraft(c *gin.Context) {
	s := middlewares.CurrentSession(c)
	if s == nil {
		return
	}
	s.CloseDraft()
	utils.RespondJSON(c, http.StatusOK, "Customization discarded", nil)
}

// ConfirmDraft -> fold the personalization into the cart ledger
func (cc *CartController) ConfirmDraft(c *gin.Context) {
	s := middlewares.CurrentSession(c)
	if s == nil {
		return
	}

	product, draft, ok := s.Draft()
	if !ok {
		utils.RespondError(c, http.StatusConflict, errNoDraft)
		return
	}

	line := s.Cart.AddItem(product, draft)
	s.CloseDraft()

	utils.RespondJSON(c, http.StatusOK, "Added to order", gin.H{
		"line":        line,
		"total":       s.Cart.Total(),
		"total_items": s.Cart.ItemCount(),
	})
}

// GetCart -> current ledger with derived totals
func (cc *CartController) GetCart(c *gin.Context) {
	cc.respondCart(c, "Current order")
}

// UpdateLineQuantity -> set a line's quantity (0 removes it)
func (cc *CartController) UpdateLineQuantity(c *gin.Context) {
	s := middlewares.CurrentSession(c)
	if s == nil {
		return
	}

	key, err := strconv.ParseUint(c.Param("line_key"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid line key"))
		return
	}

	var body struct {
		Quantity int `json:"cantidad"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	s.Cart.UpdateQuantity(uint(key), body.Quantity)
	cc.respondCart(c, "Quantity updated")
}

// RemoveLine -> delete one line
func (cc *CartController) RemoveLine(c *gin.Context) {
	s := middlewares.CurrentSession(c)
	if s == nil {
		return
	}

	key, err := strconv.ParseUint(c.Param("line_key"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid line key"))
		return
	}

	s.Cart.RemoveItem(uint(key))
	cc.respondCart(c, "Line removed")
}

// ClearCart -> explicit reset of the ledger
func (cc *CartController) ClearCart(c *gin.Context) {
	s := middlewares.CurrentSession(c)
	if s == nil {
		return
	}
	s.Cart.Clear()
	cc.respondCart(c, "Order cleared")
}
