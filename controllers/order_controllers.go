package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/middlewares"
	"github.com/yeremiapane/restaurant-order-panel/models"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

// OrderCreator is the slice of the backend client order submission needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, draft models.OrderDraft) (models.Order, error)
}

// OrderController turns the session's ledger into an order draft and
// submits it. Validation failures never reach the network; submission
// failures leave the ledger untouched so the customer can retry.
type OrderController struct {
	Backend OrderCreator
}

func NewOrderController(backend OrderCreator) *OrderController {
	return &OrderController{Backend: backend}
}

// SubmitOrder -> create the order on the backend, clear the cart on success
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	s := middlewares.CurrentSession(c)
	if s == nil {
		return
	}

	var body struct {
		Customer string `json:"cliente"`
		Notes    string `json:"notas"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if strings.TrimSpace(body.Customer) == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer name is required"))
		return
	}
	if s.Cart.ItemCount() == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order is empty"))
		return
	}

	draft := s.Cart.Draft(strings.TrimSpace(body.Customer), body.Notes)

	created, err := oc.Backend.CreateOrder(c.Request.Context(), draft)
	if err != nil {
		// Ledger stays as it was; the customer retries from the same cart.
		utils.ErrorLogger.Printf("Error creating order: %v", err)
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}

	s.Cart.Clear()
	utils.InfoLogger.Printf("Order %d created for %q (total %s)",
		created.ID, created.Customer, utils.FormatCurrency(created.Total))

	utils.RespondJSON(c, http.StatusCreated, "Order confirmed", gin.H{
		"pedido_id": created.ID,
		"pedido":    created,
	})
}
