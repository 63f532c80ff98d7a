package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-order-panel/kds"
	"github.com/yeremiapane/restaurant-order-panel/kitchen"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// KitchenController exposes the board snapshot and the status workflow,
// plus the websocket feed for displays that prefer push over polling.
type KitchenController struct {
	Board *kitchen.Board
	Hub   *kds.Hub
}

func NewKitchenController(board *kitchen.Board, hub *kds.Hub) *KitchenController {
	return &KitchenController{Board: board, Hub: hub}
}

// GetBoard -> last polled snapshot with refresh metadata
func (kc *KitchenController) GetBoard(c *gin.Context) {
	orders, refreshedAt, err := kc.Board.Snapshot()

	payload := gin.H{
		"orders":       orders,
		"refreshed_at": refreshedAt,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen board", payload)
}

// GetOrdersByStatus -> one board tab
func (kc *KitchenController) GetOrdersByStatus(c *gin.Context) {
	status := c.Param("status")
	if status == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status is required"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders by status", kc.Board.OrdersByStatus(status))
}

// UpdateOrderStatus -> move an order through the workflow
func (kc *KitchenController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var body struct {
		StatusID uint `json:"estado_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := kc.Board.UpdateStatus(c.Request.Context(), uint(orderID), body.StatusID)
	if err != nil {
		utils.ErrorLogger.Printf("Error updating order %d status: %v", orderID, err)
		utils.RespondError(c, http.StatusBadGateway, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// Refresh -> force a refetch outside the polling schedule
func (kc *KitchenController) Refresh(c *gin.Context) {
	if !kc.Board.Refresh(c.Request.Context()) {
		utils.RespondJSON(c, http.StatusAccepted, "Refresh already in progress", nil)
		return
	}
	kc.GetBoard(c)
}

// Feed -> websocket endpoint for kitchen displays
func (kc *KitchenController) Feed(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	kc.Hub.RegisterClient(ws, "kitchen")

	// Keep reading so closes are noticed.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kc.Hub.UnregisterClient(ws)
}
