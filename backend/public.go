package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yeremiapane/restaurant-order-panel/models"
)

// Public panel surface: the read-only catalog plus order creation,
// listing and status updates.

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.do(ctx, http.MethodGet, c.PublicURL+"/categoria", nil, &out)
	return out, err
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := c.do(ctx, http.MethodGet, c.PublicURL+"/producto", nil, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, id uint) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/producto/%d", c.PublicURL, id), nil, &out)
	return out, err
}

func (c *Client) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var out []models.Ingredient
	err := c.do(ctx, http.MethodGet, c.PublicURL+"/ingrediente", nil, &out)
	return out, err
}

func (c *Client) ListSizes(ctx context.Context) ([]models.Size, error) {
	var out []models.Size
	err := c.do(ctx, http.MethodGet, c.PublicURL+"/tamano", nil, &out)
	return out, err
}

func (c *Client) ListOptions(ctx context.Context) ([]models.Option, error) {
	var out []models.Option
	err := c.do(ctx, http.MethodGet, c.PublicURL+"/opciones", nil, &out)
	return out, err
}

func (c *Client) ListOrderStatuses(ctx context.Context) ([]models.OrderStatus, error) {
	var out []models.OrderStatus
	err := c.do(ctx, http.MethodGet, c.PublicURL+"/estado-pedido", nil, &out)
	return out, err
}

// CreateOrder submits an order draft and returns the persisted order with
// its backend-assigned id.
func (c *Client) CreateOrder(ctx context.Context, draft models.OrderDraft) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, http.MethodPost, c.PublicURL+"/pedido", draft, &out)
	return out, err
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := c.do(ctx, http.MethodGet, c.PublicURL+"/pedido", nil, &out)
	return out, err
}

func (c *Client) GetOrder(ctx context.Context, id uint) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/pedido/%d", c.PublicURL, id), nil, &out)
	return out, err
}

// UpdateOrderStatus moves an order to a new status and returns the
// updated order.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, statusID uint) (models.Order, error) {
	body := map[string]uint{"estado_id": statusID}
	var out models.Order
	err := c.do(ctx, http.MethodPatch,
		fmt.Sprintf("%s/pedido/%d/estado", c.PublicURL, orderID), body, &out)
	return out, err
}
