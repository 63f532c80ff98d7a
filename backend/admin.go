package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yeremiapane/restaurant-order-panel/models"
)

// Admin panel surface: create/update for every catalog resource. The
// backend only exposes POST and PATCH here; deactivation happens through
// the `activo` flag.

type CategoryInput struct {
	Name   string  `json:"nombre"`
	Image  *string `json:"imagen,omitempty"`
	Active bool    `json:"activo"`
}

type IngredientInput struct {
	Name string `json:"nombre"`
}

type SizeInput struct {
	Name string `json:"nombre"`
}

type OptionInput struct {
	Name string `json:"nombre"`
}

type ProductIngredientInput struct {
	IngredientID uint `json:"ingrediente_id"`
	Optional     bool `json:"opcional"`
	Default      bool `json:"por_defecto"`
}

type ProductSizeInput struct {
	SizeID uint    `json:"tamano_id"`
	Price  float64 `json:"precio"`
}

type ProductOptionInput struct {
	OptionID uint    `json:"opcion_id"`
	Price    float64 `json:"precio"`
}

type ProductInput struct {
	Name           string                   `json:"nombre"`
	Description    *string                  `json:"descripcion,omitempty"`
	Image          *string                  `json:"imagen,omitempty"`
	Price          float64                  `json:"precio"`
	Active         bool                     `json:"activo"`
	CategoryID     uint                     `json:"categoria_id"`
	Ingredients    []ProductIngredientInput `json:"ingredientes,omitempty"`
	Options        []ProductOptionInput     `json:"opciones,omitempty"`
	AvailableSizes []ProductSizeInput       `json:"tamanosDisponibles,omitempty"`
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (models.Category, error) {
	var out models.Category
	err := c.do(ctx, http.MethodPost, c.AdminURL+"/categoria", in, &out)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, id uint, in CategoryInput) (models.Category, error) {
	var out models.Category
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/categoria/%d", c.AdminURL, id), in, &out)
	return out, err
}

func (c *Client) CreateIngredient(ctx context.Context, in IngredientInput) (models.Ingredient, error) {
	var out models.Ingredient
	err := c.do(ctx, http.MethodPost, c.AdminURL+"/ingrediente", in, &out)
	return out, err
}

func (c *Client) UpdateIngredient(ctx context.Context, id uint, in IngredientInput) (models.Ingredient, error) {
	var out models.Ingredient
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/ingrediente/%d", c.AdminURL, id), in, &out)
	return out, err
}

func (c *Client) CreateSize(ctx context.Context, in SizeInput) (models.Size, error) {
	var out models.Size
	err := c.do(ctx, http.MethodPost, c.AdminURL+"/tamano", in, &out)
	return out, err
}

func (c *Client) UpdateSize(ctx context.Context, id uint, in SizeInput) (models.Size, error) {
	var out models.Size
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/tamano/%d", c.AdminURL, id), in, &out)
	return out, err
}

func (c *Client) CreateOption(ctx context.Context, in OptionInput) (models.Option, error) {
	var out models.Option
	err := c.do(ctx, http.MethodPost, c.AdminURL+"/opciones", in, &out)
	return out, err
}

func (c *Client) UpdateOption(ctx context.Context, id uint, in OptionInput) (models.Option, error) {
	var out models.Option
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/opciones/%d", c.AdminURL, id), in, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodPost, c.AdminURL+"/producto", in, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, in ProductInput) (models.Product, error) {
	var out models.Product
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/producto/%d", c.AdminURL, id), in, &out)
	return out, err
}
