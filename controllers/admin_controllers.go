package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/backend"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

// AdminController relays catalog management to the backend admin surface.
// All routes sit behind the auth middleware; the backend re-checks the
// jwt cookie on its side as well.
type AdminController struct {
	Backend *backend.Client
}

func NewAdminController(client *backend.Client) *AdminController {
	return &AdminController{Backend: client}
}

// adminContext forwards the caller's session cookie so the backend
// authorizes the request as that admin.
func adminContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if token, err := c.Cookie(utils.SessionCookieName); err == nil && token != "" {
		ctx = backend.WithSession(ctx, token)
	}
	return ctx
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// relayError maps a backend failure onto this surface, keeping the
// backend's status code when it sent one.
func relayError(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		utils.RespondError(c, apiErr.Status, err)
		return
	}
	utils.RespondError(c, http.StatusBadGateway, err)
}

// CreateCategory
func (ac *AdminController) CreateCategory(c *gin.Context) {
	var in backend.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := ac.Backend.CreateCategory(adminContext(c), in)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Category created", created)
}

// UpdateCategory
func (ac *AdminController) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "cat_id")
	if !ok {
		return
	}
	var in backend.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := ac.Backend.UpdateCategory(adminContext(c), id, in)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category updated", updated)
}

// CreateIngredient
func (ac *AdminController) CreateIngredient(c *gin.Context) {
	var in backend.IngredientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := ac.Backend.CreateIngredient(adminContext(c), in)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Ingredient created", created)
}

// UpdateIngredient
func (ac *AdminController) UpdateIngredient(c *gin.Context) {
	id, ok := pathID(c, "ingredient_id")
	if !ok {
		return
	}
	var in backend.IngredientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := ac.Backend.UpdateIngredient(adminContext(c), id, in)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Ingredient updated", updated)
}

// CreateSize
func (ac *AdminController) CreateSize(c *gin.Context) {
	var in backend.SizeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := ac.Backend.CreateSize(adminContext(c), in)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Size created", created)
}

// UpdateSize
func (ac *AdminController) UpdateSize(c *gin.Context) {
	id, ok := pathID(c, "size_id")
	if !ok {
		return
	}
	var in backend.SizeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := ac.Backend.UpdateSize(adminContext(c), id, in)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Size updated", updated)
}

// CreateOption
func (ac *AdminController) CreateOption(c *gin.Context) {
	var in backend.OptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := ac.Backend.CreateOption(adminContext(c), in)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Option created", created)
}

// UpdateOption
func (ac *AdminController) UpdateOption(c *gin.Context) {
	id, ok := pathID(c, "option_id")
	if !ok {
		return
	}
	var in backend.OptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := ac.Backend.UpdateOption(adminContext(c), id, in)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Option updated", updated)
}

// CreateProduct
func (ac *AdminController) CreateProduct(c *gin.Context) {
	var in backend.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := ac.Backend.CreateProduct(adminContext(c), in)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product created", created)
}

// UpdateProduct
func (ac *AdminController) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "product_id")
	if !ok {
		return
	}
	var in backend.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := ac.Backend.UpdateProduct(adminContext(c), id, in)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product updated", updated)
}
