package localbackend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/backend"
	"github.com/yeremiapane/restaurant-order-panel/models"
	"gorm.io/gorm"
)

// Admin surface: create and update for every catalog resource. Like the
// remote backend there is no delete; resources are hidden through the
// activo flag. Input shapes are shared with backend.Client so both sides
// of the wire stay in sync.

func (s *Server) CreateCategory(c *gin.Context) {
	var in backend.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	cat := models.Category{Name: in.Name, Image: in.Image, Active: in.Active}
	if err := s.DB.Create(&cat).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (s *Server) UpdateCategory(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var in backend.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	var cat models.Category
	if err := s.DB.First(&cat, id).Error; err != nil {
		fail(c, http.StatusNotFound, errors.New("category not found"))
		return
	}
	cat.Name = in.Name
	cat.Image = in.Image
	cat.Active = in.Active
	if err := s.DB.Save(&cat).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (s *Server) CreateIngredient(c *gin.Context) {
	var in backend.IngredientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	ing := models.Ingredient{Name: in.Name}
	if err := s.DB.Create(&ing).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, ing)
}

func (s *Server) UpdateIngredient(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var in backend.IngredientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	var ing models.Ingredient
	if err := s.DB.First(&ing, id).Error; err != nil {
		fail(c, http.StatusNotFound, errors.New("ingredient not found"))
		return
	}
	ing.Name = in.Name
	if err := s.DB.Save(&ing).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, ing)
}

func (s *Server) CreateSize(c *gin.Context) {
	var in backend.SizeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	size := models.Size{Name: in.Name}
	if err := s.DB.Create(&size).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, size)
}

func (s *Server) UpdateSize(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var in backend.SizeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	var size models.Size
	if err := s.DB.First(&size, id).Error; err != nil {
		fail(c, http.StatusNotFound, errors.New("size not found"))
		return
	}
	size.Name = in.Name
	if err := s.DB.Save(&size).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, size)
}

func (s *Server) CreateOption(c *gin.Context) {
	var in backend.OptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	opt := models.Option{Name: in.Name}
	if err := s.DB.Create(&opt).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, opt)
}

func (s *Server) UpdateOption(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var in backend.OptionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	var opt models.Option
	if err := s.DB.First(&opt, id).Error; err != nil {
		fail(c, http.StatusNotFound, errors.New("option not found"))
		return
	}
	opt.Name = in.Name
	if err := s.DB.Save(&opt).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, opt)
}

func productFromInput(in backend.ProductInput) models.Product {
	p := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		Active:      in.Active,
		CategoryID:  in.CategoryID,
	}
	for _, li := range in.Ingredients {
		p.Ingredients = append(p.Ingredients, models.ProductIngredient{
			IngredientID: li.IngredientID,
			Optional:     li.Optional,
			Default:      li.Default,
		})
	}
	for _, lo := range in.Options {
		p.Options = append(p.Options, models.ProductOption{
			OptionID: lo.OptionID,
			Price:    lo.Price,
		})
	}
	for _, ls := range in.AvailableSizes {
		p.AvailableSizes = append(p.AvailableSizes, models.ProductSize{
			SizeID: ls.SizeID,
			Price:  ls.Price,
		})
	}
	return p
}

func (s *Server) CreateProduct(c *gin.Context) {
	var in backend.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	product := productFromInput(in)
	if err := s.DB.Create(&product).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	s.respondProduct(c, http.StatusCreated, product.ID)
}

// UpdateProduct replaces the product row and all of its ingredient, size
// and option links in one transaction.
func (s *Server) UpdateProduct(c *gin.Context) {
	id, ok := pathUint(c, "id")
	if !ok {
		return
	}
	var in backend.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		for _, link := range []interface{}{
			&models.ProductIngredient{}, &models.ProductSize{}, &models.ProductOption{},
		} {
			if err := tx.Where("product_id = ?", id).Delete(link).Error; err != nil {
				return err
			}
		}
		product := productFromInput(in)
		product.ID = id
		return tx.Save(&product).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, errors.New("product not found"))
			return
		}
		fail(c, http.StatusInternalServerError, err)
		return
	}
	s.respondProduct(c, http.StatusOK, id)
}

func (s *Server) respondProduct(c *gin.Context, status int, id uint) {
	var out models.Product
	if err := productQuery(s.DB).First(&out, id).Error; err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(status, out)
}
