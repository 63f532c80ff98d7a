package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/backend"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

// ImageController relays the image library to the backend. Admin only.
type ImageController struct {
	Backend *backend.Client
}

func NewImageController(client *backend.Client) *ImageController {
	return &ImageController{Backend: client}
}

// ListImages -> images in a folder
func (ic *ImageController) ListImages(c *gin.Context) {
	images, err := ic.Backend.ListImages(adminContext(c), c.Query("folder"))
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Image list", images)
}

// UploadImage -> relay a multipart upload
func (ic *ImageController) UploadImage(c *gin.Context) {
	// Cap uploads at 10MB, same as the backend
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 10<<20)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	info, err := ic.Backend.UploadImage(adminContext(c), fileHeader.Filename, file, c.PostForm("folder"))
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Image uploaded", info)
}

// UploadImageFromURL -> have the backend fetch a remote image
func (ic *ImageController) UploadImageFromURL(c *gin.Context) {
	var body struct {
		URL    string `json:"url" binding:"required"`
		Folder string `json:"folder"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	info, err := ic.Backend.UploadImageFromURL(adminContext(c), body.URL, body.Folder)
	if err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Image uploaded", info)
}

// DeleteImage -> remove an image by URL
func (ic *ImageController) DeleteImage(c *gin.Context) {
	var body struct {
		ImageURL string `json:"imageUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ic.Backend.DeleteImage(adminContext(c), body.ImageURL); err != nil {
		relayError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Image deleted", nil)
}
