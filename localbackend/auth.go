package localbackend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/models"
	"github.com/yeremiapane/restaurant-order-panel/utils"
	"golang.org/x/crypto/bcrypt"
)

// Auth surface. Login checks bcrypt credentials and sets the HTTP-only
// jwt cookie the admin surface requires, the same contract the remote
// backend exposes.

const cookieMaxAge = 24 * 60 * 60

func (s *Server) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := s.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		fail(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		fail(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}

	c.SetCookie(utils.SessionCookieName, token, cookieMaxAge, "/", "", false, true)
	utils.InfoLogger.Printf("Login: %s (role=%s)", user.Email, user.Role)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

func (s *Server) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (s *Server) Verify(c *gin.Context) {
	user, err := s.userFromCookie(c)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": user})
}

func (s *Server) userFromCookie(c *gin.Context) (*models.User, error) {
	token, err := c.Cookie(utils.SessionCookieName)
	if err != nil {
		return nil, errors.New("missing session cookie")
	}
	claims, err := utils.ParseToken(token)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := s.DB.First(&user, claims.UserID).Error; err != nil {
		return nil, errors.New("user no longer exists")
	}
	return &user, nil
}

func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.userFromCookie(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		if user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin role required"})
			return
		}
		c.Next()
	}
}
