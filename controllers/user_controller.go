package controllers

import (
	"net/http"

	"starwars/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// GET /usuarios
func (uc *UserController) List(c *gin.Context) {
	var users []models.User
	if err := uc.db.WithContext(c.Request.Context()).Order("id").Find(&users).Error; err != nil {
		storeError(c, err, "list users")
		return
	}

	out := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, u.Serialize())
	}
	c.JSON(http.StatusOK, out)
}
