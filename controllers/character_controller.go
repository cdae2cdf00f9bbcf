package controllers

import (
	"errors"
	"net/http"

	"starwars/models"
	"starwars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// catalogRequest is the body of POST /character and POST /planeta.
type catalogRequest struct {
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
}

type CharacterController struct {
	db *gorm.DB
}

func NewCharacterController(db *gorm.DB) *CharacterController {
	return &CharacterController{db: db}
}

// POST /character
func (cc *CharacterController) Create(c *gin.Context) {
	var req catalogRequest
	if err := utils.BindJSON(c, &req); err != nil {
		bindError(c, err, missingInBody)
		return
	}

	character := models.NewCharacter(*req.Name, *req.Description)
	if err := cc.db.WithContext(c.Request.Context()).Create(&character).Error; err != nil {
		storeError(c, err, "create character")
		return
	}
	c.JSON(http.StatusOK, character.Serialize())
}

// GET /characters
func (cc *CharacterController) List(c *gin.Context) {
	var characters []models.Character
	if err := cc.db.WithContext(c.Request.Context()).Order("id").Find(&characters).Error; err != nil {
		storeError(c, err, "list characters")
		return
	}

	out := make([]models.CatalogResponse, 0, len(characters))
	for _, ch := range characters {
		out = append(out, ch.Serialize())
	}
	c.JSON(http.StatusOK, out)
}

// GET /character/:id
func (cc *CharacterController) GetByID(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Error! Character not found!"})
		return
	}

	var character models.Character
	err := cc.db.WithContext(c.Request.Context()).First(&character, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Error! Character not found!"})
		return
	}
	if err != nil {
		storeError(c, err, "get character")
		return
	}
	c.JSON(http.StatusOK, character.Serialize())
}
