package controllers

import (
	"errors"
	"net/http"

	"starwars/models"
	"starwars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanetController struct {
	db *gorm.DB
}

func NewPlanetController(db *gorm.DB) *PlanetController {
	return &PlanetController{db: db}
}

// POST /planeta
func (pc *PlanetController) Create(c *gin.Context) {
	var req catalogRequest
	if err := utils.BindJSON(c, &req); err != nil {
		bindError(c, err, missingInBody)
		return
	}

	planet := models.NewPlanet(*req.Name, *req.Description)
	if err := pc.db.WithContext(c.Request.Context()).Create(&planet).Error; err != nil {
		storeError(c, err, "create planet")
		return
	}
	c.JSON(http.StatusOK, planet.Serialize())
}

// GET /planetas
func (pc *PlanetController) List(c *gin.Context) {
	var planets []models.Planet
	if err := pc.db.WithContext(c.Request.Context()).Order("id").Find(&planets).Error; err != nil {
		storeError(c, err, "list planets")
		return
	}

	out := make([]models.CatalogResponse, 0, len(planets))
	for _, p := range planets {
		out = append(out, p.Serialize())
	}
	c.JSON(http.StatusOK, out)
}

// GET /planeta/:id
func (pc *PlanetController) GetByID(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Error! Planet not found!"})
		return
	}

	var planet models.Planet
	err := pc.db.WithContext(c.Request.Context()).First(&planet, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Error! Planet not found!"})
		return
	}
	if err != nil {
		storeError(c, err, "get planet")
		return
	}
	c.JSON(http.StatusOK, planet.Serialize())
}
