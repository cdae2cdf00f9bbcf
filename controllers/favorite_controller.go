package controllers

import (
	"errors"
	"net/http"

	"starwars/models"
	"starwars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

type favoriteRequest struct {
	UserID *uint `json:"user_id" binding:"required"`
}

// favoriteRoute describes one of the two favorite targets exposed over HTTP.
type favoriteRoute struct {
	param    string
	target   func(id uint) models.FavoriteTarget
	notFound string
}

var (
	planetFavorites = favoriteRoute{
		param:    "planeta_id",
		target:   func(id uint) models.FavoriteTarget { return models.PlanetFavorite{ID: id} },
		notFound: "Error! Planet not found!",
	}
	characterFavorites = favoriteRoute{
		param:    "character_id",
		target:   func(id uint) models.FavoriteTarget { return models.CharacterFavorite{ID: id} },
		notFound: "Error! Character not found!",
	}
)

// POST /favorite/planeta/:planeta_id
func (fc *FavoriteController) AddPlanet(c *gin.Context) {
	fc.add(c, planetFavorites)
}

// DELETE /favorite/planeta/:planeta_id
func (fc *FavoriteController) DeletePlanet(c *gin.Context) {
	fc.delete(c, planetFavorites)
}

// POST /favorite/character/:character_id
func (fc *FavoriteController) AddCharacter(c *gin.Context) {
	fc.add(c, characterFavorites)
}

// DELETE /favorite/character/:character_id
func (fc *FavoriteController) DeleteCharacter(c *gin.Context) {
	fc.delete(c, characterFavorites)
}

// GET /users/favorites/:user_id
func (fc *FavoriteController) ListByUser(c *gin.Context) {
	userID, ok := utils.ParamID(c, "user_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Favorites not found"})
		return
	}

	var favorites []models.Favorite
	err := fc.withRelations(c).
		Where("usuario_id = ?", userID).
		Order("id").
		Find(&favorites).Error
	if err != nil {
		storeError(c, err, "list favorites")
		return
	}

	out := make([]models.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, f.Serialize())
	}
	c.JSON(http.StatusOK, out)
}

func (fc *FavoriteController) add(c *gin.Context, route favoriteRoute) {
	targetID, ok := utils.ParamID(c, route.param)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": route.notFound})
		return
	}

	var req favoriteRequest
	if err := utils.BindJSON(c, &req); err != nil {
		bindError(c, err, func(string) string { return "Error! User not found!" })
		return
	}

	// Existence of the user and the target is left to the foreign keys.
	fav := models.NewFavorite(route.target(targetID), *req.UserID)
	if err := fc.db.WithContext(c.Request.Context()).Create(&fav).Error; err != nil {
		storeError(c, err, "create favorite")
		return
	}

	if err := fc.withRelations(c).First(&fav, fav.ID).Error; err != nil {
		storeError(c, err, "load favorite")
		return
	}
	c.JSON(http.StatusOK, fav.Serialize())
}

// delete removes the oldest favorite pointing at the target, from any user unless ?user_id= narrows it.
func (fc *FavoriteController) delete(c *gin.Context, route favoriteRoute) {
	targetID, ok := utils.ParamID(c, route.param)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": route.notFound})
		return
	}
	userID, scoped, err := utils.QueryID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error! " + err.Error()})
		return
	}

	target := route.target(targetID)
	query := fc.db.WithContext(c.Request.Context()).Where(models.TargetColumn(target)+" = ?", target.TargetID())
	if scoped {
		query = query.Where("usuario_id = ?", userID)
	}

	var fav models.Favorite
	err = query.Order("id").First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": route.notFound})
		return
	}
	if err != nil {
		storeError(c, err, "find favorite")
		return
	}

	if err := fc.db.WithContext(c.Request.Context()).Delete(&fav).Error; err != nil {
		storeError(c, err, "delete favorite")
		return
	}
	c.JSON(http.StatusOK, gin.H{"done": true})
}

func (fc *FavoriteController) withRelations(c *gin.Context) *gorm.DB {
	return fc.db.WithContext(c.Request.Context()).
		Preload("Character").
		Preload("Planet").
		Preload("User")
}
