package routes

import (
	"starwars/config"
	"starwars/controllers"
	"starwars/middleware"
	"starwars/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.RecoveryMiddleware())

	// CORS middleware before the routes
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	SetupCatalogRoutes(r, db)
	SetupFavoriteRoutes(r, db)

	r.GET("/", sitemap(r))

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	userController := controllers.NewUserController(db)
	characterController := controllers.NewCharacterController(db)
	planetController := controllers.NewPlanetController(db)

	r.GET("/usuarios", userController.List)

	r.POST("/character", characterController.Create)
	r.GET("/characters", characterController.List)
	r.GET("/character/:id", characterController.GetByID)

	r.POST("/planeta", planetController.Create)
	r.GET("/planetas", planetController.List)
	r.GET("/planeta/:id", planetController.GetByID)
}

func SetupFavoriteRoutes(r *gin.Engine, db *gorm.DB) {
	favoriteController := controllers.NewFavoriteController(db)

	grp := r.Group("/favorite")
	{
		grp.POST("/planeta/:planeta_id", favoriteController.AddPlanet)
		grp.DELETE("/planeta/:planeta_id", favoriteController.DeletePlanet)
		grp.POST("/character/:character_id", favoriteController.AddCharacter)
		grp.DELETE("/character/:character_id", favoriteController.DeleteCharacter)
	}

	r.GET("/users/favorites/:user_id", favoriteController.ListByUser)
}
