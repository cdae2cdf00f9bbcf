package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"starwars/config"
	"starwars/database"
	"starwars/routes"
	"starwars/utils"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	closeLogs, err := utils.InitLogger(cfg.LogDir)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer closeLogs()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if err := database.SeedUsers(db, cfg); err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}

	r := routes.SetupRouter(db, cfg)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
