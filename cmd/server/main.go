package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"

	_ "admin-service/docs"
	"admin-service/internal/config"
	"admin-service/internal/database"
	"admin-service/internal/handlers"
	"admin-service/internal/registry"
	"admin-service/internal/schema"
	"admin-service/internal/store"
)

// @title Admin Service API
// @version 1.0
// @description Generic CRUD and schema introspection backend for the admin dashboard.
// @BasePath /
func main() {
	seed := flag.Bool("seed", false, "insert starter records into empty collections")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	reg := registry.DefaultModels()
	modelConfigs := config.DefaultModelConfigs()
	st := store.New(db)
	schemaService := schema.NewService(reg, st)

	if *seed {
		if err := seedData(reg, st); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	h := handlers.New(cfg, st, reg, modelConfigs, schemaService)
	h.RegisterRoutes(router)

	log.Printf("Starting admin-service on :%s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
