package main

import (
	"fmt"
	"log"

	"servibook/configs"
	"servibook/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	configs.InitLogger(cfg.Env)

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// HTTP
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
