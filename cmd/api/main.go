package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garagedesk/garage-scheduler/internal/config"
	dbpkg "github.com/garagedesk/garage-scheduler/internal/db"
	"github.com/garagedesk/garage-scheduler/internal/middleware"
	"github.com/garagedesk/garage-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
