package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bellasalon/booking-api/internal/config"
	dbpkg "github.com/bellasalon/booking-api/internal/db"
	"github.com/bellasalon/booking-api/internal/feed"
	"github.com/bellasalon/booking-api/internal/middleware"
	"github.com/bellasalon/booking-api/internal/notify"
	"github.com/bellasalon/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	hub := feed.NewHub()

	dispatcher := notify.NewDispatcher(notify.NewMailer(cfg))
	defer dispatcher.Close()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, hub, dispatcher)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
