package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/studiosandyyasmin/salon-scheduler/internal/cache"
	"github.com/studiosandyyasmin/salon-scheduler/internal/config"
	dbpkg "github.com/studiosandyyasmin/salon-scheduler/internal/db"
	"github.com/studiosandyyasmin/salon-scheduler/internal/history"
	infraRepo "github.com/studiosandyyasmin/salon-scheduler/internal/infra/repository"
	"github.com/studiosandyyasmin/salon-scheduler/internal/media"
	"github.com/studiosandyyasmin/salon-scheduler/internal/middleware"
	"github.com/studiosandyyasmin/salon-scheduler/internal/routes"
	"github.com/studiosandyyasmin/salon-scheduler/internal/sweeper"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unavailable, running without cache: %v", err)
			rdb = nil
		}
	}

	dispatcher := history.NewDispatcher(history.New(db))
	availCache := cache.NewAvailabilityCache(rdb)
	uploader := media.NewUploader(cfg)

	sw := sweeper.New(infraRepo.NewScheduleGormRepository(db), dispatcher, rdb)
	sw.Start(context.Background(), time.Duration(cfg.SweepIntervalMinutes)*time.Minute)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, routes.Dependencies{
		History:  dispatcher,
		Cache:    availCache,
		Uploader: uploader,
		Sweeper:  sw,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
