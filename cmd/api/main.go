package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/careflow/homecare-api/internal/config"
	dbpkg "github.com/careflow/homecare-api/internal/db"
	"github.com/careflow/homecare-api/internal/middleware"
	"github.com/careflow/homecare-api/internal/routes"
	"github.com/careflow/homecare-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := middleware.NewRedisClient(cfg.RedisAddr)

	var uploader storage.Uploader
	if s3up := storage.NewS3Uploader(cfg); s3up != nil {
		uploader = s3up
	} else {
		log.Println("S3_BUCKET not set, avatar uploads disabled")
	}

	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitRPM))

	routes.RegisterRoutes(r, db, uploader)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
