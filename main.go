package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/food-order-app/config"
	"github.com/yeremiapane/food-order-app/middlewares"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/router"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	autoMigrate(db)

	ctx := context.Background()
	rdb, err := config.InitRedis(ctx)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to redis: %v", err)
	}

	deps := router.Deps{
		DB:      db,
		Catalog: services.NewCatalogCache(db, rdb),
		Cart:    services.NewCartService(db),
		Shop:    services.NewShopStatusService(rdb),
	}
	deps.Dishes = services.NewDishService(db, deps.Catalog)

	// Image uploads are optional: without MinIO credentials the catalog and
	// cart still run, only /admin/common/upload is absent.
	if os.Getenv("MINIO_ACCESS_KEY") != "" {
		minioClient, err := config.InitMinio()
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to connect to object storage: %v", err)
		}
		deps.Storage = services.NewStorageService(
			minioClient,
			os.Getenv("MINIO_PUBLIC_URL"),
			envOr("MINIO_BUCKET", "dish-images"),
		)
	}

	r := router.SetupRouter(deps)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.DishCategory{},
		&models.Dish{},
		&models.DishFlavor{},
		&models.ComboMeal{},
		&models.ComboMealDish{},
		&models.CartItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
