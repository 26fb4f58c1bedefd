package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/controllers"
	"github.com/yeremiapane/food-order-app/middlewares"
	"github.com/yeremiapane/food-order-app/services"
	"gorm.io/gorm"
)

// Deps carries every constructed handle the routes need. The composition
// root builds them once; nothing here reaches for globals.
type Deps struct {
	DB      *gorm.DB
	Catalog *services.CatalogCache
	Dishes  *services.DishService
	Cart    *services.CartService
	Shop    *services.ShopStatusService
	Storage *services.StorageService
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(deps.DB)
	dishCtrl := controllers.NewDishController(deps.Dishes, deps.Catalog)
	cartCtrl := controllers.NewCartController(deps.Cart)
	shopCtrl := controllers.NewShopController(deps.Shop)

	r.POST("/register", userCtrl.Register)
	r.POST("/login", userCtrl.Login)

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.POST("/dishes", dishCtrl.CreateDish)
		admin.GET("/dishes", dishCtrl.PageDishes)
		admin.GET("/dishes/:dish_id", dishCtrl.GetDish)
		admin.PUT("/dishes/:dish_id", dishCtrl.UpdateDish)
		admin.DELETE("/dishes", dishCtrl.DeleteDishes)
		admin.POST("/dishes/status/:status", dishCtrl.SetDishStatus)

		admin.PUT("/shop/:status", shopCtrl.SetStatus)
		admin.GET("/shop/status", shopCtrl.GetStatus)

		if deps.Storage != nil {
			uploadCtrl := controllers.NewUploadController(deps.Storage)
			admin.POST("/common/upload", uploadCtrl.UploadImage)
		}
	}

	user := r.Group("/user")
	{
		user.GET("/dishes", dishCtrl.ListByCategory)
		user.GET("/shop/status", shopCtrl.GetStatus)

		cart := user.Group("/cart")
		cart.Use(middlewares.AuthMiddleware())
		{
			cart.POST("", cartCtrl.AddToCart)
			cart.GET("", cartCtrl.ListCart)
		}
	}

	return r
}
