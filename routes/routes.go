package routes

import (
	"github.com/2741538125/sky-takeout/configs"
	"github.com/2741538125/sky-takeout/controllers"
	"github.com/2741538125/sky-takeout/middlewares"
	"github.com/2741538125/sky-takeout/pkg/cache"
	"github.com/2741538125/sky-takeout/pkg/pay"
	"github.com/2741538125/sky-takeout/repository"
	"github.com/2741538125/sky-takeout/services"
	"github.com/2741538125/sky-takeout/ws"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, inv cache.Invalidator, hub *ws.OrderHub, log *logrus.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	dishRepo := repository.NewDishRepository(db)
	setmealRepo := repository.NewSetmealRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, employeeRepo, cfg.JWTSecret, cfg.JWTTTL)
	dishSvc := services.NewDishService(db, dishRepo, setmealRepo, inv, log)
	setmealSvc := services.NewSetmealService(db, setmealRepo, dishRepo, inv, log)
	cartSvc := services.NewCartService(db, cartRepo, dishRepo, setmealRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, cartSvc, addressRepo, &pay.MockGateway{}, hub, log)
	categorySvc := services.NewCategoryService(categoryRepo)
	addressSvc := services.NewAddressService(addressRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	setmealCtrl := controllers.NewSetmealController(setmealSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	addressCtrl := controllers.NewAddressController(addressSvc)
	commonCtrl := controllers.NewCommonController(cfg.UploadDir, log)

	// Public
	r.POST("/user/register", authCtrl.Register)
	r.POST("/user/login", authCtrl.Login)
	r.POST("/admin/employee/login", authCtrl.EmployeeLogin)
	r.GET("/user/category/list", categoryCtrl.List)
	r.GET("/user/dish/list", dishCtrl.ListForUser)
	r.GET("/user/setmeal/list", setmealCtrl.ListForUser)

	// Customer (user role)
	u := r.Group("/user", middlewares.AuthMiddleware(cfg.JWTSecret, "user"))
	{
		u.POST("/shoppingCart/add", cartCtrl.Add)
		u.POST("/shoppingCart/sub", cartCtrl.Sub)
		u.GET("/shoppingCart/list", cartCtrl.List)
		u.DELETE("/shoppingCart/clean", cartCtrl.Clean)

		u.GET("/addressBook/list", addressCtrl.List)
		u.POST("/addressBook", addressCtrl.Create)
		u.PUT("/addressBook/:id", addressCtrl.Update)
		u.PUT("/addressBook/default/:id", addressCtrl.SetDefault)
		u.DELETE("/addressBook/:id", addressCtrl.Delete)

		u.POST("/order/submit", orderCtrl.Submit)
		u.PUT("/order/payment", orderCtrl.Payment)
		u.PUT("/order/cancel/:id", orderCtrl.Cancel)
		u.POST("/order/repetition/:id", orderCtrl.Repetition)
		u.GET("/order/historyOrders", orderCtrl.History)
		u.GET("/order/orderDetail/:id", orderCtrl.Detail)
	}

	// Merchant console (employee role)
	a := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "employee"))
	{
		a.GET("/category/list", categoryCtrl.List)
		a.POST("/category", categoryCtrl.Create)
		a.DELETE("/category/:id", categoryCtrl.Delete)

		a.POST("/dish", dishCtrl.Create)
		a.PUT("/dish/:id", dishCtrl.Update)
		a.DELETE("/dish", dishCtrl.Delete)
		a.POST("/dish/status/:status", dishCtrl.StartOrStop)
		a.GET("/dish/page", dishCtrl.Page)
		a.GET("/dish/:id", dishCtrl.Get)

		a.POST("/setmeal", setmealCtrl.Create)
		a.PUT("/setmeal/:id", setmealCtrl.Update)
		a.DELETE("/setmeal", setmealCtrl.Delete)
		a.POST("/setmeal/status/:status", setmealCtrl.StartOrStop)
		a.GET("/setmeal/page", setmealCtrl.Page)
		a.GET("/setmeal/:id", setmealCtrl.Get)

		a.GET("/order/page", orderCtrl.AdminPage)
		a.GET("/order/:id", orderCtrl.AdminDetail)
		a.PUT("/order/confirm/:id", orderCtrl.Confirm)
		a.PUT("/order/delivery/:id", orderCtrl.Delivery)
		a.PUT("/order/complete/:id", orderCtrl.Complete)

		a.POST("/common/upload", commonCtrl.Upload)
	}

	// Merchant console reminder socket
	r.GET("/ws/admin", hub.Serve)
}
