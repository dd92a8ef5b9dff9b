package router

import (
	"fmt"
	"strings"

	"github.com/petmall-admin/internal/cache"
	"github.com/petmall-admin/internal/config"
	"github.com/petmall-admin/internal/constants"
	adminhandlers "github.com/petmall-admin/internal/http/handlers/admin"
	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/logger"
	"github.com/petmall-admin/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由；只注册处理器，不在此处访问服务
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	admin := r.Group("/admin")
	{
		admin.POST("/login",
			RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("identifier", "username")),
			adminHandler.Login,
		)
		admin.POST("/register", adminHandler.Register)

		authorized := admin.Group("")
		authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
		{
			authorized.GET("/me", adminHandler.Me)

			// 仪表盘
			authorized.GET("/dashboard/stats", adminHandler.GetDashboardStats)
			authorized.GET("/dashboard/sales-chart", adminHandler.GetSalesChart)
			authorized.GET("/dashboard/category-chart", adminHandler.GetCategoryChart)
			authorized.GET("/dashboard/recent-orders", adminHandler.GetRecentOrders)

			// 订单
			authorized.GET("/orders", adminHandler.GetOrders)
			authorized.GET("/orders/:id", adminHandler.GetOrder)
			authorized.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

			// 物流
			authorized.GET("/shipping", adminHandler.GetShipments)
			authorized.GET("/shipping/order/:order_id", adminHandler.GetShipmentByOrder)
			authorized.GET("/shipping/:id", adminHandler.GetShipment)
			authorized.POST("/shipping", adminHandler.CreateShipment)
			authorized.PUT("/shipping/:id", adminHandler.CorrectShipment)
			authorized.POST("/shipping/:id/advance", adminHandler.AdvanceShipment)

			// 会员等级
			authorized.GET("/vip", adminHandler.GetVIPLevels)
			authorized.POST("/vip", adminHandler.CreateVIPLevel)
			authorized.PUT("/vip/:id", adminHandler.UpdateVIPLevel)
			authorized.DELETE("/vip/:id", adminHandler.DeleteVIPLevel)

			// 用户
			authorized.GET("/users", adminHandler.GetUsers)
			authorized.GET("/users/:id", adminHandler.GetUser)
			authorized.POST("/users", adminHandler.CreateUser)
			authorized.PUT("/users/:id", adminHandler.UpdateUser)
			authorized.PUT("/users/:id/status", adminHandler.UpdateUserStatus)
			authorized.DELETE("/users/:id", adminHandler.DeleteUser)

			// 分类
			authorized.GET("/categories", adminHandler.GetCategories)
			authorized.POST("/categories", adminHandler.CreateCategory)
			authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
			authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

			// 轮播图
			authorized.GET("/banners", adminHandler.GetBanners)
			authorized.POST("/banners", adminHandler.CreateBanner)
			authorized.PUT("/banners/:id", adminHandler.UpdateBanner)
			authorized.DELETE("/banners/:id", adminHandler.DeleteBanner)

			// 商品
			authorized.GET("/products", adminHandler.GetProducts)
			authorized.GET("/products/:id", adminHandler.GetProduct)
			authorized.POST("/products", adminHandler.CreateProduct)
			authorized.POST("/products/batch-delete", adminHandler.BatchDeleteProducts)
			authorized.POST("/products/import", adminHandler.ImportProducts)
			authorized.PUT("/products/:id", adminHandler.UpdateProduct)
			authorized.DELETE("/products/:id", adminHandler.DeleteProduct)
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Not Found")
	})

	return r
}
