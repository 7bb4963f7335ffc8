package router

import (
	"time"

	"familybudget/api"
	"familybudget/config"
	_ "familybudget/docs"
	"familybudget/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := api.NewAuthHandler(cfg)
	familyHandler := api.NewFamilyHandler(cfg)
	expenseHandler := api.NewExpenseHandler()
	incomeHandler := api.NewIncomeHandler()
	statsHandler := api.NewStatsHandler()
	exportHandler := api.NewExportHandler()

	// 认证相关路由（无需登录）
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", middleware.LoginRateLimit(10, time.Minute), authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	// 支出类别候选（无需登录）
	r.GET("/categories", expenseHandler.GetCategories)

	// 需要会话认证的路由
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth())
	{
		authorized.GET("/auth/me", authHandler.Me)

		// 家庭与成员
		authorized.POST("/families", familyHandler.Create)
		authorized.GET("/families", familyHandler.List)
		authorized.POST("/families/add-member", familyHandler.AddMember)

		// 账目
		authorized.POST("/expenses", expenseHandler.Create)
		authorized.GET("/expenses", expenseHandler.List)
		authorized.POST("/incomes", incomeHandler.Create)
		authorized.GET("/incomes", incomeHandler.List)

		// 统计
		authorized.GET("/stats", statsHandler.GetStats)

		// 导出
		export := authorized.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/xlsx", exportHandler.ExportXLSX)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			// 会话走 cookie，凭证模式下必须回写具体 Origin
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
