package app

import (
	"luminax_client/internal/middleware"
	"luminax_client/pkg/monitoring"
	"luminax_client/pkg/security"
	"luminax_client/pkg/tracing"

	"github.com/gin-gonic/gin"
)

func (a *App) newRouter(c *controllers) *gin.Engine {
	if a.Config.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(security.Secure())
	router.Use(security.CORS(a.Config.CORS.AllowedOrigins))
	router.Use(a.limiter.Middleware())
	router.Use(tracing.GinMiddleware())
	router.Use(monitoring.MetricsMiddleware())

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")

	// 1. 目录(无需登录)
	a.registerCatalogRoutes(api, c)

	// 2. 会话
	a.registerSessionRoutes(api, c)

	// 3. 购物车：业务规则在服务中检查并发出提示
	cart := api.Group("/cart")
	{
		cart.GET("", c.cart.GetCart)
		cart.POST("", c.cart.AddToCart)
		cart.DELETE("", c.cart.ClearCart)
		cart.DELETE("/:courseId", c.cart.RemoveFromCart)
		cart.POST("/checkout", c.cart.Checkout)
	}
	api.POST("/courses/:id/enroll", c.cart.EnrollNow)

	// 4. 需要登录
	authGroup := api.Group("")
	authGroup.Use(middleware.RequireUser(a.Store))
	{
		authGroup.GET("/my-courses", c.enrollment.MyCourses)
		authGroup.POST("/enrollments/:id/lessons/:lessonId/complete", c.enrollment.CompleteLesson)
	}

	// 5. 界面偏好与提示
	api.GET("/preferences", c.preference.GetPreferences)
	api.POST("/preferences/dark-mode/toggle", c.preference.ToggleDarkMode)
	api.GET("/notifications", c.preference.Notifications)

	return router
}

func (a *App) registerCatalogRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/courses", c.catalog.ListCourses)
	api.GET("/courses/featured", c.catalog.Featured)
	api.GET("/courses/:id", c.catalog.GetCourseDetail)
	api.GET("/courses/:id/flags", c.catalog.GetCourseFlags)
	api.GET("/courses/:id/reviews", c.catalog.GetCourseReviews)
	api.GET("/categories", c.catalog.Categories)
	api.PUT("/search", c.catalog.UpdateSearch)
}

func (a *App) registerSessionRoutes(api *gin.RouterGroup, c *controllers) {
	api.POST("/login", c.session.Login)
	api.POST("/register", c.session.Register)
	api.POST("/demo-login", c.session.DemoLogin)
	api.POST("/logout", c.session.Logout)
	api.GET("/me", c.session.Me)
}
