package app

import (
	"cs_sprint_backend/docs"
	"cs_sprint_backend/internal/config"
	"cs_sprint_backend/internal/middleware"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, cfg)
	a.registerFeedRoutes(router, c, repos, cfg)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerLearnerRoutes(authGroup, c)
		a.registerProRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		// Catalog is static and open to everyone.
		public.GET("/modules", c.content.ListModules)
		public.GET("/modules/:ref", c.content.GetModule)
		public.GET("/stages", c.content.ListStages)
		public.GET("/categories", c.content.ListCategories)
		public.GET("/community/directory", c.content.ListDirectory)

		public.GET("/search", c.search.Search)
		public.GET("/reflections/public", c.reflection.ListPublicReflections)

		// Shared result pages are reachable without a login.
		public.GET("/share/:slug", c.share.ResolveShareLink)

		// Recommendations answer for guests and logged-in users alike.
		public.GET("/recommendations", middleware.TryAuthMiddleware(cfg), c.weakness.GetRecommendations)
	}
}

func (a *App) registerFeedRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	feed := router.Group("/api/feed")
	feed.Use(middleware.ActivityMiddleware(repos.user))
	{
		feed.GET("/posts", middleware.TryAuthMiddleware(cfg), c.feed.ListPosts)
		feed.GET("/posts/:id/comments", middleware.TryAuthMiddleware(cfg), c.feed.ListComments)

		authorized := feed.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg), middleware.Guard(a.services.subscription, "community"))
		{
			authorized.POST("/posts", c.feed.CreatePost)
			authorized.POST("/posts/:id/comments", c.feed.PostComment)
			authorized.PUT("/comments/:id", c.feed.UpdateComment)
			authorized.DELETE("/comments/:id", c.feed.DeleteComment)
			authorized.POST("/posts/:id/reactions", c.feed.ToggleReaction)
			authorized.POST("/reports", c.feed.FileReport)
			authorized.POST("/images", c.feed.UploadImage)
		}
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/modules/:ref/questions", c.session.GetModuleQuestions)
	rg.GET("/modules/:ref/tasks", c.session.GetModuleTasks)

	rg.POST("/sessions", c.session.StartSession)
	rg.GET("/sessions/my", c.session.ListMySessions)
	rg.GET("/sessions/:id", c.session.GetSession)
	rg.PUT("/sessions/:id/checkpoint", c.session.SaveCheckpoint)
	rg.POST("/sessions/:id/quiz-attempts", c.session.SubmitQuizAttempt)
	rg.POST("/sessions/:id/apply-attempts", c.session.SubmitApplyAttempt)
	rg.POST("/sessions/:id/share", middleware.Guard(a.services.subscription, "share-link"), c.share.CreateShareLink)

	rg.POST("/reflections", c.reflection.SubmitReflection)

	rg.GET("/weakness", c.weakness.GetWeaknessMap)
	rg.POST("/diagnostics", c.weakness.SubmitDiagnostic)

	rg.GET("/subscription/entitlements", c.subscription.GetEntitlements)
	rg.POST("/subscription/checkout", c.subscription.Checkout)
	rg.DELETE("/subscription", c.subscription.CancelSubscription)
}

func (a *App) registerProRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/reports/monthly", middleware.Guard(a.services.subscription, "monthly-report"), c.session.GetMonthlyReport)
	rg.GET("/pro/ai-coach", middleware.Guard(a.services.subscription, "ai-coach"), c.subscription.GetAICoach)
	rg.GET("/pro/study-room", middleware.Guard(a.services.subscription, "study-room"), c.subscription.GetStudyRoom)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/modules", c.admin.ListModules)
		admin.GET("/modules/:id/versions", c.admin.ListModuleVersions)
		admin.POST("/questions", c.admin.CreateQuizQuestion)
	}
}
