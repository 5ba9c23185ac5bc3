package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cs_sprint_backend/internal/config"
	"cs_sprint_backend/internal/controller"
	"cs_sprint_backend/internal/repository"
	"cs_sprint_backend/internal/service"
	"cs_sprint_backend/pkg/configwatcher"
	"cs_sprint_backend/pkg/database"
	"cs_sprint_backend/pkg/logger"
	"cs_sprint_backend/pkg/monitoring"
	"cs_sprint_backend/pkg/security"
	"cs_sprint_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user          *repository.UserRepository
	session       *repository.SessionRepository
	attempt       *repository.AttemptRepository
	reflection    *repository.ReflectionRepository
	weakness      *repository.WeaknessRepository
	subscription  *repository.SubscriptionRepository
	feedPost      *repository.FeedPostRepository
	feedComment   *repository.FeedCommentRepository
	reaction      *repository.ReactionRepository
	report        *repository.ReportRepository
	shareLink     *repository.ShareLinkRepository
	question      *repository.QuestionRepository
	moduleVersion *repository.ModuleVersionRepository
}

type services struct {
	storage      *service.StorageService
	session      *service.SessionService
	reflection   *service.ReflectionService
	weakness     *service.WeaknessService
	subscription *service.SubscriptionService
	feed         *service.FeedService
	search       *service.SearchService
	share        *service.ShareService
	admin        *service.AdminService
}

type controllers struct {
	content      *controller.ContentController
	session      *controller.SessionController
	reflection   *controller.ReflectionController
	weakness     *controller.WeaknessController
	subscription *controller.SubscriptionController
	feed         *controller.FeedController
	search       *controller.SearchController
	share        *controller.ShareController
	admin        *controller.AdminController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		session:       repository.NewSessionRepository(db),
		attempt:       repository.NewAttemptRepository(db),
		reflection:    repository.NewReflectionRepository(db),
		weakness:      repository.NewWeaknessRepository(db),
		subscription:  repository.NewSubscriptionRepository(db),
		feedPost:      repository.NewFeedPostRepository(db),
		feedComment:   repository.NewFeedCommentRepository(db),
		reaction:      repository.NewReactionRepository(db),
		report:        repository.NewReportRepository(db),
		shareLink:     repository.NewShareLinkRepository(db),
		question:      repository.NewQuestionRepository(db),
		moduleVersion: repository.NewModuleVersionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.session = service.NewSessionService(repos.session, repos.attempt, repos.question)
	s.reflection = service.NewReflectionService(repos.reflection, repos.session)
	s.weakness = service.NewWeaknessService(repos.weakness, repos.question)
	s.subscription = service.NewSubscriptionService(repos.subscription, cfg)
	s.feed = service.NewFeedService(repos.feedPost, repos.feedComment, repos.reaction, repos.report, repos.user, rdb, db, cfg)
	s.search = service.NewSearchService()
	s.share = service.NewShareService(repos.shareLink, repos.session)
	s.admin = service.NewAdminService(repos.session, repos.question, repos.moduleVersion)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		content:      controller.NewContentController(),
		session:      controller.NewSessionController(s.session),
		reflection:   controller.NewReflectionController(s.reflection),
		weakness:     controller.NewWeaknessController(s.weakness),
		subscription: controller.NewSubscriptionController(s.subscription),
		feed:         controller.NewFeedController(s.feed, s.storage),
		search:       controller.NewSearchController(s.search),
		share:        controller.NewShareController(s.share),
		admin:        controller.NewAdminController(s.admin),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchFeaturePolicy pushes feature flag changes from the config file into the
// running subscription service without a restart.
func (a *App) watchFeaturePolicy(configPath string) {
	go configwatcher.WatchConfig(configPath, func(cfg *config.Config) {
		a.services.subscription.ApplyFeaturePolicy(cfg.Features.MinimumPlan)
		logger.Log.Info("feature policy reloaded",
			zap.Int("flags", len(cfg.Features.MinimumPlan)))
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("cs-sprint", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchFeaturePolicy("configs/config.yaml")

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
