package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/docs"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/api/handler"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/api/middleware"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/service"
	mongodb "github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/infrastructure/db/redis"
)

// Dependencies carries the shared infrastructure the router wires into
// repositories, services and handlers.
type Dependencies struct {
	DB        *mongo.Database
	Redis     *redis.Client
	Codec     ports.TokenCodec
	FileStore ports.FileStore
	BaseURL   string
	UploadDir string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route protection follows three tiers:
//   - public routes carry OptionalAuth, so a valid token widens visibility
//     but a missing or bad one never blocks the request;
//   - session routes carry Authenticate;
//   - admin routes carry Authenticate plus RequireRole(admin).
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	projectRepo := mongodb.NewProjectRepository(deps.DB)
	experienceRepo := mongodb.NewExperienceRepository(deps.DB)
	certificationRepo := mongodb.NewCertificationRepository(deps.DB)
	contactRepo := mongodb.NewContactRepository(deps.DB)
	settingRepo := mongodb.NewSettingRepository(deps.DB)

	authService := service.NewAuthService(userRepo, deps.Codec)
	projectService := service.NewProjectService(projectRepo, deps.Logger)
	experienceService := service.NewExperienceService(experienceRepo, deps.Logger)
	certificationService := service.NewCertificationService(certificationRepo, deps.Logger)
	contactService := service.NewContactService(contactRepo, deps.Logger)

	settingsCache := redisdb.NewSettingsCache(deps.Redis)
	settingService := service.NewSettingService(settingRepo, settingsCache, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	experienceHandler := handler.NewExperienceHandler(experienceService)
	certificationHandler := handler.NewCertificationHandler(certificationService)
	contactHandler := handler.NewContactHandler(contactService)
	settingHandler := handler.NewSettingHandler(settingService)
	uploadHandler := handler.NewUploadHandler(deps.FileStore, deps.BaseURL)
	healthHandler := handler.NewHealthHandler(deps.DB.Client(), deps.Redis)

	authed := middleware.Authenticate(authService)
	maybeAuthed := middleware.OptionalAuth(authService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Health probes and operational endpoints ---
	e.GET("/healthz", healthHandler.Live)
	e.GET("/readyz", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Static uploads ---
	e.Static("/uploads", deps.UploadDir)

	api := e.Group("/api")

	// --- Auth ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.SignUp)
	auth.POST("/login", authHandler.SignIn)
	auth.GET("/me", authHandler.Me, authed)
	auth.POST("/refresh", authHandler.Refresh, authed)
	auth.PUT("/password", authHandler.ChangePassword, authed)

	// --- Projects ---
	projects := api.Group("/projects")
	projects.GET("", projectHandler.List, maybeAuthed)
	projects.GET("/categories", projectHandler.Categories)
	projects.GET("/:id", projectHandler.Get, maybeAuthed)
	projects.POST("", projectHandler.Create, authed, adminOnly)
	projects.PUT("/:id", projectHandler.Update, authed, adminOnly)
	projects.DELETE("/:id", projectHandler.Delete, authed, adminOnly)

	// --- Experiences ---
	experiences := api.Group("/experiences")
	experiences.GET("", experienceHandler.List, maybeAuthed)
	experiences.GET("/:id", experienceHandler.Get, maybeAuthed)
	experiences.POST("", experienceHandler.Create, authed, adminOnly)
	experiences.PUT("/:id", experienceHandler.Update, authed, adminOnly)
	experiences.DELETE("/:id", experienceHandler.Delete, authed, adminOnly)

	// --- Certifications ---
	certifications := api.Group("/certifications")
	certifications.GET("", certificationHandler.List, maybeAuthed)
	certifications.GET("/:id", certificationHandler.Get, maybeAuthed)
	certifications.POST("", certificationHandler.Create, authed, adminOnly)
	certifications.PUT("/:id", certificationHandler.Update, authed, adminOnly)
	certifications.DELETE("/:id", certificationHandler.Delete, authed, adminOnly)

	// --- Contact ---
	contact := api.Group("/contact")
	contact.POST("", contactHandler.Submit)
	contact.GET("", contactHandler.List, authed, adminOnly)
	contact.GET("/unread-count", contactHandler.UnreadCount, authed, adminOnly)
	contact.GET("/:id", contactHandler.Get, authed, adminOnly)
	contact.PUT("/:id/read", contactHandler.MarkRead, authed, adminOnly)
	contact.PUT("/:id/archive", contactHandler.SetArchived, authed, adminOnly)

	// --- Settings ---
	settings := api.Group("/settings")
	settings.GET("", settingHandler.All)
	settings.GET("/:key", settingHandler.Get)
	settings.PUT("", settingHandler.BulkUpsert, authed, adminOnly)
	settings.PUT("/:key", settingHandler.Upsert, authed, adminOnly)
	settings.DELETE("/:key", settingHandler.Delete, authed, adminOnly)

	// --- Uploads (admin panel) ---
	uploads := api.Group("/upload", authed, adminOnly)
	uploads.POST("", uploadHandler.Upload)
	uploads.POST("/multiple", uploadHandler.UploadMultiple)
	uploads.GET("", uploadHandler.List)
	uploads.DELETE("/*", uploadHandler.Delete)

	return e
}
