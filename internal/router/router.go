package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/binarychai/playlist-backend/internal/config"
	"github.com/binarychai/playlist-backend/internal/handler"
	"github.com/binarychai/playlist-backend/internal/middleware"
	"github.com/binarychai/playlist-backend/internal/response"
	"github.com/binarychai/playlist-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Playlist *handler.PlaylistHandler
	Quiz     *handler.QuizHandler
	User     *handler.UserHandler
	Admin    *handler.AdminHandler
	Upload   *handler.UploadHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// The cookie-based auth needs credentials, which gin-contrib/cors
	// refuses to combine with a literal wildcard; dev falls back to an
	// allow-everything origin func instead.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())

	// Locally hosted playlist artwork, cached aggressively (1 year).
	imagesGroup := router.Group("/images")
	imagesGroup.Use(middleware.CacheControl(31536000))
	{
		imagesGroup.Static("/", "./public/images")
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	requireAdmin := middleware.RequireAdmin(authService)

	// Login throttle: 30 attempts per IP per minute.
	loginLimiter := middleware.NewRateLimiter(rdb, "login", 30, time.Minute, log)

	api := router.Group("/api/v1")

	// ─── Playlists ─────────────────────────────────────────────────────
	playlists := api.Group("/playlists")
	{
		playlists.GET("/random", handlers.Playlist.GetRandom)
		playlists.GET("", requireAdmin, handlers.Playlist.GetAll)
		playlists.GET("/:id", requireAdmin, handlers.Playlist.Get)
		playlists.POST("", requireAdmin, handlers.Playlist.Create)
		playlists.PUT("/:id", requireAdmin, handlers.Playlist.Update)
		playlists.DELETE("/:id", requireAdmin, handlers.Playlist.Delete)
	}

	// ─── Quiz ──────────────────────────────────────────────────────────
	quiz := api.Group("/quiz")
	{
		quiz.GET("", requireAdmin, handlers.Quiz.List)
		quiz.POST("", handlers.Quiz.Create)
	}

	// ─── Users ─────────────────────────────────────────────────────────
	users := api.Group("/users")
	{
		users.GET("", requireAdmin, handlers.User.List)
		users.POST("", handlers.User.Create)
	}

	// ─── Admin auth ────────────────────────────────────────────────────
	admin := api.Group("/admin")
	{
		admin.POST("/login", loginLimiter.Middleware(), handlers.Admin.Login)
		admin.POST("/logout", requireAdmin, handlers.Admin.Logout)
		admin.GET("/me", requireAdmin, handlers.Admin.Me)
	}

	// ─── Uploads ───────────────────────────────────────────────────────
	upload := api.Group("/upload")
	{
		upload.POST("/image", requireAdmin, handlers.Upload.UploadImage)
	}

	return router
}
