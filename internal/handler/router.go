package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bagtrack/internal/handler/api"
	"bagtrack/internal/handler/middleware"
	"bagtrack/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bagHandler *api.BagHandler,
	locationHandler *api.LocationHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bagHandler, locationHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bagHandler *api.BagHandler,
	locationHandler *api.LocationHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/otp/send", Handler: authHandler.SendCode},
				{Method: http.MethodPost, Path: "/otp/verify", Handler: authHandler.VerifyCode},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		authed := v1.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/locations", Handler: locationHandler.ListLocations},
				{Method: http.MethodGet, Path: "/locations/qr/:token", Handler: locationHandler.ResolveByQR},
				{Method: http.MethodGet, Path: "/locations/:id", Handler: locationHandler.GetLocation},
				{Method: http.MethodGet, Path: "/services", Handler: locationHandler.ListServices},

				{Method: http.MethodPost, Path: "/bags", Handler: bagHandler.CreateBag},
				{Method: http.MethodGet, Path: "/bags", Handler: bagHandler.ListBags},
				{Method: http.MethodGet, Path: "/bags/tag/:tag", Handler: bagHandler.GetBagByTag},
				{Method: http.MethodGet, Path: "/bags/:id", Handler: bagHandler.GetBag},
				{Method: http.MethodPatch, Path: "/bags/:id/locations", Handler: bagHandler.UpdateLocations},
			})
		}

		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bags", Handler: adminHandler.ListAllBags},
				{Method: http.MethodPatch, Path: "/bags/:id/status", Handler: adminHandler.UpdateBagStatus},
				{Method: http.MethodPost, Path: "/bags/batch/status", Handler: adminHandler.BatchUpdateStatus},
				{Method: http.MethodPost, Path: "/locations", Handler: adminHandler.CreateLocation},
				{Method: http.MethodDelete, Path: "/locations/:id", Handler: adminHandler.DeactivateLocation},
				{Method: http.MethodPost, Path: "/services", Handler: adminHandler.CreateServiceItem},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
