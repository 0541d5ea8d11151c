package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"siteforms/internal/handler/api"
	"siteforms/internal/handler/middleware"
	"siteforms/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, sessionHandler *api.SessionHandler, checkoutHandler *api.CheckoutHandler, submissionHandler *api.SubmissionHandler, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, sessionMiddleware)
	setupRoutes(engine, sessionHandler, checkoutHandler, submissionHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, sessionMiddleware *middleware.SessionMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	// Session before logging so request logs carry the session id
	engine.Use(sessionMiddleware.EnsureSession())
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, sessionHandler *api.SessionHandler, checkoutHandler *api.CheckoutHandler, submissionHandler *api.SubmissionHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/session", Handler: sessionHandler.Get},
			{Method: http.MethodPost, Path: "/contact", Handler: submissionHandler.Contact},
			{Method: http.MethodPost, Path: "/newsletter", Handler: submissionHandler.Newsletter},
		})

		checkoutGroup := apiGroup.Group("/checkout")
		{
			addRoutes(checkoutGroup, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: checkoutHandler.Summary},
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Begin},
				{Method: http.MethodGet, Path: "/return", Handler: checkoutHandler.Return},
				{Method: http.MethodGet, Path: "/receipt/:ref", Handler: checkoutHandler.Receipt},
				{Method: http.MethodPost, Path: "/retry", Handler: checkoutHandler.Retry},
				{Method: http.MethodGet, Path: "/progress", Handler: checkoutHandler.Progress},
				{Method: http.MethodPost, Path: "/progress", Handler: checkoutHandler.AdvanceProgress},
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
