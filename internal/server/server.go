package server

import (
	"context"
	"net/http"

	"github.com/SUDHEER176/Bookit/internal/api"
	"github.com/SUDHEER176/Bookit/internal/booking"
	"github.com/SUDHEER176/Bookit/internal/config"
	"github.com/SUDHEER176/Bookit/internal/experience"
	"github.com/SUDHEER176/Bookit/internal/promo"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

// availableRoutes is the directory returned on unmatched paths. Every
// entry is also served under the /api prefix.
var availableRoutes = []string{
	"GET /health",
	"GET /experiences",
	"GET /experiences/:id",
	"POST /experiences",
	"PUT /experiences/:id",
	"DELETE /experiences/:id",
	"POST /bookings",
	"GET /bookings/:id",
	"GET /bookings/user/:userId",
	"PATCH /bookings/:id/status",
	"POST /promo/validate",
}

func New(db *sqlx.DB, cfg *config.Config, notifier booking.Notifier) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	experienceRepo := experience.NewRepository(db)
	experienceHandler := experience.NewHandler(
		experience.NewService(experienceRepo, experience.DefaultSchedule()),
	)
	bookingHandler := booking.NewHandler(
		booking.NewService(booking.NewRepository(db), experienceRepo, notifier),
	)
	promoHandler := promo.NewHandler(promo.DefaultTable())

	// The same handlers serve the bare paths and the /api prefix.
	register := func(g *gin.RouterGroup) {
		g.GET("/experiences", experienceHandler.List)
		g.GET("/experiences/:id", experienceHandler.Get)
		g.POST("/experiences", experienceHandler.Create)
		g.PUT("/experiences/:id", experienceHandler.Update)
		g.DELETE("/experiences/:id", experienceHandler.Delete)

		g.POST("/bookings", bookingHandler.Create)
		g.GET("/bookings/:id", bookingHandler.Get)
		g.GET("/bookings/user/:userId", bookingHandler.ListByUser)
		g.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

		g.POST("/promo/validate", promoHandler.Validate)
	}
	register(router.Group("/"))
	register(router.Group("/api"))

	router.GET("/health", Health)
	router.GET("/api/health", Health)
	router.GET("/metrics", Metrics())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.RouteNotFound{
			Status:          "error",
			Message:         "Route not found: " + c.Request.Method + " " + c.Request.URL.Path,
			AvailableRoutes: availableRoutes,
		})
	})

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
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
