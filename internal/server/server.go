package server

import (
	"context"
	"net/http"

	"github.com/Ved-B18/ground-finder-pro/internal/auth"
	"github.com/Ved-B18/ground-finder-pro/internal/booking"
	"github.com/Ved-B18/ground-finder-pro/internal/config"
	"github.com/Ved-B18/ground-finder-pro/internal/email"
	"github.com/Ved-B18/ground-finder-pro/internal/payment"
	"github.com/Ved-B18/ground-finder-pro/internal/storage"
	"github.com/Ved-B18/ground-finder-pro/internal/user"
	"github.com/Ved-B18/ground-finder-pro/internal/venue"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, rdb *redis.Client, cfg *config.Config, emailService *email.Service, storageService *storage.Service, paymentProvider payment.Provider) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	userRepo := user.NewRepository(db)
	venueRepo := venue.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	paymentRepo := payment.NewRepository(db)

	venueCache := venue.NewCache(rdb)

	venueService := venue.NewService(venueRepo, venueCache)
	bookingService := booking.NewService(bookingRepo, venueRepo)
	paymentService := payment.NewService(
		paymentRepo, bookingRepo, userRepo, paymentProvider, emailService,
		cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL,
	)

	userHandler := user.NewHandlerWithRepo(userRepo, cfg.JWTSecret)
	venueHandler := venue.NewHandler(venueService)
	bookingHandler := booking.NewHandler(bookingService)
	paymentHandler := payment.NewHandler(paymentService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	// Anyone can browse published venues.
	router.GET("/venues", venueHandler.Browse)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/me/profile", userHandler.GetProfile)
		protected.PATCH("/me/profile", userHandler.UpdateProfile)

		protected.GET("/venues/:venueID", venueHandler.Get)

		protected.POST("/bookings", bookingHandler.Create)
		protected.GET("/bookings", bookingHandler.ListMine)
		protected.GET("/bookings/:bookingID", bookingHandler.Get)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.Cancel)

		protected.POST("/checkout", RateLimitMiddleware(1, 5), paymentHandler.CreateCheckout)
		protected.GET("/payment-success", paymentHandler.PaymentSuccess)
	}

	if storageService != nil {
		uploadHandler := storage.NewHandler(storageService)
		uploads := router.Group("/uploads")
		uploads.Use(authMiddleware)
		{
			uploads.POST("/avatar", uploadHandler.UploadAvatar)
			uploads.POST("/venue-image", auth.RequireRole(auth.RoleHost), uploadHandler.UploadVenueImage)
		}
	}

	hostMiddleware := auth.RequireRole(auth.RoleHost)
	host := router.Group("/host")
	host.Use(authMiddleware, hostMiddleware)
	{
		host.GET("/venues", venueHandler.ListMine)
		host.POST("/venues/draft", venueHandler.SaveDraft)
		host.POST("/venues/publish", venueHandler.Publish)
		host.GET("/venues/:venueID/bookings", bookingHandler.ListByVenue)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
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

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
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
