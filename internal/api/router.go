package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/riverstore/commerce-api/docs"
	"github.com/riverstore/commerce-api/internal/api/handler"
	"github.com/riverstore/commerce-api/internal/api/middleware"
	"github.com/riverstore/commerce-api/internal/api/views"
	"github.com/riverstore/commerce-api/internal/core/domain"
	"github.com/riverstore/commerce-api/internal/core/service"
	mongorepo "github.com/riverstore/commerce-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/riverstore/commerce-api/internal/infrastructure/db/redis"
	"github.com/riverstore/commerce-api/internal/infrastructure/queue"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the catalog event dispatcher, which the caller must
// Start before serving traffic.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Renderer = views.NewRenderer()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	productRepo := mongorepo.NewProductRepository(db)
	cartRepo := mongorepo.NewCartRepository(db)
	userRepo := mongorepo.NewUserRepository(db)
	auditRepo := mongorepo.NewCatalogAuditRepository(db)
	productCache := redisinfra.NewProductCache(rdb)

	catalogEvents := service.NewCatalogEventService(productCache, auditRepo, log)
	dispatcher := queue.NewDispatcher(0, catalogEvents, log)

	productService := service.NewProductService(productRepo, productCache, dispatcher, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)
	authService := service.NewAuthService(userRepo, cartRepo, jwtSecret, tokenTTL)

	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	authHandler := handler.NewAuthHandler(authService, tokenTTL)
	viewHandler := views.NewHandler(productService, cartService)

	requireSession := middleware.Auth(authService)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- Product routes ---
	products := e.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/:pid", productHandler.Get)
	products.POST("", productHandler.Create, requireSession, requireAdmin)
	products.PUT("/:pid", productHandler.Update, requireSession, requireAdmin)
	products.DELETE("/:pid", productHandler.Delete, requireSession, requireAdmin)

	// --- Cart routes ---
	carts := e.Group("/api/carts")
	carts.POST("", cartHandler.Create)
	carts.GET("/:cid", cartHandler.Get)
	carts.POST("/:cid/product/:pid", cartHandler.AddProduct)
	carts.PUT("/:cid", cartHandler.Replace)
	carts.PUT("/:cid/products/:pid", cartHandler.SetQuantity)
	carts.DELETE("/:cid/products/:pid", cartHandler.RemoveProduct)
	carts.DELETE("/:cid", cartHandler.Clear)

	// --- Session routes ---
	sessions := e.Group("/api/sessions")
	sessions.POST("/register", authHandler.Register)
	sessions.POST("/login", authHandler.Login)
	sessions.GET("/current", authHandler.Current, requireSession)
	sessions.POST("/logout", authHandler.Logout)

	// --- Server-rendered views ---
	e.GET("/products", viewHandler.Products)
	e.GET("/carts/:cid", viewHandler.Cart)

	// --- Health probes, metrics, API docs ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, dispatcher
}
