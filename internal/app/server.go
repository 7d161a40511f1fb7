package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/handlers"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/invoice"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/metrics"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/service"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/store"
)

func NewServer(cfg Config) (*gin.Engine, func(), error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, nil, err
	}

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	checkoutMetrics := metrics.NewCheckout(prometheus.DefaultRegisterer)
	r, err := newRouter(db, cfg, checkoutMetrics)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if s, err := db.DB(); err == nil {
			_ = s.Close()
		}
	}
	return r, cleanup, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	)
}

func newRouter(db *gorm.DB, cfg Config, checkoutMetrics *metrics.Checkout) (*gin.Engine, error) {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	stores := store.New(db)
	docs, err := invoice.NewStore(cfg.InvoiceDir)
	if err != nil {
		return nil, err
	}
	renderer := invoice.NewRenderer()

	emailSvc := service.NewEmailService()
	auth := service.NewAuthService(stores, cfg.JWTSecret)
	catalog := service.NewCatalogService(stores)
	cart := service.NewCartService(stores)
	checkout := service.NewCheckoutService(stores, renderer, docs, emailSvc, checkoutMetrics)
	orders := service.NewOrderService(stores, renderer, docs)

	authH := handlers.NewAuth(auth)
	productsH := handlers.NewProducts(catalog)
	cartH := handlers.NewCart(cart)
	ordersH := handlers.NewOrders(checkout, orders)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.POST("/api/auth/signup", authH.Signup)
	r.POST("/api/auth/login", authH.Login)

	r.GET("/api/products", productsH.List)
	r.GET("/api/products/:id", productsH.Get)

	// userID goes into the request context; the services receive the
	// verified identity explicitly
	authMW := func(c *gin.Context) {
		var tok string
		if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
			tok = strings.TrimPrefix(ah, "Bearer ")
		}
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		uid, err := auth.ParseToken(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}
		c.Set("userID", uid)
		c.Next()
	}

	r.POST("/api/products", authMW, productsH.Create)
	r.PUT("/api/products/:id", authMW, productsH.Update)
	r.DELETE("/api/products/:id", authMW, productsH.Delete)

	r.POST("/api/cart/add", authMW, cartH.Add)
	r.GET("/api/cart", authMW, cartH.List)
	r.PUT("/api/cart/:id", authMW, cartH.SetQuantity)
	r.DELETE("/api/cart/:id", authMW, cartH.Remove)
	r.DELETE("/api/cart", authMW, cartH.Clear)

	r.POST("/api/checkout", authMW, ordersH.PlaceOrder)
	r.GET("/api/orders", authMW, ordersH.List)
	r.GET("/api/orders/items", authMW, ordersH.ItemHistory)
	r.GET("/api/orders/:id", authMW, ordersH.Get)
	r.GET("/api/orders/:id/invoice", authMW, ordersH.Invoice)

	return r, nil
}
