package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/httpx"
)

// Handler — HTTP-обработчики витрины.
type Handler struct {
	cart       ports.CartService
	catalog    ports.CatalogService
	newsletter ports.NewsletterService
	log        ports.Logger
	timeout    time.Duration
}

// NewHandler — handlerTimeout <= 0 отключает таймаут на обработку.
func NewHandler(
	cart ports.CartService,
	catalog ports.CatalogService,
	newsletter ports.NewsletterService,
	log ports.Logger,
	handlerTimeout time.Duration,
) *Handler {
	return &Handler{
		cart:       cart,
		catalog:    catalog,
		newsletter: newsletter,
		log:        log,
		timeout:    handlerTimeout,
	}
}

// RouterOptions — параметры сборки роутера.
type RouterOptions struct {
	StaticDir    string
	GinMode      string
	AllowOrigins []string
	SecureCookie bool
	// TracingService — имя сервиса для otelgin; пусто — трассировка выключена.
	TracingService string
}

func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if opts.TracingService != "" {
		r.Use(otelgin.Middleware(opts.TracingService))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	if len(opts.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", httpx.HeaderRequestID},
			ExposeHeaders:    []string{httpx.HeaderRequestID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// каталог не требует сессии
	r.GET("/pcs", h.listProducts)
	r.GET("/pc/:slug", h.productDetail)
	r.GET("/api/featured", h.featured)
	r.GET("/api/search", h.search)
	r.GET("/api/categories", h.categories)
	r.POST("/api/newsletter", h.subscribe)

	session := r.Group("/", httpx.SessionMiddleware(opts.SecureCookie))
	session.POST("/add-to-cart", h.addToCart)
	session.POST("/remove-from-cart", h.removeFromCart)
	session.GET("/cart", h.viewCart)
	session.GET("/api/cart-count", h.cartCount)
	session.GET("/checkout", h.checkout)

	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
		r.StaticFile("/", filepath.Join(opts.StaticDir, "index.html"))
	}

	return r
}

// reqContext — контекст запроса с таймаутом обработчика.
func (h *Handler) reqContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
