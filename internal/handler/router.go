package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"acara-api/internal/domain/user"
	"acara-api/internal/handler/api"
	"acara-api/internal/handler/middleware"
	"acara-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Event    *api.EventHandler
	Ticket   *api.TicketHandler
	Order    *api.OrderHandler
	Banner   *api.BannerHandler
	Category *api.CategoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/activation", Handler: h.Auth.Activate},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.RefreshToken},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Event.ListEvents},
				{Method: http.MethodGet, Path: "/all", Handler: h.Event.ListAllEvents, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodGet, Path: "/:slug", Handler: h.Event.GetEventBySlug},
				{Method: http.MethodGet, Path: "/:slug/tickets", Handler: h.Event.ListEventTickets},
				{Method: http.MethodPost, Path: "", Handler: h.Event.CreateEvent, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodPut, Path: "/:slug", Handler: h.Event.UpdateEvent, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodDelete, Path: "/:slug", Handler: h.Event.DeleteEvent, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}

		tickets := apiGroup.Group("/tickets")
		{
			addRoutes(tickets, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Ticket.GetTicket},
				{Method: http.MethodPost, Path: "", Handler: h.Ticket.CreateTicket, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Ticket.UpdateTicket, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Ticket.DeleteTicket, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(requireAuth)
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.CreateOrder},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListOrders, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "/me", Handler: h.Order.ListMyOrders},
				{Method: http.MethodGet, Path: "/:orderNumber", Handler: h.Order.GetOrder},
				{Method: http.MethodPut, Path: "/:orderNumber/completed", Handler: h.Order.CompleteOrder},
				{Method: http.MethodPut, Path: "/:orderNumber/pending", Handler: h.Order.MarkOrderPending},
				{Method: http.MethodPut, Path: "/:orderNumber/cancelled", Handler: h.Order.CancelOrder},
				{Method: http.MethodDelete, Path: "/:orderNumber", Handler: h.Order.DeleteOrder, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		banners := apiGroup.Group("/banners")
		{
			addRoutes(banners, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Banner.ListVisibleBanners},
				{Method: http.MethodGet, Path: "/all", Handler: h.Banner.ListAllBanners, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Banner.GetBanner, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodPost, Path: "", Handler: h.Banner.CreateBanner, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Banner.UpdateBanner, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Banner.DeleteBanner, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
			})
		}

		categories := apiGroup.Group("/categories")
		{
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Category.ListCategories},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Category.GetCategory},
				{Method: http.MethodPost, Path: "", Handler: h.Category.CreateCategory, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Category.UpdateCategory, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Category.DeleteCategory, Mw: []gin.HandlerFunc{requireAuth, requireAdmin}},
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
