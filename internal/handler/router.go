package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fieldbook/internal/domain/admin"
	"fieldbook/internal/handler/api"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Admin       *api.AdminHandler
	Reservation *api.ReservationHandler
	Resource    *api.ResourceHandler
	Customer    *api.CustomerHandler
	Income      *api.IncomeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPut, Path: "/password", Handler: h.Auth.ChangePassword},
			})
		}

		// Day-to-day booking operations are open to every authenticated admin
		manager := apiGroup.Group("")
		manager.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(admin.RoleManager))
		{
			addRoutes(manager, []route{
				{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListReservations},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.CancelReservation},

				{Method: http.MethodGet, Path: "/resources", Handler: h.Resource.ListResources},
				{Method: http.MethodGet, Path: "/resources/:id", Handler: h.Resource.GetResource},

				{Method: http.MethodPost, Path: "/customers", Handler: h.Customer.CreateCustomer},
				{Method: http.MethodGet, Path: "/customers", Handler: h.Customer.ListCustomers},
				{Method: http.MethodGet, Path: "/customers/:id", Handler: h.Customer.GetCustomer},

				{Method: http.MethodGet, Path: "/income", Handler: h.Income.GetReport},
				{Method: http.MethodGet, Path: "/income/popular", Handler: h.Income.GetPopularResources},
				{Method: http.MethodGet, Path: "/income/audit", Handler: h.Income.GetAuditTotal},
			})
		}

		// Catalog mutation and account management require superadmin
		superadmin := apiGroup.Group("")
		superadmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(admin.RoleSuperadmin))
		{
			addRoutes(superadmin, []route{
				{Method: http.MethodPost, Path: "/resources", Handler: h.Resource.CreateResource},
				{Method: http.MethodPut, Path: "/resources/:id/price", Handler: h.Resource.UpdatePrice},
				{Method: http.MethodPut, Path: "/resources/:id/status", Handler: h.Resource.UpdateStatus},
				{Method: http.MethodDelete, Path: "/resources/:id", Handler: h.Resource.DeleteResource},

				{Method: http.MethodPost, Path: "/admins", Handler: h.Admin.CreateAdmin},
				{Method: http.MethodGet, Path: "/admins", Handler: h.Admin.ListAdmins},
				{Method: http.MethodPut, Path: "/admins/:id/active", Handler: h.Admin.SetActive},
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
