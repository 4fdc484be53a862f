package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/casaluna/hotel-pms/internal/api/handler"
	"github.com/casaluna/hotel-pms/internal/api/middleware"
	"github.com/casaluna/hotel-pms/internal/core/access"
	"github.com/casaluna/hotel-pms/internal/core/service"
	"github.com/casaluna/hotel-pms/internal/core/session"
)

// Services are the application services the routes are served by.
type Services struct {
	Auth         *service.AuthService
	Roles        *service.RoleResolver
	Sessions     *session.Manager
	Staff        *service.StaffService
	Rooms        *service.RoomService
	Reservations *service.ReservationService
	Stock        *service.StockService
	Expenses     *service.ExpenseService
	HotelConfig  *service.HotelConfigService
	Pricing      *service.PricingService
	Dashboard    *service.DashboardService
}

// Options tune the router.
type Options struct {
	// Cache keeps the last good GET responses; nil disables the stale cache.
	Cache middleware.ResponseStore
	// Readiness lists the dependency pings behind /health/ready.
	Readiness map[string]handler.Checker
	// Heartbeat is the keep-alive interval of event streams.
	Heartbeat time.Duration
}

// recordHandler is served by every table screen.
type recordHandler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Stream(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddleware("hotel_pms"))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)                         // liveness  – is the process alive?
	e.GET("/health/ready", handler.NewReadinessHandler(opts.Readiness).Readiness) // readiness – are dependencies up?

	requireSession := middleware.Session(svc.Auth, svc.Sessions)
	gate := func(route access.Route) echo.MiddlewareFunc {
		return middleware.Gate(route, svc.Roles, svc.Auth, log)
	}
	watch := func(route access.Route) echo.MiddlewareFunc {
		return middleware.LiveAccess(route, svc.Roles, svc.Sessions, svc.Auth, log)
	}
	cached := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if opts.Cache != nil {
		cached = middleware.StaleCache(opts.Cache, log)
	}

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Auth, svc.Roles)
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)
	e.POST("/auth/signout", authHandler.SignOut, requireSession)
	e.GET("/auth/me", authHandler.Me, requireSession)

	// Activity reports decide themselves what rearms the idle timer.
	sessionHandler := handler.NewSessionHandler(svc.Sessions)
	sess := e.Group("/session", middleware.Session(svc.Auth, nil))
	sess.POST("/activity", sessionHandler.Activity)
	sess.POST("/visibility", sessionHandler.Visibility)

	// --- Protected screens ---
	v1 := e.Group("/v1", requireSession)

	dashboard := handler.NewDashboardHandler(svc.Dashboard)
	v1.GET("/dashboard", dashboard.Summary, gate(access.RouteDashboard), cached)

	profile := v1.Group("/profile", gate(access.RouteProfile))
	profile.GET("", authHandler.Me)
	profile.PUT("", authHandler.UpdateProfile)
	profile.PUT("/password", authHandler.UpdatePassword)

	registerRecords(v1.Group("/reservations", gate(access.RouteReservations)),
		handler.NewReservationHandler(svc.Reservations, opts.Heartbeat, log), cached, watch(access.RouteReservations))
	registerRecords(v1.Group("/rooms", gate(access.RouteRooms)),
		handler.NewRoomHandler(svc.Rooms, opts.Heartbeat, log), cached, watch(access.RouteRooms))

	stock := handler.NewStockHandler(svc.Stock, opts.Heartbeat, log)
	stockGroup := v1.Group("/stock", gate(access.RouteStock))
	stockGroup.GET("/export", stock.Export)
	registerRecords(stockGroup, stock, cached, watch(access.RouteStock))

	expenses := handler.NewExpenseHandler(svc.Expenses, opts.Heartbeat, log)
	expenseGroup := v1.Group("/expenses", gate(access.RouteExpenses))
	expenseGroup.GET("/export", expenses.Export)
	registerRecords(expenseGroup, expenses, cached, watch(access.RouteExpenses))

	registerRecords(v1.Group("/staff", gate(access.RouteStaff)),
		handler.NewStaffHandler(svc.Staff, opts.Heartbeat, log), cached, watch(access.RouteStaff))

	pricing := handler.NewPricingHandler(svc.Pricing)
	v1.POST("/pricing/suggestions", pricing.Suggest, gate(access.RoutePricing))

	hotelConfig := handler.NewHotelConfigHandler(svc.HotelConfig)
	hotel := v1.Group("/hotel-configuration", gate(access.RouteHotelConfig))
	hotel.GET("", hotelConfig.Get, cached)
	hotel.PUT("", hotelConfig.Save)

	return e
}

// registerRecords mounts the table screen endpoints. Event streams bypass
// the response cache and stay under the gate while they run.
func registerRecords(g *echo.Group, h recordHandler, cached, watch echo.MiddlewareFunc) {
	g.GET("", h.List, cached)
	g.GET("/stream", h.Stream, watch)
	g.GET("/:id", h.Get, cached)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("path", v.URIPath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
