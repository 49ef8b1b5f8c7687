package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"turfbook/internal/handler/api"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/config"
	"turfbook/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Booking   *api.BookingHandler
	Waitlist  *api.WaitlistHandler
	Recurring *api.RecurringHandler
	Turf      *api.TurfHandler
	Loyalty   *api.LoyaltyHandler
	Review    *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, registry *prometheus.Registry, h Handlers) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, registry, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, registry *prometheus.Registry, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	apiGroup := engine.Group("/api")
	{
		turfs := apiGroup.Group("/turfs")
		{
			addRoutes(turfs, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Turf.GetAvailability},
				{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Turf.QuotePrice},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Turf.ListReviews},
				{Method: http.MethodGet, Path: "/:id/rating", Handler: h.Turf.GetRatingStats},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(middleware.RequireUser())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.ConfirmBooking},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.CompleteBooking},
			})
		}

		waitlist := apiGroup.Group("/waitlist")
		waitlist.Use(middleware.RequireUser())
		{
			addRoutes(waitlist, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Waitlist.Join},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Waitlist.CancelEntry},
			})
		}

		plans := apiGroup.Group("/recurring-plans")
		plans.Use(middleware.RequireUser())
		{
			addRoutes(plans, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Recurring.CreatePlan},
			})
		}

		loyalty := apiGroup.Group("/loyalty")
		loyalty.Use(middleware.RequireUser())
		{
			addRoutes(loyalty, []route{
				{Method: http.MethodGet, Path: "/account", Handler: h.Loyalty.GetAccount},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(middleware.RequireUser())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.CreateReview},
			})
		}
	}
}

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
