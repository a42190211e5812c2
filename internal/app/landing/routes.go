package landing

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/mentesana/landing-api/internal/http/handlers/admin/ingresos"
	"github.com/mentesana/landing-api/internal/http/handlers/admin/inscriptionlist"
	"github.com/mentesana/landing-api/internal/http/handlers/admin/inscriptionremove"
	"github.com/mentesana/landing-api/internal/http/handlers/admin/metriclist"
	"github.com/mentesana/landing-api/internal/http/handlers/admin/purchaselist"
	"github.com/mentesana/landing-api/internal/http/handlers/admin/userlist"
	"github.com/mentesana/landing-api/internal/http/handlers/admin/userremove"
	"github.com/mentesana/landing-api/internal/http/handlers/admin/userrole"
	"github.com/mentesana/landing-api/internal/http/handlers/auth/login"
	"github.com/mentesana/landing-api/internal/http/handlers/auth/me"
	"github.com/mentesana/landing-api/internal/http/handlers/auth/register"
	inscriptioncreate "github.com/mentesana/landing-api/internal/http/handlers/inscription/create"
	inscriptionhistogram "github.com/mentesana/landing-api/internal/http/handlers/inscription/histogram"
	inscriptionpubliclist "github.com/mentesana/landing-api/internal/http/handlers/inscription/list"
	metricshome "github.com/mentesana/landing-api/internal/http/handlers/metrics/home"
	"github.com/mentesana/landing-api/internal/http/middlewarectx"
	"github.com/mentesana/landing-api/internal/lib/jwt"
	authservice "github.com/mentesana/landing-api/internal/services/auth"
	inscriptionservice "github.com/mentesana/landing-api/internal/services/inscription"
	metricsservice "github.com/mentesana/landing-api/internal/services/metrics"
	userservice "github.com/mentesana/landing-api/internal/services/user"
)

// The public form gets a modest steady rate with small bursts. All
// other endpoints are unlimited.
var formLimiter = rate.NewLimiter(rate.Limit(5), 10)

// RegisterRoutes mounts every route of the landing API.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker, users middlewarectx.UserProvider,
	authService *authservice.Service, userService *userservice.Service,
	inscriptionService *inscriptionservice.Service, metricsService *metricsservice.Service,
) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		r.With(middlewarectx.RateLimitMiddleware(logger, formLimiter)).
			Post("/inscripciones", inscriptioncreate.New(logger, inscriptionService).ServeHTTP)
		r.Get("/inscripciones", inscriptionpubliclist.New(logger, inscriptionService).ServeHTTP)
		r.Get("/inscripciones/ultimos6meses", inscriptionhistogram.New(logger, metricsService).ServeHTTP)
		r.Get("/metricas/home", metricshome.New(logger, metricsService).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(jwtMaker, users, logger))
			r.Get("/me", me.New(logger).ServeHTTP)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewarectx.AdminMiddleware(logger))
				r.Get("/users", userlist.New(logger, userService).ServeHTTP)
				r.Put("/users/{id}/role", userrole.New(logger, userService).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
				r.Get("/inscripciones", inscriptionlist.New(logger, inscriptionService).ServeHTTP)
				r.Delete("/inscripciones/{id}", inscriptionremove.New(logger, inscriptionService).ServeHTTP)
				r.Get("/compras", purchaselist.New(logger, metricsService).ServeHTTP)
				r.Get("/ingresos", ingresos.New(logger, metricsService).ServeHTTP)
				r.Get("/metricas", metriclist.New(logger, metricsService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
