package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/middleware"
	"server/web"
)

func NewRouter(app *handlers.App) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Log),
		middleware.Locale(app.Cfg.DefaultLocale),
	)
	if len(app.Cfg.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(app.Cfg.AllowedOrigins))
	}
	if app.Cfg.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(app.Cfg.RateLimitPerMin, time.Minute))
	}

	// The single-page UI
	r.Get("/", web.Index)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/image", app.Upload)
		r.Post("/settings", app.Settings)
		r.Post("/enhance", app.Enhance)
		r.Post("/reset", app.Reset)
		r.Get("/state", app.State)
		r.Get("/result/download", app.Download)
	})

	return r
}
