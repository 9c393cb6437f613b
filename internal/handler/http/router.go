package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/acctfirm/backoffice-go/internal/handler/http/middleware"
	"github.com/acctfirm/backoffice-go/internal/pkg/jwt"
)

func NewRouter(
	env string,
	JWTService jwt.Service,
	payrollHandler PayrollHandler,
	snapshotHandler SnapshotHandler,
	settingsHandler SettingsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "backoffice-payroll"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/settings", settingsHandler.GetEffective)

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/{employeeID}/{month}", payrollHandler.CalculateEmployee)
			})

			r.Route("/snapshots/{month}", func(r chi.Router) {
				r.Get("/", snapshotHandler.List)
				r.Get("/latest", snapshotHandler.GetLatest)
				r.Get("/{version}", snapshotHandler.GetVersion)
				r.Post("/preview", snapshotHandler.Preview)
				r.Post("/finalize", snapshotHandler.Finalize)
			})
		})
	})

	return r
}
