package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(employeeHandler EmployeeHandler, punchHandler PunchHandler, reportHandler ReportHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fichadas-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/compliance", employeeHandler.Compliance)
			r.Get("/daily-status", employeeHandler.DailyStatus)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Deactivate)
		})

		r.Route("/punches", func(r chi.Router) {
			r.Get("/", punchHandler.List)
			r.Post("/", punchHandler.Punch)
			r.Get("/status/{employeeID}", punchHandler.Status)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily", reportHandler.Daily)
			r.Get("/weekly", reportHandler.Weekly)
			r.Get("/range", reportHandler.Range)
			r.Get("/range/export", reportHandler.Export)
			r.Post("/email/daily", reportHandler.EmailDaily)
			r.Post("/email/weekly", reportHandler.EmailWeekly)
		})
	})

	return r
}
