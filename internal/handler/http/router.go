package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/handler/http/middleware"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Shift     ShiftHandler
	Holiday   HolidayHandler
	PayConfig PayConfigHandler
	Workday   WorkdayHandler
	Payroll   PayrollHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "recargos-nocturnos"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{employeeID}", h.Employee.Get)
				r.Get("/{employeeID}/workdays", h.Workday.ListByEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{employeeID}", h.Employee.Update)
					r.Delete("/{employeeID}", h.Employee.Deactivate)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/{code}", h.Shift.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Shift.Upsert)
					r.Delete("/{code}", h.Shift.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.ListYear)
				r.Get("/check", h.Holiday.Check)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.Register)
					r.Delete("/", h.Holiday.Remove)
					r.Post("/warm", h.Holiday.WarmYear)
				})
			})

			// Admin only
			r.Route("/config", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.PayConfig.Get)
				r.Put("/", h.PayConfig.Update)
			})

			r.Route("/workdays", func(r chi.Router) {
				r.Get("/{id}", h.Workday.Get)

				// Admin or lider
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePayrollAccess)
					r.Post("/", h.Workday.Compute)
					r.Post("/bulk", h.Workday.ComputeBulk)
					r.Post("/{id}/close", h.Workday.Close)
				})
			})

			// Admin or lider
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequirePayrollAccess)
				r.Get("/summary", h.Payroll.Summary)
			})
		})
	})
	return r
}
