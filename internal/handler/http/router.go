package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
	"github.com/sailshr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/sailshr/hrms-backend-go/internal/handler/http/response"
	"github.com/sailshr/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	masterHandler MasterHandler,
	dashboardHandler DashboardHandler,
	corsOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sailshr-hrms"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
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

	health := func(w http.ResponseWriter, _ *http.Request) {
		response.OK(w, map[string]string{"status": "ok"})
	}
	r.Get("/health", health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health)
		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)
			r.Get("/overview", masterHandler.Overview)

			r.With(middleware.RequireRole(user.RoleHR, user.RoleAdmin)).
				Get("/departments", masterHandler.Departments)

			r.Route("/employees", func(r chi.Router) {
				// Managers read, HR/admin write, delete is admin only.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleHR, user.RoleAdmin, user.RoleManager))
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleHR, user.RoleAdmin))
					r.Post("/", employeeHandler.Create)
					r.Patch("/{id}", employeeHandler.Update)
				})
				r.With(middleware.RequireRole(user.RoleAdmin)).
					Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", attendanceHandler.PunchIn)
				r.Post("/punch-out", attendanceHandler.PunchOut)
				r.Get("/me", attendanceHandler.Me)
				r.Get("/today", attendanceHandler.Today)
				r.With(middleware.RequireRole(user.RoleManager, user.RoleHR, user.RoleAdmin)).
					Get("/team", attendanceHandler.Team)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequireRole(user.RoleHR, user.RoleAdmin)).
					Get("/", leaveHandler.List)
				r.Get("/me", leaveHandler.Mine)
				r.Post("/apply", leaveHandler.Apply)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleManager, user.RoleHR, user.RoleAdmin))
					r.Get("/pending-approvals", leaveHandler.PendingApprovals)
					r.Post("/{id}/decision", leaveHandler.Decide)
				})
			})

			r.Get("/leave-balances", leaveHandler.Balances)

			r.With(middleware.RequireRole(user.RoleHR, user.RoleAdmin)).
				Get("/dashboard/hr", dashboardHandler.HR)
		})
	})

	return r
}
