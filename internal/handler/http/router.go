package http

import (
	"log/slog"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	JWTService jwt.Service,
	authHandler AuthHandler,
	profileHandler ProfileHandler,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	wageHandler WageHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition", "X-Export-URL"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.Scope)

			r.Route("/profile", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionViewOwnProfile)).Get("/", profileHandler.GetProfile)
				r.With(middleware.RequirePermission(user.PermissionEditOwnProfile)).Put("/", profileHandler.UpdateProfile)
			})

			r.Get("/dashboard", dashboardHandler.GetDashboard)

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/", employeeHandler.ListEmployees)
				r.With(middleware.RequirePermission(user.PermissionEmployeeCreate)).Post("/", employeeHandler.CreateEmployee)
				r.With(middleware.RequirePermission(user.PermissionEmployeeView)).Get("/{id}", employeeHandler.GetEmployee)
				r.With(middleware.RequirePermission(user.PermissionEmployeeDelete)).Delete("/{id}", employeeHandler.DeleteEmployee)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/", attendanceHandler.ListAttendance)
				r.With(middleware.RequirePermission(user.PermissionAttendanceMark)).Post("/", attendanceHandler.MarkAttendance)
				r.With(middleware.RequirePermission(user.PermissionAttendanceDelete)).Delete("/{id}", attendanceHandler.DeleteAttendance)
			})

			r.Route("/wages", func(r chi.Router) {
				r.Route("/advances", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionWageView)).Get("/", wageHandler.ListAdvances)
					r.With(middleware.RequirePermission(user.PermissionWageRecordAdvance)).Post("/", wageHandler.RecordAdvance)
					r.With(middleware.RequirePermission(user.PermissionWageDeleteAdvance)).Delete("/{id}", wageHandler.DeleteAdvance)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionWageView))
					r.Get("/calculate", wageHandler.CalculateWages)
					r.Get("/employees/{id}", wageHandler.GetEmployeeWage)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionReportsView)).Get("/attendance", reportHandler.GetAttendanceReport)
				r.With(middleware.RequirePermission(user.PermissionReportsExport)).Get("/attendance/export", reportHandler.ExportAttendanceReport)
				r.With(middleware.RequirePermission(user.PermissionReportsView)).Get("/sites", reportHandler.ListSites)
			})

			r.With(middleware.RequirePermission(user.PermissionReportsExport)).Get("/files/*", reportHandler.DownloadExport)
		})
	})
	return r
}
