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

	"github.com/tugasgi/attendance-backend-go/internal/handler/http/middleware"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AllowedOrigins []string
	Environment    string

	// FilesDir is the local directory compressed photos are written to; it is
	// served read-only under /images.
	FilesDir string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	userHandler UserHandler,
	departmentHandler DepartmentHandler,
	fieldVisitHandler FieldVisitHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
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

	r.Use(chiMiddleware.AllowContentEncoding("application/json", "multipart/form-data"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Compressed attendance and field visit photos.
	r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.FilesDir))))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/field-check-in", attendanceHandler.FieldCheckIn)
				r.Post("/field-check-out", attendanceHandler.FieldCheckOut)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Post("/leave", attendanceHandler.SubmitLeave)
				r.Post("/early-leave", attendanceHandler.SubmitEarlyLeave)

				r.Get("/user/{userID}", attendanceHandler.GetUserDay)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.ListReports)
				})
			})

			r.Route("/field-visits", func(r chi.Router) {
				r.Post("/", fieldVisitHandler.CreateFieldVisit)
				r.Get("/", fieldVisitHandler.ListFieldVisits)
				r.Get("/{visitID}", fieldVisitHandler.GetFieldVisit)
			})

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.ListUsers)
				r.Post("/", userHandler.CreateUser)
				r.Get("/{userID}", userHandler.GetUser)
				r.Put("/{userID}", userHandler.UpdateUser)
				r.Delete("/{userID}", userHandler.DeleteUser)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.ListDepartments)
				r.Get("/{departmentID}", departmentHandler.GetDepartment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", departmentHandler.CreateDepartment)
					r.Put("/{departmentID}", departmentHandler.UpdateDepartment)
					r.Delete("/{departmentID}", departmentHandler.DeleteDepartment)
				})
			})
		})
	})
	return r
}
