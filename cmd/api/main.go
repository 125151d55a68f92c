package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tugasgi/attendance-backend-go/internal/config"
	appHTTP "github.com/tugasgi/attendance-backend-go/internal/handler/http"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/cron"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/database"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/geo"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/geocode"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/jwt"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/storage"
	"github.com/tugasgi/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tugasgi/attendance-backend-go/internal/service/attendance"
	authService "github.com/tugasgi/attendance-backend-go/internal/service/auth"
	departmentService "github.com/tugasgi/attendance-backend-go/internal/service/department"
	fieldVisitService "github.com/tugasgi/attendance-backend-go/internal/service/fieldvisit"
	"github.com/tugasgi/attendance-backend-go/internal/service/file"
	userService "github.com/tugasgi/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	fieldVisitRepo := postgresql.NewFieldVisitRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	var geocoder geocode.Geocoder = geocode.Noop{}
	if cfg.Geocode.APIKey != "" {
		geocoder = geocode.NewLocationIQClient(cfg.Geocode.BaseURL, cfg.Geocode.APIKey)
	}

	geofence := geo.NewEvaluator(cfg.Office.Latitude, cfg.Office.Longitude, cfg.Office.MaxDistanceMeters)

	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, fileSvc, geofence)
	fieldVisitSvc := fieldVisitService.NewFieldVisitService(fieldVisitRepo, userRepo, fileSvc, geocoder)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	fieldVisitHandler := appHTTP.NewFieldVisitHandler(fieldVisitSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Environment:    cfg.App.Env,
			FilesDir:       cfg.Storage.BasePath,
		},
		jwtService,
		authHandler,
		attendanceHandler,
		userHandler,
		departmentHandler,
		fieldVisitHandler,
	)

	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("log-open-days", time.Hour, attendanceJobs.LogOpenDays)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
