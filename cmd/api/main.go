package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/config"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/wage"
	appHTTP "github.com/cmlabs-hris/sitecrew-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/sqlite"
	attendanceService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/employee"
	profileService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/profile"
	reportService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/report"
	wageService "github.com/cmlabs-hris/sitecrew-backend-go/internal/service/wage"
	"github.com/go-chi/httplog/v3"
)

type repositories struct {
	transactor     database.Transactor
	profileRepo    user.ProfileRepository
	tokenRepo      auth.TokenRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	paymentRepo    wage.PaymentRepository
	close          func()
}

// openRepositories connects to the configured store and brings its schema up to date.
func openRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return repositories{}, fmt.Errorf("connect to postgres: %w", err)
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return repositories{}, fmt.Errorf("migrate postgres: %w", err)
		}
		return repositories{
			transactor:     postgresql.NewTransactor(db),
			profileRepo:    postgresql.NewProfileRepository(db),
			tokenRepo:      postgresql.NewJWTRepository(db),
			employeeRepo:   postgresql.NewEmployeeRepository(db),
			attendanceRepo: postgresql.NewAttendanceRepository(db),
			paymentRepo:    postgresql.NewWagePaymentRepository(db),
			close:          db.Close,
		}, nil
	case "sqlite":
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			return repositories{}, fmt.Errorf("open sqlite: %w", err)
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			db.Close()
			return repositories{}, fmt.Errorf("migrate sqlite: %w", err)
		}
		return repositories{
			transactor:     sqlite.NewTransactor(db),
			profileRepo:    sqlite.NewProfileRepository(db),
			tokenRepo:      sqlite.NewTokenRepository(db),
			employeeRepo:   sqlite.NewEmployeeRepository(db),
			attendanceRepo: sqlite.NewAttendanceRepository(db),
			paymentRepo:    sqlite.NewWagePaymentRepository(db),
			close:          func() { _ = db.Close() },
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.Database.Driver)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitecrew"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer repos.close()

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage types: ", cfg.Storage.Type)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authService := serviceAuth.NewAuthService(repos.transactor, repos.profileRepo, JWTService, repos.tokenRepo)
	profileSvc := profileService.NewProfileService(repos.profileRepo)
	dashboardSvc := dashboardService.NewDashboardService(repos.employeeRepo, repos.attendanceRepo)
	employeeSvc := employeeService.NewEmployeeService(repos.employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendanceRepo, repos.employeeRepo, repos.profileRepo)
	wageSvc := wageService.NewWageService(
		repos.paymentRepo,
		repos.employeeRepo,
		repos.attendanceRepo,
		repos.profileRepo,
		wage.AdvanceScoping(cfg.Wage.AdvanceScoping),
	)
	reportSvc := reportService.NewReportService(repos.attendanceRepo, repos.employeeRepo, fileStorage)

	router := appHTTP.NewRouter(
		logger,
		cfg.App.AllowedOrigins,
		JWTService,
		appHTTP.NewAuthHandler(JWTService, authService),
		appHTTP.NewProfileHandler(profileSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewWageHandler(wageSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	// Interval 0 disables housekeeping
	if cfg.Jobs.TokenPurgeInterval > 0 {
		scheduler := cron.NewScheduler()
		cron.NewTokenJobs(repos.tokenRepo).RegisterJobs(scheduler, cfg.Jobs.TokenPurgeInterval)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", httpServer.Addr, "driver", cfg.Database.Driver)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		slog.Info("Server stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
		}
	}
}
