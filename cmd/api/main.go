package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/medcore/hospital-api/config"
	adminHandler "github.com/medcore/hospital-api/internal/handler/admin"
	appointmentHandler "github.com/medcore/hospital-api/internal/handler/appointment"
	authHandler "github.com/medcore/hospital-api/internal/handler/auth"
	doctorHandler "github.com/medcore/hospital-api/internal/handler/doctor"
	healthHandler "github.com/medcore/hospital-api/internal/handler/health"
	"github.com/medcore/hospital-api/internal/middleware"
	"github.com/medcore/hospital-api/internal/repository/postgres"
	"github.com/medcore/hospital-api/internal/router"
	adminService "github.com/medcore/hospital-api/internal/service/admin"
	appointmentService "github.com/medcore/hospital-api/internal/service/appointment"
	authService "github.com/medcore/hospital-api/internal/service/auth"
	doctorService "github.com/medcore/hospital-api/internal/service/doctor"
	"github.com/medcore/hospital-api/pkg/auth"
	"github.com/medcore/hospital-api/pkg/security"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	prescriptionRepo := postgres.NewPrescriptionRepository(db)

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret)
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	authSvc := authService.NewService(userRepo, jwtSvc, hasher)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo, appointmentRepo, prescriptionRepo)
	adminSvc := adminService.NewService(userRepo, doctorRepo, patientRepo, appointmentRepo, hasher, doctorSvc)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	}

	r := router.New(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		doctorHandler.NewHandler(doctorSvc),
		adminHandler.NewHandler(adminSvc),
		healthHandler.NewHandler(db),
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORS:           corsCfg,
			MetricsPrefix:  "hospital_api",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
