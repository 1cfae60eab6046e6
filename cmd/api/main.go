// cmd/api/main.go
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
	"runtime/debug"
	"time"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/config"
	"github.com/dealdesk/dealdesk/internal/email"
	"github.com/dealdesk/dealdesk/internal/handler"
	"github.com/dealdesk/dealdesk/internal/middleware"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/realtime"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/dealdesk/dealdesk/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	cardRepo := repository.NewSalesCardRepository(db)
	approvalRepo := repository.NewApprovalNotificationRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	iterationRepo := repository.NewFollowupIterationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatMessageRepository(db)
	permissionRepo := repository.NewModulePermissionRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service, falling back to SMTP when no Sendgrid key is set
	emailProvider := email.ProviderSendgrid
	if cfg.Sendgrid.APIKey == "" {
		emailProvider = email.ProviderSMTP
	}
	emailService, err := email.NewEmailService(cfg, emailProvider)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Realtime hub
	hub := realtime.NewHub()
	go hub.Run()

	// Initialize services
	authService := service.NewAuthService(userRepo, passwordHasher, tokenManager, emailService)
	userService := service.NewUserService(userRepo, orgRepo, passwordHasher, emailService)
	orgService := service.NewOrganizationService(orgRepo)
	customerService := service.NewCustomerService(customerRepo)
	taskService := service.NewTaskService(taskRepo, iterationRepo, userRepo)
	cardService := service.NewSalesCardService(cardRepo, taskService)
	approvalService := service.NewApprovalService(approvalRepo, cardRepo, userRepo, hub)
	iterationService := service.NewIterationService(iterationRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	chatService := service.NewChatService(chatRepo)
	permissionService := service.NewPermissionService(permissionRepo)
	sweepService := service.NewSweepService(taskRepo, notificationRepo, userRepo, hub, cfg.Sweep.Renotify)

	// Overdue sweep runs for the lifetime of the process
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepService.Run(sweepCtx, cfg.Sweep.Interval)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	customerHandler := handler.NewCustomerHandler(customerService)
	cardHandler := handler.NewSalesCardHandler(cardService, approvalService)
	taskHandler := handler.NewTaskHandler(taskService)
	iterationHandler := handler.NewIterationHandler(iterationService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	chatHandler := handler.NewChatHandler(chatService)
	permissionHandler := handler.NewPermissionHandler(permissionService)
	wsHandler := realtime.NewHandler(hub, tokenManager, chatService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Websocket endpoint authenticates via token query parameter
	r.Get("/ws", wsHandler.ServeWS)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))

				r.Post("/login", authHandler.LoginHandler)
				r.Post("/register-superadmin", userHandler.RegisterSuperAdmin)
				r.Post("/forgot-password", authHandler.ForgotPasswordHandler)
				r.Post("/reset-password", authHandler.ResetPasswordHandler)
			})

			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))
				r.Use(middleware.AuthMiddleware(tokenManager))

				r.Post("/change-password", authHandler.ChangePasswordHandler)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			// Staff management
			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.ListByRole)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)

				r.With(middleware.RequireRole(model.RoleSuperAdmin)).
					Post("/admins", userHandler.CreateAdmin)
				r.With(middleware.RequireRole(model.RoleAdmin)).
					Post("/supervisors", userHandler.CreateSupervisor)
				r.With(middleware.RequireRole(model.RoleSupervisor)).
					Post("/salespeople", userHandler.CreateSalesperson)
			})

			// Tenant management
			r.Route("/organizations", func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleSuperAdmin))

				r.Get("/", orgHandler.List)
				r.Get("/{id}", orgHandler.Get)
				r.Put("/{id}", orgHandler.Rename)
				r.Delete("/{id}", orgHandler.Delete)
			})

			// Per-user module permissions
			r.Route("/permissions", func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleSuperAdmin))

				r.Get("/user/{userId}", permissionHandler.ListForUser)
				r.Post("/assign", permissionHandler.Assign)
				r.Put("/{userId}/{moduleId}", permissionHandler.Update)
				r.Delete("/{userId}/{moduleId}", permissionHandler.Remove)
			})

			// Customers
			r.Route("/customers", func(r chi.Router) {
				r.Get("/", customerHandler.List)
				r.Post("/", customerHandler.Create)
				r.Get("/{id}", customerHandler.Get)
				r.Put("/{id}", customerHandler.Update)
				r.Delete("/{id}", customerHandler.Delete)
			})

			// Sales cards and the approval workflow
			r.Route("/sales-cards", func(r chi.Router) {
				r.Get("/", cardHandler.List)
				r.Post("/", cardHandler.Create)
				r.Get("/{id}", cardHandler.Get)
				r.Put("/{id}", cardHandler.Update)
				r.Delete("/{id}", cardHandler.Delete)
				r.Post("/{id}/submit", cardHandler.SubmitApproval)
			})

			r.Route("/approvals", func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleSupervisor, model.RoleAdmin))

				r.Get("/", cardHandler.PendingApprovals)
				r.Post("/{id}/approve", cardHandler.Approve)
				r.Post("/{id}/reject", cardHandler.Reject)
			})

			// Tasks
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/{id}/complete", taskHandler.Complete)
			})

			// Follow-up cadence configuration
			r.Route("/iterations", func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleAdmin))

				r.Get("/", iterationHandler.List)
				r.Post("/", iterationHandler.Create)
				r.Put("/{id}", iterationHandler.Update)
				r.Delete("/{id}", iterationHandler.Delete)
			})

			// Notifications
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.ListMine)
				r.Post("/{id}/read", notificationHandler.MarkRead)
			})

			// Chat history
			r.Get("/chat/{roomID}/messages", chatHandler.History)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)
		stopSweep()

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := migrate(db, cfg); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}

func migrate(db *gorm.DB, cfg *config.Config) error {
	if err := db.AutoMigrate(
		&model.Organization{},
		&model.User{},
		&model.RegistrationKey{},
		&model.PasswordResetToken{},
		&model.Customer{},
		&model.SalesStatus{},
		&model.SalesCard{},
		&model.ApprovalNotification{},
		&model.Task{},
		&model.TaskFollowup{},
		&model.FollowupIteration{},
		&model.Notification{},
		&model.ChatMessage{},
		&model.Module{},
		&model.Permission{},
		&model.ModulePermission{},
	); err != nil {
		return err
	}

	// Seed the pipeline stage lookup
	stages := []model.SalesStatus{
		{ID: model.StatusNewLead, Name: "New Lead"},
		{ID: model.StatusContacted, Name: "Contacted"},
		{ID: model.StatusNegotiation, Name: "Negotiation"},
		{ID: model.StatusOrderConfirmed, Name: "Order Confirmed"},
	}
	for _, stage := range stages {
		if err := db.Where(model.SalesStatus{ID: stage.ID}).FirstOrCreate(&stage).Error; err != nil {
			return err
		}
	}

	// Seed the grantable module and permission lookups
	modules := []model.Module{
		{ID: 1, Name: "organizations"},
		{ID: 2, Name: "users"},
		{ID: 3, Name: "customers"},
		{ID: 4, Name: "sales-cards"},
		{ID: 5, Name: "tasks"},
		{ID: 6, Name: "iterations"},
		{ID: 7, Name: "notifications"},
	}
	for _, mod := range modules {
		if err := db.Where(model.Module{ID: mod.ID}).FirstOrCreate(&mod).Error; err != nil {
			return err
		}
	}
	permissions := []model.Permission{
		{ID: model.PermissionRead, Name: "read"},
		{ID: model.PermissionCreate, Name: "create"},
		{ID: model.PermissionUpdate, Name: "update"},
		{ID: model.PermissionDelete, Name: "delete"},
	}
	for _, perm := range permissions {
		if err := db.Where(model.Permission{ID: perm.ID}).FirstOrCreate(&perm).Error; err != nil {
			return err
		}
	}

	// Seed the superAdmin bootstrap key so a fresh deployment can register its
	// first account. Once a registration consumes the key the FirstOrCreate
	// match on key keeps it consumed.
	if key := cfg.Bootstrap.SuperAdminRegistrationKey; key != "" {
		seed := model.RegistrationKey{Key: key}
		if err := db.Where(model.RegistrationKey{Key: key}).FirstOrCreate(&seed).Error; err != nil {
			return err
		}
	}

	return nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
