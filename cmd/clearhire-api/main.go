package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/clearhire/clearhire-api/internal/config"
	"github.com/clearhire/clearhire-api/internal/database"
	"github.com/clearhire/clearhire-api/internal/handlers"
	"github.com/clearhire/clearhire-api/internal/logger"
	authmw "github.com/clearhire/clearhire-api/internal/middleware"
	"github.com/clearhire/clearhire-api/internal/repository"
	"github.com/clearhire/clearhire-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog := logger.New("clearhire-api", cfg.Env)
	defer func() { _ = appLog.Sync() }()

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		appLog.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		appLog.Fatalw("failed to run migrations", "error", err)
	}

	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	i9UserRepo := repository.NewI9UserRepository(db)
	formRepo := repository.NewI9FormRepository(db)
	documentRepo := repository.NewI9DocumentRepository(db)
	section2Repo := repository.NewI9Section2Repository(db)
	reverifyRepo := repository.NewI9ReverificationRepository(db)
	translatorRepo := repository.NewTranslatorRepository(db)
	auditRepo := repository.NewAuditTrailRepository(db)
	initiationRepo := repository.NewInitiationRepository(db)
	notificationRepo := repository.NewNotificationLogRepository(db)

	keySet := services.NewKeySet(cfg.Identity)
	emailService := services.NewEmailService(cfg.SMTP)
	notificationService := services.NewNotificationService(emailService, notificationRepo, appLog)
	userService := services.NewUserService(userRepo, teamRepo, memberRepo)
	teamService := services.NewTeamService(userRepo, teamRepo, memberRepo, emailService, appLog)
	todoService := services.NewTodoService(todoRepo, memberRepo)
	billingService := services.NewBillingService(
		services.NewStripeClient(cfg.Stripe.SecretKey),
		userRepo, teamService, cfg.Stripe, cfg.Env, appLog,
	)
	i9Service := services.NewI9Service(services.I9ServiceDeps{
		I9Users:       i9UserRepo,
		Forms:         formRepo,
		Documents:     documentRepo,
		Section2:      section2Repo,
		Reverify:      reverifyRepo,
		Translators:   translatorRepo,
		Audit:         auditRepo,
		Initiations:   initiationRepo,
		Notifications: notificationService,
		BaseURL:       cfg.BaseURL,
		Log:           appLog,
	})

	objectStore, err := services.NewObjectStore(ctx, cfg.Storage)
	if err != nil {
		appLog.Fatalw("failed to init object store", "error", err)
	}
	uploadService := services.NewUploadService(objectStore, cfg.Storage)

	userHandler := handlers.NewUserHandler(userService, billingService)
	teamHandler := handlers.NewTeamHandler(teamService)
	todoHandler := handlers.NewTodoHandler(todoService)
	billingHandler := handlers.NewBillingHandler(billingService)
	i9Handler := handlers.NewI9Handler(i9Service, notificationService, uploadService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "Stripe-Signature"},
		MaxAge:       86400,
	}))

	// Registered on the app, outside the body-parsing group: Stripe
	// signature verification needs the raw request body.
	app.Post("/api/v1/billing/webhook", billingHandler.Webhook)

	api := app.Group("/api/v1")
	api.Use(middleware.BodyParser())

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	protected := api.Group("")
	protected.Use(authmw.Auth(keySet))

	protected.Get("/users/me", userHandler.Profile)
	protected.Get("/users/me/settings", userHandler.Settings)

	protected.Post("/billing/checkout", billingHandler.Checkout)
	protected.Post("/billing/portal", billingHandler.Portal)

	protected.Get("/team/:teamId", teamHandler.Get)
	protected.Put("/team/:teamId", teamHandler.Rename)
	protected.Delete("/team/:teamId", teamHandler.Delete)
	protected.Get("/team/:teamId/members", teamHandler.Members)
	protected.Post("/team/:teamId/members", teamHandler.Invite)
	protected.Post("/team/:teamId/join", teamHandler.Join)
	protected.Delete("/team/:teamId/members/:memberKey", teamHandler.RemoveMember)
	protected.Patch("/team/:teamId/members/:memberKey", teamHandler.UpdateRole)

	protected.Get("/team/:teamId/todos", todoHandler.List)
	protected.Post("/team/:teamId/todos", todoHandler.Create)
	protected.Get("/team/:teamId/todos/:todoId", todoHandler.Get)
	protected.Patch("/team/:teamId/todos/:todoId", todoHandler.Update)
	protected.Delete("/team/:teamId/todos/:todoId", todoHandler.Delete)

	protected.Post("/i9/users", i9Handler.CreateUser)
	protected.Post("/i9/forms", i9Handler.Initiate)
	protected.Get("/i9/forms/:formId", i9Handler.GetForm)
	protected.Get("/i9/forms/:formId/initiation", i9Handler.GetInitiation)
	protected.Post("/i9/forms/:formId/documents", i9Handler.RecordDocuments)
	protected.Get("/i9/forms/:formId/documents", i9Handler.ListDocuments)
	protected.Post("/i9/forms/:formId/employer", i9Handler.SignSection2)
	protected.Get("/i9/forms/:formId/employer", i9Handler.GetSection2)
	protected.Post("/i9/forms/:formId/reverifications", i9Handler.Reverify)
	protected.Get("/i9/forms/:formId/reverifications", i9Handler.ListReverifications)
	protected.Post("/i9/forms/:formId/translators", i9Handler.AttachTranslator)
	protected.Get("/i9/forms/:formId/translators", i9Handler.ListTranslators)
	protected.Post("/i9/forms/:formId/email", i9Handler.SendEmail)
	protected.Get("/i9/forms/:formId/audit", i9Handler.AuditTrail)
	protected.Get("/i9/forms/:formId/notifications", i9Handler.Notifications)
	protected.Post("/notifications/send", i9Handler.SendNotification)
	protected.Post("/i9/uploads", i9Handler.Upload)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		appLog.Infow("server starting", "addr", addr)
		if err := app.Run(addr); err != nil {
			appLog.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Infow("shutting down server")
}
