package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "Backend-Brightlane-Leadkit/docs"
	"Backend-Brightlane-Leadkit/src/config"
	"Backend-Brightlane-Leadkit/src/controllers"
	"Backend-Brightlane-Leadkit/src/database"
	"Backend-Brightlane-Leadkit/src/jobs"
	"Backend-Brightlane-Leadkit/src/middleware"
	"Backend-Brightlane-Leadkit/src/routes"
	"Backend-Brightlane-Leadkit/src/services/analytics"
	"Backend-Brightlane-Leadkit/src/services/intake"
	"Backend-Brightlane-Leadkit/src/services/leads"
	"Backend-Brightlane-Leadkit/src/services/pdf"
	"Backend-Brightlane-Leadkit/src/services/quiz"
	"Backend-Brightlane-Leadkit/src/services/render"
	"Backend-Brightlane-Leadkit/src/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// @title        Brightlane Leadkit API
// @version      1.0
// @description  Lead-magnet quiz, plan delivery and lead intake.
// @BasePath     /
func main() {
	cfg := config.Load()

	// Redis is optional: without it the store, the rate limiter and the
	// dispatch queue all run in-process.
	if cfg.RedisURI != "" {
		if err := database.InitRedis(cfg.RedisURI); err != nil {
			log.Printf("⚠️ Redis unavailable (%v), continuing without it", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	database.InitAsynq(cfg.RedisURI)

	store, storeName := openStore(cfg)

	var limiter intake.Limiter = intake.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	if database.RedisClient != nil {
		limiter = intake.NewRedisLimiter(database.RedisClient, cfg.RateLimitMax, cfg.RateLimitWindow)
	}
	var relay intake.Relay
	if cfg.LeadWebhookURL != "" {
		relay = intake.NewWebhookRelay(cfg.LeadWebhookURL, nil)
	}
	intakeSvc := intake.NewService(intake.NewOriginPolicy(cfg.AllowedOrigins), limiter, relay)

	sinks := []leads.Sink{leads.NewIntakeSink(intakeSvc)}
	if cfg.IntakeURL != "" {
		sinks = append(sinks, leads.NewHTTPIntakeSink(cfg.IntakeURL, nil))
	}
	if cfg.FormRelayURL != "" {
		sinks = append(sinks, leads.NewFormRelaySink(cfg.FormRelayURL, cfg.FormName, nil))
	}
	if cfg.LeadNotifyEmail != "" {
		sender, err := leads.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
		if err != nil {
			log.Printf("⚠️ Lead mail disabled: %v", err)
		} else {
			sinks = append(sinks, leads.NewMailSink(sender, cfg.LeadNotifyEmail))
		}
	}
	var dispatchOpts []leads.DispatcherOption
	if database.AsynqClient != nil {
		dispatchOpts = append(dispatchOpts, leads.WithEnqueuer(database.AsynqClient))
	}
	dispatcher := leads.NewDispatcher(sinks, dispatchOpts...)

	var worker *jobs.Worker
	if database.AsynqClient != nil {
		w, err := jobs.NewWorker(cfg.RedisURI, 4, leads.RegisterDispatchHandlers(dispatcher))
		if err != nil {
			log.Fatalf("❌ Worker setup failed: %v", err)
		}
		if err := w.Start(); err != nil {
			log.Fatalf("❌ Worker start failed: %v", err)
		}
		worker = w
	}

	tracker := analytics.New(cfg.AnalyticsURL, nil)
	renderer, err := render.New(cfg.SiteURL)
	if err != nil {
		log.Fatalf("❌ Templates: %v", err)
	}
	exporter := pdf.NewExporter(pdf.NewChromeRasterizer(cfg.ChromePath, cfg.PDFTimeout), tracker, cfg.SiteURL, cfg.PDFDisclaimer)
	funnel := quiz.NewFunnel(quiz.NewAdapter(store), dispatcher)

	app := fiber.New(fiber.Config{AppName: "Brightlane Leadkit"})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Handlers{
		Quiz:   controllers.NewQuizController(funnel, renderer),
		Plans:  controllers.NewPlanController(funnel, renderer, exporter, cfg.PDFDisclaimer),
		Intake: controllers.NewIntakeController(intakeSvc, cfg.FormName),
		Health: controllers.HealthCheck(controllers.HealthInfo{Store: storeName, Queue: database.AsynqClient != nil}),
		Visitor: middleware.VisitorSession(middleware.VisitorConfig{
			Secret: []byte(cfg.VisitorSecret),
			TTL:    cfg.StoreTTL,
			Secure: strings.HasPrefix(cfg.SiteURL, "https://"),
		}),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("Server is running on port " + cfg.AppURI)
		if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
			log.Printf("❌ Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("⚠️ HTTP shutdown: %v", err)
	}
	dispatcher.Wait()
	if worker != nil {
		worker.Shutdown()
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tracker.Close(closeCtx); err != nil {
		log.Printf("⚠️ Analytics close: %v", err)
	}
	_ = database.CloseAsynq()
	_ = database.CloseRedis()
	_ = database.DisconnectMongoDB(closeCtx)
}

// openStore picks the session store backend. A backend that cannot be
// reached falls back to memory.
func openStore(cfg config.Config) (storage.Store, string) {
	switch cfg.StoreDriver {
	case config.StoreRedis:
		if database.RedisClient != nil {
			return storage.NewRedisStore(database.RedisClient, "leadkit:", cfg.StoreTTL), string(config.StoreRedis)
		}
		log.Println("⚠️ STORE_DRIVER=redis but Redis is unavailable, using memory")
	case config.StoreMongo:
		if err := database.ConnectMongoDB(cfg.MongoURI); err != nil {
			log.Printf("⚠️ STORE_DRIVER=mongo but MongoDB is unavailable (%v), using memory", err)
			break
		}
		ms := storage.NewMongoStore(database.GetCollection(cfg.MongoDB, database.SessionCollection), cfg.StoreTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := ms.EnsureIndexes(ctx); err != nil {
			log.Printf("⚠️ Mongo TTL index: %v", err)
		}
		return ms, string(config.StoreMongo)
	}
	return storage.NewMemoryStore(), string(config.StoreMemory)
}
