package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"alfredoptarigan/interview-generator/internal/config"
	"alfredoptarigan/interview-generator/internal/handlers"
	applog "alfredoptarigan/interview-generator/internal/logger"
	"alfredoptarigan/interview-generator/internal/repositories"
	"alfredoptarigan/interview-generator/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := applog.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("✅ Config loaded successfully")

	db, err := config.InitDatabase(cfg, zlog)
	if err != nil {
		zlog.Fatal("❌ Failed to initialize database", zap.Error(err))
	}

	jobRepo := repositories.NewJobRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	creditRepo := repositories.NewCreditRepository(db)
	zlog.Info("✅ Repositories initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("❌ Failed to create upload directory", zap.Error(err))
	}

	textGen, err := services.NewTextGenerator(ctx, cfg.LLM, zlog)
	if err != nil {
		zlog.Fatal("❌ Failed to initialize text generation", zap.Error(err))
	}
	zlog.Info("✅ Text generation initialized", zap.String("provider", cfg.LLM.Provider))

	promptBuilder, err := services.NewPromptBuilder()
	if err != nil {
		zlog.Fatal("❌ Failed to load prompt catalogue", zap.Error(err))
	}

	// Question history needs both Qdrant and Gemini embeddings.
	var (
		history services.QuestionHistory
		worker  services.Worker
		queue   services.IndexQueue
	)
	if cfg.Qdrant.URL != "" {
		history, worker = initHistory(ctx, cfg, sessionRepo, questionRepo, zlog)
		if worker != nil {
			worker.Start(ctx)
			queue = worker
		}
	}

	var feedbackCache services.FeedbackCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Warn("⚠️ Redis unavailable, feedback cache disabled", zap.Error(err))
		} else {
			feedbackCache = services.NewRedisFeedbackCache(rdb, cfg.Redis.FeedbackTTL)
			zlog.Info("✅ Redis feedback cache enabled")
		}
	}

	generator := services.NewGeneratorService(
		creditRepo,
		jobRepo,
		sessionRepo,
		promptBuilder,
		textGen,
		history,
		queue,
		services.GeneratorOptions{
			Temperature:     cfg.LLM.Temperature,
			MaxOutputTokens: cfg.LLM.MaxOutputTokens,
			MaxParallel:     cfg.Generation.MaxParallel,
			HistoryLookback: cfg.Generation.HistoryLookback,
		},
		zlog,
	)
	feedbackService := services.NewFeedbackService(sessionRepo, feedbackRepo, feedbackCache, zlog)
	interviewService := services.NewInterviewService(sessionRepo, questionRepo)
	jobService := services.NewJobService(jobRepo, services.NewPDFExtractor(), zlog)
	creditService := services.NewCreditService(creditRepo, zlog)
	zlog.Info("✅ Services initialized successfully")

	app := fiber.New(fiber.Config{
		AppName:      "Interview Generator API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, " + handlers.OwnerHeader,
	}))

	handlers.Register(app, handlers.Handlers{
		Interview: handlers.NewInterviewHandler(generator, interviewService, feedbackService),
		Job:       handlers.NewJobHandler(jobService, storageService, cfg.Storage.MaxFileSize, zlog),
		Credit:    handlers.NewCreditHandler(creditService),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("🛑 Shutting down server...")
		if worker != nil {
			worker.Stop()
		}
		cancel()
		if err := app.Shutdown(); err != nil {
			zlog.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

func initHistory(
	ctx context.Context,
	cfg *config.Config,
	sessionRepo repositories.SessionRepository,
	questionRepo repositories.QuestionRepository,
	zlog *zap.Logger,
) (services.QuestionHistory, services.Worker) {
	if cfg.LLM.GeminiAPIKey == "" {
		zlog.Warn("⚠️ GEMINI_API_KEY not set, question history disabled")
		return nil, nil
	}

	embedder, err := services.NewGeminiService(ctx, cfg.LLM.GeminiAPIKey, "")
	if err != nil {
		zlog.Warn("⚠️ Failed to initialize embeddings, question history disabled", zap.Error(err))
		return nil, nil
	}

	index, err := services.NewQdrantIndex(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, zlog)
	if err != nil {
		zlog.Warn("⚠️ Failed to connect to Qdrant, question history disabled", zap.Error(err))
		return nil, nil
	}
	if err := index.InitCollection(ctx); err != nil {
		zlog.Warn("⚠️ Failed to initialize Qdrant collection, question history disabled", zap.Error(err))
		return nil, nil
	}

	history := services.NewQuestionHistoryService(sessionRepo, questionRepo, embedder, index, zlog)
	worker := services.NewWorker(sessionRepo, history, cfg.Worker.Concurrency, cfg.Worker.PollInterval, zlog)
	zlog.Info("✅ Question history enabled", zap.String("collection", cfg.Qdrant.Collection))

	return history, worker
}
