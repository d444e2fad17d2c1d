package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dietplanner/backend/internal/application/services"
	"github.com/dietplanner/backend/internal/bootstrap"
	"github.com/dietplanner/backend/internal/config"
	"github.com/dietplanner/backend/internal/infrastructure/ai"
	"github.com/dietplanner/backend/internal/infrastructure/charts"
	"github.com/dietplanner/backend/internal/infrastructure/database"
	"github.com/dietplanner/backend/internal/infrastructure/nutritionix"
	"github.com/dietplanner/backend/internal/infrastructure/translate"
	"github.com/dietplanner/backend/internal/interfaces/rest"
	"github.com/dietplanner/backend/internal/interfaces/telegram"
	"github.com/dietplanner/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.GetInstance(cfg)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()
	zlog.Info("database connected", zap.String("driver", db.Driver()))

	if err := bootstrap.InitializeSchema(db, zlog); err != nil {
		zlog.Fatal("schema initialization failed", zap.Error(err))
	}
	if err := bootstrap.InitializeSystemData(db, zlog); err != nil {
		zlog.Fatal("system data initialization failed", zap.Error(err))
	}

	svcMgr := services.NewServiceManager(db, cfg, buildIntegrations(ctx, cfg, zlog), zlog)

	tgBot, err := telegram.New(cfg.TelegramToken, svcMgr, zlog)
	if err != nil {
		zlog.Fatal("telegram bot initialization failed", zap.Error(err))
	}
	svcMgr.AttachNotifier(cfg, tgBot, zlog)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: rest.NewRouter(svcMgr),
	}

	svcMgr.StartScheduler()
	zlog.Info("reminder scheduler started",
		zap.Int("interval_secs", cfg.SchedulerIntervalSecs))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zlog.Info("admin API listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		zlog.Info("telegram bot polling started")
		tgBot.Start(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		zlog.Info("shutting down")

		svcMgr.StopScheduler()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zlog.Fatal("server terminated with error", zap.Error(err))
	}
	zlog.Info("server exited")
}

// buildIntegrations wires the optional external services. Missing
// credentials disable a feature instead of failing startup.
func buildIntegrations(ctx context.Context, cfg *config.Config, zlog *zap.Logger) services.Integrations {
	integrations := services.Integrations{
		Translator: translate.NewClient(),
		Charts:     charts.NewRenderer(),
	}

	if cfg.NutritionixEnabled() {
		integrations.FoodProvider = nutritionix.NewClient(cfg.NutritionixAppID, cfg.NutritionixAPIKey, zlog)
		zlog.Info("nutritionix food search enabled")
	} else {
		zlog.Warn("nutritionix credentials missing, food search disabled")
	}

	if cfg.AIEnabled() {
		generator, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			zlog.Warn("gemini initialization failed, using recipe templates", zap.Error(err))
		} else {
			integrations.Generator = generator
			zlog.Info("gemini recipe generation enabled", zap.String("model", cfg.GeminiModel))
		}
	}

	return integrations
}
