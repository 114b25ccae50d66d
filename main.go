package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hddwatch/pricereport/config"
	"hddwatch/pricereport/helpers"
	"hddwatch/pricereport/logger"
	"hddwatch/pricereport/services/browser"
	"hddwatch/pricereport/services/cache"
	"hddwatch/pricereport/services/publisher"
	"hddwatch/pricereport/services/render"
	"hddwatch/pricereport/services/worker"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("search_term", cfg.SearchTerm).
		Int("max_pages", cfg.MaxPages).
		Msg("Starting report run")

	// One run, cancellable by signal; scheduling belongs to the caller (cron)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services := initializeServices(ctx, cfg)
	defer services.Cleanup()

	jobs := worker.NewSourceJobs(cfg, services.Cache, services.Renderer)
	pipeline := worker.NewPipeline(jobs, cfg.MinDelay, cfg.MaxDelay)

	data := pipeline.Run(ctx)

	if err := render.WriteReport(cfg.OutputPath, data, time.Now()); err != nil {
		log.Fatal().Err(err).Str("path", cfg.OutputPath).Msg("Failed to write report")
	}
	logger.ForRender().Info().
		Str("path", cfg.OutputPath).
		Int("rows", len(data.Rows)).
		Msg("Report written")

	if services.Publisher != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			log.Error().Err(err).Msg("Failed to encode report snapshot")
		} else if err := services.Publisher.Publish(payload); err != nil {
			logger.ForPublisher().Error().Err(err).Msg("Failed to publish report snapshot")
		} else if err := services.Publisher.TrimStream(); err != nil {
			logger.ForPublisher().Error().Err(err).Msg("Failed to trim snapshot stream")
		}
	}

	log.Info().
		Int("sources_ok", data.SourcesOK()).
		Int("sources", len(data.Statuses)).
		Msg("Run complete")
}

// Services holds all the initialized services
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
	Renderer  *browser.Renderer
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		s.Publisher.Close()
	}
	if s.Renderer != nil {
		s.Renderer.Close()
	}
}

// initializeServices initializes the optional and required collaborators
func initializeServices(ctx context.Context, cfg config.Config) *Services {
	services := &Services{}

	if cfg.MemcacheAddr != "" {
		services.Cache = cache.NewMemcacheService(cfg.MemcacheAddr)
		logger.Info("Using Memcache at %s for rate-limit blocks", cfg.MemcacheAddr)
	}

	if cfg.RedisAddr != "" {
		services.Publisher = publisher.NewRedisPublisher(
			ctx,
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamMaxLen,
		)
		logger.Info("Publishing snapshots to Redis at %s (stream: %s)", cfg.RedisAddr, cfg.RedisStream)
	}

	services.Renderer = browser.NewRenderer(helpers.RandomUserAgent(), cfg.RenderTimeout)

	return services
}
