package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pathfinder-eg/pathfinder/internal/api"
	"github.com/pathfinder-eg/pathfinder/internal/clients/boards"
	"github.com/pathfinder-eg/pathfinder/internal/clients/gemini"
	"github.com/pathfinder-eg/pathfinder/internal/config"
	"github.com/pathfinder-eg/pathfinder/internal/logger"
	"github.com/pathfinder-eg/pathfinder/internal/metrics"
	"github.com/pathfinder-eg/pathfinder/internal/repositories"
	"github.com/pathfinder-eg/pathfinder/internal/services"
	log "github.com/sirupsen/logrus"
)

func buildBoards(cfg *config.Config) []boards.Board {

	wuzzuf := boards.NewWuzzuf()
	wuzzuf.SetRateLimit(cfg.Scraper.BoardMaxRequestsPerSecond)

	forasna := boards.NewForasna()
	forasna.SetRateLimit(cfg.Scraper.BoardMaxRequestsPerSecond)

	return []boards.Board{
		boards.NewCachedBoard(wuzzuf),
		boards.NewCachedBoard(forasna),
	}
}

func buildExtractor(ctx context.Context, cfg *config.Config) *services.ProfileExtractor {

	if cfg.AI.Key == "" {
		log.Warn("AI key is not set, profile extraction is disabled")
		return nil
	}

	aiClient, err := gemini.NewClient(ctx, cfg.AI.Key, gemini.Model(cfg.AI.Model))
	if err != nil {
		log.Fatalf("can't create AI client: %v", err)
	}
	aiClient.SetMinuteRateLimit(cfg.AI.MaxRequestsPerMinute)

	return services.NewProfileExtractor(aiClient)
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.Register()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	opportunities := repositories.NewOpportunitiesRepository(dbContext.DB)
	cachedOpportunities := repositories.NewCachedOpportunities(opportunities)
	paths := repositories.NewPathsRepository(dbContext.DB)
	fetchLog := repositories.NewFetchLogRepository(dbContext.DB)

	bus := EventBus.New()

	jobsCache := services.NewJobsCache(cfg.Scraper.CacheTTL, time.Now)
	aggregator := services.NewJobAggregator(bus, buildBoards(cfg), cachedOpportunities, jobsCache)

	janitor, err := services.NewCacheJanitor(jobsCache, fetchLog, cfg.Scraper.FetchLogRetentionInDays)
	if err != nil {
		log.Fatalf("can't create cache janitor: %v", err)
	}
	defer janitor.Stop()

	_, err = services.NewFetchRecorder(bus, fetchLog)
	if err != nil {
		log.Fatalf("can't create fetch recorder: %v", err)
	}

	recommender := services.NewRecommender(opportunities, paths)

	var handlers *api.Handlers
	if extractor := buildExtractor(ctx, cfg); extractor != nil {
		handlers = api.NewHandlers(aggregator, recommender, extractor)
	} else {
		handlers = api.NewHandlers(aggregator, recommender, nil)
	}
	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           handlers.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("Listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
