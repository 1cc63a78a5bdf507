package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/serein-care/serein/backend/internal/analysis/crisis"
	"github.com/serein-care/serein/backend/internal/config"
	"github.com/serein-care/serein/backend/internal/handler"
	"github.com/serein-care/serein/backend/internal/model/persona"
	"github.com/serein-care/serein/backend/internal/service/ai"
	"github.com/serein-care/serein/backend/internal/service/contextstore"
	"github.com/serein-care/serein/backend/internal/service/guard"
	"github.com/serein-care/serein/backend/internal/service/journal"
	"github.com/serein-care/serein/backend/internal/service/orchestrator"
	"github.com/serein-care/serein/backend/internal/service/transcript"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	personaStore := persona.NewMemoryStore(persona.Seed())

	// Durable state: Redis when configured, in-process otherwise.
	var kv contextstore.KV
	var recorder journal.Recorder
	if cfg.Store.RedisEnabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to reach redis at %s: %v", cfg.Store.RedisAddr, err)
		}
		kv = contextstore.NewRedisKV(client, cfg.Store.KeyPrefix)
		recorder = journal.NewRedisRecorder(client, cfg.Store.KeyPrefix+":interactions", 0)
		log.Println("redis state backend initialized")
	} else {
		kv = contextstore.NewMemoryKV()
		recorder = journal.NewMemoryRecorder()
		log.Println("REDIS_ADDR not set, using in-memory state backend")
	}

	contexts := contextstore.NewService(personaStore, kv, cfg.Store.Retention)

	// Completion providers, in fallback order.
	var providers []ai.Provider
	if cfg.AI.Enabled() {
		chatModel, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to initialize ark chat model: %v", err)
		} else {
			primary, err := ai.NewArkProvider(ctx, chatModel)
			if err != nil {
				log.Printf("warning: failed to build primary provider: %v", err)
			} else {
				providers = append(providers, primary)
				log.Println("primary completion provider initialized")
			}
		}
	} else {
		log.Println("ark credentials not configured, skipping primary provider")
	}
	if cfg.Fallback.Enabled() {
		secondary := ai.NewOpenAICompatProvider(ai.OpenAICompatConfig{
			BaseURL:     cfg.Fallback.BaseURL,
			APIKey:      cfg.Fallback.APIKey,
			Model:       cfg.Fallback.Model,
			Temperature: cfg.Fallback.Temperature,
			MaxTokens:   cfg.Fallback.MaxTokens,
		}, &http.Client{Timeout: cfg.Fallback.Timeout})
		providers = append(providers, secondary)
		log.Println("secondary completion provider initialized")
	}
	if len(providers) == 0 {
		log.Println("no completion provider configured, all turns will use canned replies")
	}

	detector := crisis.NewDetector(cfg.Crisis.Detector, crisis.DefaultResources())
	corrector := guard.NewValidator(nil)
	picker := ai.RandomPicker(rand.NewSource(time.Now().UnixNano()))

	pipeline := orchestrator.New(
		personaStore,
		contexts,
		detector,
		corrector,
		providers,
		ai.NewFallback(picker),
		transcript.NewService(0),
		recorder,
		picker,
	)

	router := handler.NewRouter(personaStore, contexts, pipeline)
	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Serein backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
