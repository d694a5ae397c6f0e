package app

import (
	"context"
	"fmt"
	"log"

	specscache "specforge/internal/cache/specs"
	"specforge/internal/export"
	"specforge/internal/gateway/config"
	"specforge/internal/gateway/events"
	"specforge/internal/gateway/handler"
	projectrepo "specforge/internal/gateway/repository/project"
	"specforge/internal/gateway/server"
	"specforge/internal/llm"
)

type App struct {
	server *server.Server
	store  projectrepo.Store
	client llm.Client
	cfg    *config.Config
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	store = specscache.NewCachedStore(store, specscache.DefaultCacheConfig())

	client, err := openClient(ctx, cfg)
	if err != nil {
		store.Close()
		return nil, err
	}

	var bundles *export.S3Store
	if cfg.Bundle.Enabled {
		bundles, err = export.NewS3Store(cfg.Bundle.S3)
		if err != nil {
			log.Printf("app: bundle store disabled: %v", err)
			bundles = nil
		}
	}

	hub := events.NewHub()
	h := handler.New(store, client, hub, bundles)
	srv := server.New(cfg.Port, server.Routes(h))

	return &App{
		server: srv,
		store:  store,
		client: client,
		cfg:    cfg,
	}, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.client.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if serr := a.store.Close(); serr != nil && err == nil {
		err = serr
	}
	return err
}

func openStore(cfg *config.Config) (projectrepo.Store, error) {
	if cfg.DatabaseURL == "" {
		log.Printf("app: DATABASE_URL unset, using in-memory store")
		return projectrepo.NewMemoryStore(), nil
	}
	store, err := projectrepo.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open project store: %w", err)
	}
	return store, nil
}

func openClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if cfg.Gemini.UseFake {
		log.Printf("app: LLM_PROVIDER=fake, using canned generation client")
		return llm.NewFakeClient(), nil
	}
	client, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to init generation client: %w", err)
	}
	return client, nil
}
