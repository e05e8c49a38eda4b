package commands

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/balkashynov/pmboard/internal/config"
	"github.com/balkashynov/pmboard/internal/db"
	"github.com/balkashynov/pmboard/internal/logging"
	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/service"
	"github.com/balkashynov/pmboard/internal/store"
)

// App is everything a command needs, built from configuration
type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Service *service.Service

	kv  db.KeyValueStore
	now func() time.Time
}

// NewApp opens the configured store and loads the snapshot from it
func NewApp(cfg *config.Config, now func() time.Time) (*App, error) {
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	kv, err := db.Open(db.Config{
		Driver:        cfg.Storage.Driver,
		Path:          cfg.Storage.Path,
		RedisAddr:     cfg.Redis.Addr,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		Timeout:       time.Duration(cfg.Redis.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}
	log.Debug("storage opened", zap.String("driver", cfg.Storage.Driver), zap.String("key", cfg.Storage.Key))

	adapter := store.NewAdapter(kv, cfg.Storage.Key, log)
	svc := service.New(store.NewContainer(adapter),
		service.WithClock(now),
		service.WithLogger(log),
	)

	return &App{Config: cfg, Log: log, Service: svc, kv: kv, now: now}, nil
}

// Now returns the current time from the app clock
func (a *App) Now() time.Time {
	return a.now()
}

// Today returns today's date from the app clock
func (a *App) Today() models.Date {
	return models.NewDate(a.now())
}

// Close releases the store
func (a *App) Close() error {
	_ = a.Log.Sync()
	return a.kv.Close()
}
