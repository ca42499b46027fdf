package cli

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/daybook/internal/config"
	"github.com/sandeepkv93/daybook/internal/storage"
	"github.com/sandeepkv93/daybook/internal/store"
)

type session struct {
	repo  storage.Repository
	store *store.TaskStore
}

func (s *session) Close() error {
	return s.repo.Close()
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.dbPath != "" {
		cfg.Storage.Path = flags.dbPath
	}
	if flags.memory {
		cfg.Storage.Driver = config.DriverMemory
	}
	return cfg, nil
}

func openRepository(cfg *config.Config) (storage.Repository, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return storage.NewMemoryRepository(), nil
	case config.DriverSQLite, "":
		return storage.OpenSQLite(cfg.Storage.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func openSession(ctx context.Context, cfg *config.Config) (*session, error) {
	repo, err := openRepository(cfg)
	if err != nil {
		return nil, err
	}
	s, err := store.Open(ctx, repo)
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return &session{repo: repo, store: s}, nil
}

func withSession(ctx context.Context, flags *globalFlags, fn func(*session) error) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	sess, err := openSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer sess.Close()
	return fn(sess)
}
