package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/longkey1/ragechat/internal/ragechat"
	"github.com/longkey1/ragechat/internal/ragechat/config"
	"github.com/longkey1/ragechat/internal/ragechat/conversation"
	"github.com/longkey1/ragechat/internal/ragechat/response"
	"github.com/longkey1/ragechat/internal/ragechat/schedule"
	"github.com/longkey1/ragechat/internal/ragechat/session"
	"github.com/longkey1/ragechat/internal/ragechat/storage"
	"github.com/longkey1/ragechat/internal/ragechat/theme"
)

// app holds what every command needs: config, storage and the response pack.
type app struct {
	cfg    *config.Config
	kv     storage.Storage
	pack   *response.Pack
	logger *slog.Logger
}

// newApp loads the configuration, opens storage and loads the response pack.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pack, err := loadPack(cfg)
	if err != nil {
		return nil, err
	}

	kv, err := storage.Open(cfg.Storage, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	return &app{cfg: cfg, kv: kv, pack: pack, logger: slog.Default()}, nil
}

// loadPack returns the configured response pack or the built-in one.
func loadPack(cfg *config.Config) (*response.Pack, error) {
	if cfg.ResponsesFile == "" {
		return response.DefaultPack(), nil
	}
	pack, err := response.LoadPack(cfg.ResponsesFile)
	if err != nil {
		return nil, fmt.Errorf("loading responses file %s: %w", cfg.ResponsesFile, err)
	}
	return pack, nil
}

// newRand returns a generator seeded from seed, or from the clock when seed is 0.
func newRand(seed int64) *ragechat.LockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return ragechat.NewLockedRand(rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)))
}

func (a *app) Close() error {
	return a.kv.Close()
}

// newController wires a session controller on the real clock.
func (a *app) newController(view session.View, confirmer session.Confirmer) (*session.Controller, error) {
	prefs, err := theme.Load(a.kv)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	return a.newControllerWith(view, confirmer, prefs, schedule.Clock{}), nil
}

func (a *app) newControllerWith(view session.View, confirmer session.Confirmer, prefs *theme.Preference, sched schedule.Scheduler) *session.Controller {
	rnd := newRand(a.cfg.Seed)
	return session.New(session.Deps{
		Store:     conversation.NewStore(a.kv, a.logger),
		Engine:    response.NewEngine(a.pack, rnd),
		Theme:     prefs,
		Scheduler: sched,
		Rand:      rnd,
		View:      view,
		Confirmer: confirmer,
		Phrases:   a.pack.PanicPhrases,
	}, session.Options{
		MinDelay:       a.cfg.MinDelay(),
		MaxDelay:       a.cfg.MaxDelay(),
		TypingInterval: a.cfg.TypingInterval(),
		Logger:         a.logger,
	})
}
