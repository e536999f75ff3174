package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Gunvolt24/pixelcraft/config"
	"github.com/Gunvolt24/pixelcraft/internal/cartui"
	"github.com/Gunvolt24/pixelcraft/internal/notify"
	"github.com/Gunvolt24/pixelcraft/internal/storefront"
	"github.com/Gunvolt24/pixelcraft/internal/terminal"
	"github.com/Gunvolt24/pixelcraft/pkg/kv"
	"github.com/Gunvolt24/pixelcraft/pkg/logger"
)

const (
	sessionFile = "session.db"
	// sessionKey — id серверной сессии (значение cookie pixelcraft_session).
	sessionKey = "session_id"
)

// shop — зависимости одной команды shopctl.
type shop struct {
	cfg      *config.Config
	log      *logger.ZapLogger
	syncLog  func() error
	store    *kv.SQLite
	client   *storefront.Client
	out      *terminal.Renderer
	notifier *notify.Notifier
}

func sessionDir(cfg *config.Config) string {
	if cfg.Client.SessionDir != "" {
		return cfg.Client.SessionDir
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "pixelcraft")
	}
	return filepath.Join(os.TempDir(), "pixelcraft")
}

// openShop — verbose=false глушит лог, в терминале остаются только уведомления.
func openShop(cfg *config.Config, out io.Writer, verbose bool) (*shop, error) {
	logg, syncLog := logger.NewNop(), func() error { return nil }
	if verbose {
		var err error
		logg, syncLog, err = logger.NewZapLogger(cfg.Logger.IsProd)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}

	store, err := kv.NewSQLite(sessionDir(cfg), sessionFile)
	if err != nil {
		return nil, err
	}
	sid, _, err := store.Get(sessionKey)
	if err != nil {
		logg.Warnf(context.Background(), "session file %s unreadable, starting new session: %v", store.Path(), err)
		sid = ""
	}

	client, err := storefront.NewClient(storefront.Options{
		BaseURL:   cfg.Client.BaseURL,
		Timeout:   cfg.Client.Timeout,
		SessionID: sid,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	r := terminal.NewRenderer(out)
	return &shop{
		cfg:      cfg,
		log:      logg,
		syncLog:  syncLog,
		store:    store,
		client:   client,
		out:      r,
		notifier: notify.New(r, cfg.Client.NotificationTTL),
	}, nil
}

// controller — контроллер корзины; локальная корзина читается из базы сессии.
func (s *shop) controller(ctx context.Context, confirm cartui.Confirmer) *cartui.Controller {
	return cartui.NewController(ctx, cartui.Deps{
		Remote:    s.client,
		Fallback:  cartui.NewFallbackStore(s.store, s.log),
		Notifier:  s.notifier,
		Badge:     s.out,
		Confirmer: confirm,
		Reloader:  terminal.NewCartReloader(s.client, s.out, s.log),
		Logger:    s.log,
	}, cartui.Options{
		FallbackName:  s.cfg.Client.FallbackName,
		FallbackPrice: s.cfg.Client.FallbackPrice,
	})
}

// close — запоминает сессию, выданную сервером, чтобы следующая команда работала с той же корзиной.
func (s *shop) close(ctx context.Context) {
	if sid := s.client.SessionID(); sid != "" {
		if err := s.store.Set(sessionKey, sid); err != nil {
			s.log.Errorf(ctx, "save session: %v", err)
		}
	}
	s.notifier.Close()
	if err := s.store.Close(); err != nil {
		s.log.Errorf(ctx, "close session store: %v", err)
	}
	_ = s.syncLog()
}
