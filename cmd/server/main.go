package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saideepoki/counselling-app/internal/account"
	"github.com/saideepoki/counselling-app/internal/clock"
	"github.com/saideepoki/counselling-app/internal/config"
	"github.com/saideepoki/counselling-app/internal/httpapi"
	"github.com/saideepoki/counselling-app/internal/logging"
	"github.com/saideepoki/counselling-app/internal/notify"
	"github.com/saideepoki/counselling-app/internal/passcode"
	"github.com/saideepoki/counselling-app/internal/schedule"
	"github.com/saideepoki/counselling-app/internal/session"
	"github.com/saideepoki/counselling-app/internal/store"
	"github.com/saideepoki/counselling-app/internal/store/memory"
	"github.com/saideepoki/counselling-app/internal/store/postgres"
)

func main() {
	log := logging.NewDefault("counselling-app")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Error(ctx, "failed to load config", "err", err)
		os.Exit(1)
	}

	var st store.Store
	var closer func()

	if cfg.DatabaseURL != "" {
		if err := postgres.Migrate(ctx, cfg.DatabaseURL); err != nil {
			log.Error(ctx, "failed to run migrations", "err", err)
			os.Exit(1)
		}
		pg, err := postgres.NewStore(cfg.DatabaseURL)
		if err != nil {
			log.Error(ctx, "failed to init postgres store", "err", err)
			os.Exit(1)
		}
		st = pg
		closer = pg.Close
		log.Info(ctx, "using postgres store")
	} else {
		st = memory.NewStore()
		log.Info(ctx, "using memory store")
	}
	if closer != nil {
		defer closer()
	}

	var notifier notify.Notifier = notify.Discard{}
	if cfg.AMQPURL != "" {
		n, err := notify.NewAMQPNotifier(cfg.AMQPURL, cfg.NotifyExchange)
		if err != nil {
			log.Error(ctx, "failed to connect to broker", "err", err)
			os.Exit(1)
		}
		defer n.Close()
		notifier = n
		log.Info(ctx, "passcode notifications via amqp", "exchange", cfg.NotifyExchange)
	} else {
		log.Warn(ctx, "no AMQP_URL configured, passcode notifications will be dropped")
	}

	clk := clock.System{}
	codes := passcode.NewAuthenticator(cfg.PasscodeSecret, cfg.PasscodeWindow, clk)
	sessions := session.NewResolver(account.NewStoreService(st), st, codes, notifier, log)
	sched := schedule.NewScheduler(st)

	var guardOpts []schedule.GuardOption
	if cfg.MeetingEnforceStart {
		guardOpts = append(guardOpts, schedule.WithEnforcedStart(cfg.MeetingEarlyJoinLead))
	}
	guard := schedule.NewGuard(clk, cfg.MeetingAccessGrace, guardOpts...)

	srv := httpapi.NewServer(cfg, st, sessions, sched, guard, log)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.ListenAddr())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info(ctx, "shutdown requested")
	case err := <-errCh:
		log.Error(ctx, "server error", "err", err)
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)
}
