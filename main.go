package main

import (
	"context"
	"heartline/app/client/heart"
	"heartline/app/config"
	"heartline/app/service/api"
	"heartline/app/service/decision"
	"heartline/app/service/engine"
	"heartline/app/service/mcpsrv"
	"heartline/app/service/queue"
	"heartline/app/service/speakstate"
	"heartline/app/util/mylog"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, heart.NewClient)
	do.Provide(di, speakstate.New)
	do.Provide(di, decision.New)
	do.Provide(di, queue.New)
	do.Provide(di, engine.New)
	do.Provide(di, api.New)
	do.Provide(di, mcpsrv.New)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	group, groupCtx := errgroup.WithContext(appCtx)

	group.Go(func() error {
		do.MustInvoke[*engine.Service](di).Run(groupCtx)
		return nil
	})

	group.Go(func() error {
		return do.MustInvoke[*api.Service](di).Run(groupCtx)
	})

	if cfg.MCP.Enabled {
		group.Go(func() error {
			return do.MustInvoke[*mcpsrv.Service](di).Run(groupCtx)
		})
	}

	if err = group.Wait(); err != nil {
		log.Fatalf("service failed: %v", err)
	}
}
