// Command dogworldd serves the dog-walking game over HTTP: it loads a
// map catalog, starts the engine's strand, optionally drives it with
// a fixed-period ticker, and serves both the JSON API and a static
// file tree.
package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dogworld/app"
	"dogworld/config"
	"dogworld/httpapi"
	"dogworld/logging"
	"dogworld/players"
	"dogworld/staticfiles"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.LoadDotEnv()
	log := logging.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	args, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		log.WithField("error", err).Fatal("failed to parse command line")
	}

	info, err := os.Stat(args.WWWRoot)
	if err != nil || !info.IsDir() {
		log.WithField("www_root", args.WWWRoot).Error("static root is not a directory or doesn't exist")
		return 1
	}

	game, err := config.LoadGame(args.ConfigFile)
	if err != nil {
		log.WithField("error", err).Fatal("failed to load map catalog")
	}
	game.SetRandomizeSpawn(args.RandomizeSpawnPoint)

	application := app.NewApplication(game, players.NewRegistry(), log)
	go application.Run()
	defer application.Stop()

	var ticker *app.Ticker
	if args.HasTickPeriod {
		ticker = app.NewTicker(args.TickPeriod, application.Tick, log)
		ticker.Start()
		defer ticker.Stop()
	}

	mux := http.NewServeMux()
	httpapi.New(application, log, !args.HasTickPeriod).Register(mux)
	mux.Handle("/", staticfiles.Handler(args.WWWRoot))

	server := &http.Server{Addr: "0.0.0.0:8080", Handler: mux}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("address", server.Addr).Info("server started")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-signals:
		log.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithField("error", err).Error("server exited")
			return 1
		}
		log.Info("server exited")
		return 0
	}

	// No graceful drain: in-flight requests are abandoned on signal,
	// matching the original's signal handler calling ioc.stop()
	// directly instead of waiting out any outstanding work.
	if err := server.Close(); err != nil {
		log.WithField("error", err).Error("server close failed")
		return 1
	}

	log.Info("server exited")
	return 0
}
