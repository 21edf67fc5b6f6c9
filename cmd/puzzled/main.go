// Command puzzled serves the puzzle search engines over HTTP: synchronous
// solves, live WebSocket solves with progress streaming, and an optional
// Postgres archive of finished runs.
package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"
)

var (
	log = logrus.New()

	configPath string
	config     *Config

	pg *postgres
)

func init() {
	const (
		defaultConfigPath = "/etc/puzzled.yaml"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
}

func setupLogging() {
	lvl, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if config.LogFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   config.LogFile,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      lvl,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create rotating log hook: ", err)
	}
	log.AddHook(hook)
}

func setupPostgres(ctx context.Context) {
	if !config.ArchiveEnabled() {
		log.Info("no database_url configured, solve archive disabled")
		return
	}
	var err error
	pg, err = NewPostgres(ctx, config.DatabaseURL)
	if err != nil {
		log.Fatal("unable to create connection pool: ", err)
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	var err error
	config, err = LoadConfig(configPath)
	if err != nil {
		log.Fatalf("unable to load config %s: %s", configPath, err)
	}

	setupLogging()
	log.Info("starting up")

	setupPostgres(mainCtx)
	if pg != nil {
		defer pg.Close()
	}

	server := &http.Server{
		Addr:    config.Addr,
		Handler: buildHandler(),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", config.Addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
