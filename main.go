package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angas/chartjs-go/config"
	"github.com/angas/chartjs-go/feed"
	"github.com/angas/chartjs-go/logging"
	"github.com/angas/chartjs-go/store"
	"github.com/angas/chartjs-go/task"
	"github.com/angas/chartjs-go/www"
	"github.com/lmittmann/tint"
)

var Version = "?.?.?"

func main() {
	defer func() {
		if err := recover(); err != nil {
			exitWithError(slog.Default(), fmt.Errorf("application panicked: %v", err))
		} else {
			slog.Default().Info("application is shutting down...")
		}
	}()

	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cnfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consoleHandler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cnfg.Logging.GetConsoleLevel(),
		TimeFormat: time.RFC3339,
	})
	slog.New(consoleHandler).Debug("chart server is starting...", slog.String("version", Version))

	db, err := store.New(ctx, cnfg.Database.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to open store: %v", err))
	}
	defer db.Close()

	logger := slog.New(logging.NewMultiHandler(
		consoleHandler,
		logging.NewSQLiteHandler(db, cnfg.Logging.GetDbLevel(), cnfg.Logging.GetDbAttrsFormat())))
	slog.SetDefault(logger)

	// store operations are logged into the store itself from here on
	db.SetLogger(logger.With("module", "store"))

	live := feed.NewLiveCharts(cnfg.Snapshot.GetMaxPoints())

	server, err := www.NewServer(db, live, cnfg.Api, Version)
	if err != nil {
		panic(fmt.Sprintf("failed to create server: %v", err))
	}
	live.OnUpdate = server.PublishChart

	if cnfg.Mqtt.Host == "" {
		logger.Info("no MQTT host configured, live charts disabled")
	} else {
		f := feed.New(
			cnfg.Mqtt.Host,
			cnfg.Mqtt.Port,
			cnfg.Mqtt.Username,
			cnfg.Mqtt.Password,
			cnfg.Mqtt.GetClientID(),
			cnfg.Mqtt.GetTopic())
		f.OnSample = func(s feed.Sample) {
			if err := live.Add(s); err != nil {
				logger.Error("adding sample failed", slog.String("chart", s.Chart), slog.Any("error", err))
			}
		}
		if err := f.Connect(); err != nil {
			panic(fmt.Sprintf("MQTT connection error: %v", err))
		}
		defer f.Disconnect()
	}

	tasks := task.NewTasks(db, live, cnfg)
	if err := tasks.Run(); err != nil {
		panic(fmt.Sprintf("failed to schedule tasks: %v", err))
	}
	defer func() {
		<-tasks.Stop().Done()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-ctx.Done():
		case sig := <-sigCh:
			logger.Info("received signal", slog.Any("signal", sig))
			cancel()
		}
	}()

	if err := server.Run(ctx); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
	}
}

func exitWithError(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("application shutting down with error", slog.Any("error", err))
	}
	if syncer, ok := logger.Handler().(interface{ Sync() error }); ok {
		if syncErr := syncer.Sync(); syncErr != nil {
			logger.Error("failed to flush logger", slog.Any("error", syncErr))
		}
	}

	time.Sleep(2 * time.Second)
	os.Exit(1)
}
