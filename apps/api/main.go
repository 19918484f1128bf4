package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/trezcool/darasa/apps/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/task"
	"github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
	"github.com/trezcool/darasa/storage/database/mongodb"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(std, err)

	var logger core.Logger
	if conf.Debug || conf.RollbarToken == "" {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up validation
	validate, translator := core.NewValidator()
	task.RegisterValidators(validate, translator)

	// set up DB; a single shared client for the process lifetime
	client, err := database.Open(conf)
	errAndDie(std, err)
	defer func() { _ = database.Close(client, conf) }()

	errAndDie(std, mongorepos.EnsureIndexes(client, conf))

	// set up services
	taskSvc := task.NewService(mongorepos.NewTaskRepository(client, conf), validate)

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:       conf.Server.Address(),
			Conf:       conf,
			Logger:     logger,
			Translator: translator,
			TaskSvc:    taskSvc,
			HealthCheck: func(ctx context.Context) error {
				return database.Ping(ctx, client, conf)
			},
		},
		shutdown,
	)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening on " + conf.Server.Address())
		serverErrors <- app.Start()
	}()

	select {
	case err = <-serverErrors:
		logger.Fatal("server error", err)
	case sig := <-shutdown:
		logger.Info("shutdown started", sig)

		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err = app.Stop(ctx); err != nil {
			logger.Error("graceful shutdown failed", err)
		}
	}
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
