package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/app"
	"github.com/vancomm/maze-server/internal/config"
	"github.com/vancomm/maze-server/internal/eller"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		logrus.Fatal("unable to load .env: ", err)
	}

	log, err := config.NewLogger()
	if err != nil {
		logrus.Fatal(err)
	}
	eller.Log = log

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := app.New(log).Start(ctx); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
