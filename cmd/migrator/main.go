package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/config"
	"github.com/vancomm/maze-server/internal/database"
)

func main() {
	envFile := flag.String("env", "", "`file` to read the environment from instead of .env")
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	if err := config.LoadEnv(files...); err != nil {
		logrus.Fatal("unable to load env: ", err)
	}

	log, err := config.NewLogger()
	if err != nil {
		logrus.Fatal(err)
	}

	url, err := config.DatabaseURL()
	if err != nil {
		log.WithError(err).Fatal("unable to read database config")
	}

	migrator, err := database.Migrate(url)
	if err != nil {
		log.WithError(err).Fatal("unable to migrate")
	}
	defer migrator.Close()

	version, dirty, err := migrator.Version()
	if err != nil {
		log.WithError(err).Error("unable to check migration version")
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{
		"version": version, "dirty": dirty,
	}).Info("migration successful")
}
