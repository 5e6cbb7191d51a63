package main

import (
	"github.com/sirupsen/logrus"

	"github.com/mercerclayton/banking-system/internal/config"
	"github.com/mercerclayton/banking-system/internal/storage"
)

func main() {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	logrus.WithField("path", env.Database.Path).Info("Migrating card database")

	status, err := storage.Migrate(env.Database)
	if err != nil {
		logrus.WithError(err).Fatal("storage.Migrate")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("Migration status")
}
