package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mercerclayton/banking-system/internal/cardnumber"
	"github.com/mercerclayton/banking-system/internal/config"
	"github.com/mercerclayton/banking-system/internal/console"
	"github.com/mercerclayton/banking-system/internal/logging"
	"github.com/mercerclayton/banking-system/internal/operator"
	"github.com/mercerclayton/banking-system/internal/service"
	"github.com/mercerclayton/banking-system/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "bank",
		Usage: "simple card banking system",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{"BANK_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "path to the card database, overrides database.path",
			},
		},
		Action: runConsole,
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "create or upgrade the card table and exit",
				Action: runMigrate,
			},
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Fatal("bank")
	}
}

// setup loads configuration and the logger shared by every command. The returned closer
// releases the log file, if any.
func setup(c *cli.Context) (*config.Config, *logrus.Logger, io.Closer, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}
	if db := c.String("db"); db != "" {
		cfg.Database.Path = db
	}

	var out io.Writer
	var closer io.Closer = io.NopCloser(nil)
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	logger, err := logging.SetupLogging(cfg.Log.Level, out)
	if err != nil {
		_ = closer.Close()
		return nil, nil, nil, err
	}
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.WithField("config", spew.Sdump(cfg)).Debug("config.Load")
	}

	return cfg, logger, closer, nil
}

func migrateDatabase(cfg *config.Config, logger *logrus.Logger) error {
	status, err := storage.Migrate(cfg.Database)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  status.PreMigrationVersion,
		"postMigrationVersion": status.PostMigrationVersion,
	}).Info("Migration status")
	return nil
}

func runMigrate(c *cli.Context) error {
	cfg, logger, closer, err := setup(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	return migrateDatabase(cfg, logger)
}

func runConsole(c *cli.Context) error {
	cfg, logger, closer, err := setup(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("bank starting")

	if err := migrateDatabase(cfg, logger); err != nil {
		return err
	}

	dbStorage, err := storage.NewStorage(cfg.Database)
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	cards, err := dbStorage.Read().Cards.Count(c.Context)
	if err != nil {
		return err
	}
	logger.WithField("cards", cards).Info("card database ready")

	generator, err := newGenerator(cfg.Card.IssuerPrefix)
	if err != nil {
		return err
	}

	delegator := operator.NewOperatorDelegator(dbStorage, logger, cfg.Operator.Workers, cfg.Operator.QueueSize)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, generator, logger, cfg.Card)

	return console.New(os.Stdin, os.Stdout, svc.Account, logger).Run(c.Context)
}

func newGenerator(prefix string) (*cardnumber.Generator, error) {
	if prefix == cardnumber.DefaultIssuerPrefix {
		return cardnumber.Default(), nil
	}
	seed := uint64(time.Now().UnixNano())
	return cardnumber.NewGenerator(prefix, rand.NewPCG(seed, seed>>32|1))
}
