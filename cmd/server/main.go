package main

import (
	"os"

	"tienda/internal/config"
	"tienda/internal/db"
	"tienda/internal/handlers"
	"tienda/internal/notify"
	"tienda/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	app := &cli.App{
		Name:  "tienda",
		Usage: "backend de la tienda",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "arranca el API HTTP",
				Action: func(*cli.Context) error {
					return serve(log)
				},
			},
			{
				Name:  "migrate",
				Usage: "aplica las migraciones de la base de datos",
				Action: func(*cli.Context) error {
					return runMigrations(log)
				},
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("application failed")
	}
}

func serve(log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	var notifier notify.Notifier = notify.Noop{}
	if cfg.BotToken != "" {
		tg, err := notify.NewTelegram(cfg.BotToken, cfg.StaffChat, log)
		if err != nil {
			log.WithError(err).Warn("telegram notifier disabled")
		} else {
			notifier = tg
		}
	}

	h := handlers.Handlers{
		Auth:     handlers.NewAuthHandler(repo.NewUserRepo(database), cfg.JWTSecret, log),
		Products: handlers.NewProductHandler(repo.NewProductRepo(database), log),
		Category: handlers.NewCategoryHandler(repo.NewCategoryRepo(database), log),
		Orders:   handlers.NewOrderHandler(repo.NewOrderRepo(database), notifier, log),
		Payments: handlers.NewPaymentHandler(repo.NewPaymentMethodRepo(database), log),
		Repairs:  handlers.NewRepairHandler(repo.NewRepairRepo(database), notifier, log),
	}

	r := gin.Default()
	_ = r.SetTrustedProxies(nil)
	handlers.RegisterRoutes(r, h, cfg.JWTSecret)

	log.WithField("port", cfg.Port).Info("listening")
	return r.Run(":" + cfg.Port)
}

func runMigrations(log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	m, err := migrate.New("file://migrations", cfg.DatabaseURL())
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	log.Info("migrations applied")
	return nil
}
