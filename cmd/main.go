package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/backoffice/config"
	"github.com/ray-remotestate/backoffice/database"
	"github.com/ray-remotestate/backoffice/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.Init()

	db, err := database.ConnectAndMigrate(config.LoadDatabaseConfig(), config.MigrationsPath())
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}
	logrus.Info("database connected and migrations applied")

	svr := server.SetupRoutes(db)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := svr.Run(config.Port()); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()
	logrus.WithField("port", config.Port()).Info("server started")

	<-done
	logrus.Info("shutting down")

	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
	if err := db.Shutdown(); err != nil {
		logrus.WithError(err).Error("failed to close database")
	}
	logrus.Info("server stopped")
}
