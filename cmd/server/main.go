package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ScottySprrw/Fit-tracker/internal/analytics"
	"github.com/ScottySprrw/Fit-tracker/internal/api"
	"github.com/ScottySprrw/Fit-tracker/internal/config"
	"github.com/ScottySprrw/Fit-tracker/internal/logging"
	"github.com/ScottySprrw/Fit-tracker/internal/storage"
	"github.com/ScottySprrw/Fit-tracker/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	logging.Setup(logging.SetupParams{
		Level:       cfg.Log.Level,
		FormatJSON:  cfg.Log.FormatJSON,
		LogFileName: cfg.Log.FileName,
	})
	logrus.Info("starting fitness tracker server")

	// --- Snapshot persistence ---
	var persister store.Persister
	switch cfg.Storage.Driver {
	case "mongo":
		client, err := store.ConnectMongo(context.Background(), cfg.Database.URI)
		if err != nil {
			logrus.Fatalf("connect mongodb: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				logrus.Errorf("disconnect mongodb: %v", err)
			}
		}()
		persister = store.NewMongoPersister(client.Database(cfg.Database.Name))
		logrus.WithField("database", cfg.Database.Name).Info("using mongo snapshot storage")
	case "file", "":
		fp, err := store.NewFilePersister(cfg.Storage.DataDir)
		if err != nil {
			logrus.Fatalf("init file storage: %v", err)
		}
		persister = fp
		logrus.WithField("data_dir", cfg.Storage.DataDir).Info("using file snapshot storage")
	default:
		logrus.Fatalf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	// --- Store ---
	st := store.New(persister, store.Options{
		SaveAttempts: cfg.Persistence.SaveAttempts,
		SaveBackoff:  cfg.Persistence.SaveBackoff,
	})
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := st.Load(loadCtx); err != nil {
		loadCancel()
		logrus.Fatalf("load snapshot: %v", err)
	}
	loadCancel()

	analyzer := analytics.NewAnalyzer(st)

	// --- Export backup (optional) ---
	var exportStorage storage.ExportStorage
	if cfg.S3.BucketName != "" {
		exportStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			logrus.Fatalf("init s3 storage: %v", err)
		}
	}

	// --- HTTP server ---
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, st, analyzer, exportStorage)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.WithField("address", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen and serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.Errorf("server shutdown: %v", err)
	}
	if err := st.Close(ctxShutdown); err != nil {
		logrus.Errorf("final snapshot save: %v", err)
	}
	logrus.Info("server exiting")
}
