package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/alphashop/articles-service/app/articles"
	"github.com/alphashop/articles-service/app/families"
	"github.com/alphashop/articles-service/app/taxrates"
	"github.com/alphashop/articles-service/config"
	"github.com/alphashop/articles-service/database"
	"github.com/alphashop/articles-service/models"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DSN(), logger)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	repo := models.NewArticlesRepository(db)
	articlesHandler := articles.NewArticlesHandler(articles.NewService(repo, logger))
	taxRatesHandler := taxrates.NewTaxRatesHandler(repo)
	familiesHandler := families.NewFamiliesHandler(repo)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/articles", articlesHandler.HandleSearch)
	mux.HandleFunc("GET /api/articles/{code}", articlesHandler.HandleGetByCode)
	mux.HandleFunc("GET /api/articles/barcode/{ean}", articlesHandler.HandleGetByBarcode)
	mux.HandleFunc("POST /api/articles", articlesHandler.HandleCreate)
	mux.HandleFunc("PUT /api/articles", articlesHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/articles/{code}", articlesHandler.HandleDelete)
	mux.HandleFunc("GET /api/taxrates", taxRatesHandler.HandleGetAll)
	mux.HandleFunc("GET /api/families", familiesHandler.HandleGetAll)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	}
}
