package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JordiGD/Parcial2-Soft1/internal/config"
	"github.com/JordiGD/Parcial2-Soft1/internal/infra"
	"github.com/JordiGD/Parcial2-Soft1/internal/repository"
	"github.com/JordiGD/Parcial2-Soft1/internal/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	client, err := infra.NewMongo(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	pedidoRepo := repository.NewPedidoRepository(client.Database(cfg.MongoDB))
	if err := pedidoRepo.Inicializar(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap orders collection")
	}

	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	menu := infra.NewBebidasClient(cfg.DrinksAPIURL, cb)

	r := router.NewPedidos(cfg, client, pedidoRepo, menu)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.PedidosPort),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Msgf("pedidos API listening on :%d", cfg.PedidosPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
