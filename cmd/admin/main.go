package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/supply-manager/supply-admin/internal/infrastructure/rest"
	"github.com/supply-manager/supply-admin/internal/interfaces/console"
	"github.com/supply-manager/supply-admin/internal/interfaces/console/pages"
	"github.com/supply-manager/supply-admin/pkg/config"
	"github.com/supply-manager/supply-admin/pkg/logger"
	"github.com/supply-manager/supply-admin/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola de administración")

	store := session.NewStore(cfg.Auth.TokenFile)
	if store.Token() == "" {
		log.Warn().Str("archivo", cfg.Auth.TokenFile).Msg("sin token de sesión; las llamadas irán sin Authorization")
	} else if exp, ok := store.ExpiresAt(); ok && time.Now().After(exp) {
		log.Warn().Time("expiró", exp).Msg("el token de sesión está expirado; la API rechazará las llamadas autenticadas")
	}

	api := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), store)

	prompt := console.NewPrompt(os.Stdin, os.Stdout)
	notify := console.NewNotify(os.Stdout, log)
	deps := pages.Deps{Notify: notify, Confirm: prompt, Log: log}

	ui := console.New([]console.Page{
		pages.NewCategoriesPage(api, deps),
		pages.NewProductsPage(api, deps),
		pages.NewSuppliersPage(api, deps),
		pages.NewUsersPage(api, deps),
	}, prompt, notify, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ui.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("consola terminada con error")
	}
	log.Info().Msg("hasta luego")
}
