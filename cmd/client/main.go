package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/layer-quickstart/internal/adapter"
	"github.com/MKhiriev/layer-quickstart/internal/client"
	"github.com/MKhiriev/layer-quickstart/internal/config"
	"github.com/MKhiriev/layer-quickstart/internal/identity"
	"github.com/MKhiriev/layer-quickstart/internal/logger"
	"github.com/MKhiriev/layer-quickstart/internal/store"
	"github.com/MKhiriev/layer-quickstart/internal/tui"
	"github.com/MKhiriev/layer-quickstart/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("layer-quickstart")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	fingerprint := identity.Fingerprint(cfg.Identity.Fingerprint)
	userID := identity.UserID(fingerprint)
	log.Info().Str("fingerprint", fingerprint).Str("user_id", userID).Msg("resolved user identity")

	sdkLog := log.Component("messaging")
	factory := adapter.NewClientFactory(cfg.Adapter, cfg.App, adapter.Dependencies{
		UserID:   userID,
		Sessions: localStorage.SessionRepository,
		Messages: localStorage.MessageRepository,
		Logger:   sdkLog,
	})

	ui := tui.New(ctx, buildInfo, cfg.App.AppID, log)

	app := client.NewApp(ctx, client.Dependencies{
		Config:            cfg.App,
		NewClient:         factory,
		NewView:           ui.NewConversationView,
		Screen:            ui,
		Dispatcher:        ui,
		SetLoggingEnabled: sdkLog.SetLoggingEnabled,
		Logger:            log.Component("lifecycle"),
	})
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("close messaging client")
		}
	}()

	if err = ui.Run(app); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Println(line)
	}
}
