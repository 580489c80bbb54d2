package main

import (
	"context"
	"embed"
	"log"

	"aperture/internal/app"
	"aperture/internal/config"
	"aperture/internal/infrastructure/logging"
	"aperture/internal/services"

	"github.com/wailsapp/wails/v2"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Create an instance of the app structure
	application := app.NewApp(cfg)
	appLogger := application.Logger()

	shellService := services.NewShellService(cfg.ShellAllowlist, cfg.ShellTimeout, appLogger)
	dialogService := services.NewDialogService(appLogger)
	processService := services.NewProcessService(appLogger)

	// Filesystem access is scoped to the application directories, resolved
	// through the same handle GetAppPaths reports
	appHandle := application.AppHandle()
	var scopes []string
	if dir, dirErr := appHandle.DataDir(); dirErr == nil {
		scopes = append(scopes, dir)
	} else {
		appLogger.Warn("Data directory unavailable, excluded from filesystem scope", "error", dirErr)
	}
	if dir, dirErr := appHandle.ConfigDir(); dirErr == nil {
		scopes = append(scopes, dir)
	} else {
		appLogger.Warn("Config directory unavailable, excluded from filesystem scope", "error", dirErr)
	}
	fsService := services.NewFSService(appLogger, scopes...)

	// Create application with options
	err = wails.Run(&options.App{
		Title:            cfg.AppName,
		Width:            cfg.WindowWidth,
		Height:           cfg.WindowHeight,
		MinWidth:         cfg.MinWidth,
		MinHeight:        cfg.MinHeight,
		DisableResize:    false,
		Fullscreen:       false,
		Frameless:        true,
		StartHidden:      false,
		AlwaysOnTop:      false,
		BackgroundColour: &options.RGBA{R: 18, G: 18, B: 18, A: 255},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Menu:     nil,
		Logger:   logging.NewWailsLoggerAdapter(appLogger),
		LogLevel: wailslogger.INFO,
		OnStartup: func(ctx context.Context) {
			application.Startup(ctx)
			shellService.SetContext(ctx)
			dialogService.SetContext(ctx)
			processService.SetContext(ctx)
		},
		OnDomReady:       application.DomReady,
		OnBeforeClose:    application.BeforeClose,
		OnShutdown:       application.Shutdown,
		WindowStartState: options.Normal,
		Bind: []interface{}{
			application,
			shellService,
			dialogService,
			fsService,
			processService,
		},
		// Windows platform specific options
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    true,
			WebviewUserDataPath:  "",
			ZoomFactor:           1.0,
		},
		// Mac platform specific options
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: true,
				HideTitle:                  true,
				HideTitleBar:               false,
				FullSizeContent:            true,
				UseToolbar:                 false,
				HideToolbarSeparator:       true,
			},
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
		},
	})

	if err != nil {
		log.Fatal(err)
	}
}
