/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"os"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/glucolens/glucolens/db"
	"github.com/glucolens/glucolens/risk"
	"github.com/glucolens/glucolens/routes"
	"github.com/glucolens/glucolens/static"
	"github.com/glucolens/glucolens/templates"
)

const shutdownTimeout = 10 * time.Second

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "port",
			Value: "8080",
			Usage: "the web server port",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string; enables assessment history when set",
		},
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (for templates)",
		},
		&cli.BoolFlag{
			Name:    "risk-pie",
			Sources: cli.EnvVars("GLUCOLENS_RISK_PIE"),
			Usage:   "show the risk category pie on the analysis page",
		},
		&cli.StringFlag{
			Name:    "assets-host",
			Sources: cli.EnvVars("GLUCOLENS_ASSETS_HOST"),
			Usage:   "base URL the echarts library is loaded from",
		},
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars("CSRF_SECRET"),
			Usage:   "secret for CSRF tokens; a random one is used when unset",
		},
	},
	Action: start,
}

type serverConfig struct {
	Dashboard  routes.DashboardConfig
	CSRFSecret string
	Predictor  risk.Predictor
}

func start(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("dev") {
		flamego.SetEnv(flamego.EnvTypeDev)
	} else {
		flamego.SetEnv(flamego.EnvTypeProd)
	}

	if databaseURL := cmd.String("database-url"); databaseURL != "" {
		// The db package reads DATABASE_URL directly.
		if err := os.Setenv("DATABASE_URL", databaseURL); err != nil {
			return fmt.Errorf("failed to set DATABASE_URL: %w", err)
		}

		appLogger.Info("Connecting to database")

		if err := db.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		appLogger.Info("Syncing database schema")

		if err := db.SyncSchema(ctx); err != nil {
			return fmt.Errorf("failed to sync schema: %w", err)
		}

		appLogger.Info("Database schema synced successfully")
	} else {
		appLogger.Warn("No database configured, assessment history is disabled")
	}

	secret := cmd.String("csrf-secret")
	if secret == "" {
		secret = uuid.NewString()

		appLogger.Warn("CSRF_SECRET not set, using a random secret for this process")
	}

	f, err := newServer(serverConfig{
		Dashboard: routes.DashboardConfig{
			IncludeRiskPie: cmd.Bool("risk-pie"),
			AssetsHost:     cmd.String("assets-host"),
		},
		CSRFSecret: secret,
	})
	if err != nil {
		return err
	}

	port := cmd.String("port")
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", port),
		Handler:      f,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     requestStdLogger,
	}

	errCh := make(chan error, 1)

	go func() {
		appLogger.Info("Starting web server", "port", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web server failed: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}

	return nil
}

func newServer(cfg serverConfig) (*flamego.Flame, error) {
	if cfg.Predictor == nil {
		cfg.Predictor = risk.HeuristicPredictor{}
	}

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f := flamego.New()
	f.MapTo(cfg.Predictor, (*risk.Predictor)(nil))

	f.Use(routes.RequestLogger)
	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer(csrf.Options{Secret: cfg.CSRFSecret}))
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
		FuncMaps:   []htmltemplate.FuncMap{routes.TemplateFuncs()},
	}))
	f.Use(routes.Recovery())
	f.Use(routes.NoCacheHeaders())
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector)
	f.Use(routes.ChartBootstrap(cfg.Dashboard))

	f.Get("/", routes.Patient)
	f.Get("/choice", routes.Choice)
	f.Get("/quick", routes.Quick)
	f.Get("/full", routes.Full)
	f.Get("/predict", routes.Predict)
	f.Get("/result", routes.Result)

	f.Get("/analysis", routes.Analysis)
	f.Get("/analysis/print", routes.PrintAnalysis)
	f.Get("/analysis/gauge.png", routes.GaugePNG)
	f.Get("/analysis/features.png", routes.FeaturesPNG)
	f.Get("/analysis/pie.png", routes.RiskPiePNG)
	f.Get("/api/analysis", routes.AnalysisJSON)

	f.Group("/history", func() {
		f.Get("", routes.History)
		f.Post("", csrf.Validate, routes.SaveAssessment)
		f.Get("/{id}", routes.ViewHistory)
		f.Post("/{id}/delete", csrf.Validate, routes.DeleteHistory)
	}, routes.RequireHistory)

	f.NotFound(routes.NotFound)

	return f, nil
}
