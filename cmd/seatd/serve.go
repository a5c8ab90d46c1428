package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"seatd/internal/config"
	"seatd/internal/floorplan"
	"seatd/internal/httpapi"
	"seatd/internal/manager"
	"seatd/pkg/types"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var (
		cfgPath string
		envFile string
		tables  string
		cfg     config.Config
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the seating HTTP API",
		Example: "  seatd serve --tables 4,2,6\n" +
			"  seatd serve --config seatd.yaml\n" +
			"  SEATD_FLOOR_PLAN=plan.yaml seatd serve",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveConfig(cmd, cfgPath, envFile, tables, cfg)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), resolved)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "Config file (.yaml, .yml, .json, .toml)")
	f.StringVar(&envFile, "env-file", "", "Dotenv file to load before reading SEATD_* variables (defaults to ./.env when present)")
	f.StringVar(&cfg.Addr, "addr", "", "HTTP listen address, e.g. :8080")
	f.StringVar(&tables, "tables", "", "Comma separated table capacities, e.g. 4,2,6")
	f.StringVar(&cfg.FloorPlan, "floor-plan", "", "YAML file listing table capacities")
	f.StringVar(&cfg.LogLevel, "log-level", "", "Log level: trace|debug|info|warn|error")
	f.BoolVar(&cfg.LogPretty, "log-pretty", false, "Human readable console logs")
	f.Int64Var(&cfg.MaxBodyBytes, "max-body-bytes", 0, "Maximum JSON request body size")
	f.BoolVar(&cfg.CORSEnabled, "cors", false, "Enable CORS")
	f.StringSliceVar(&cfg.CORSOrigins, "cors-origins", nil, "Allowed CORS origins")
	f.IntVar(&cfg.WaitTimeoutSeconds, "wait-timeout", 0, "Upper bound in seconds for GET /changes long polls")
	return cmd
}

// resolveConfig layers file, dotenv/env and explicitly set flags, then applies defaults.
func resolveConfig(cmd *cobra.Command, cfgPath, envFile, tables string, flags config.Config) (config.Config, error) {
	var cfg config.Config
	if cfgPath != "" {
		c, err := config.Load(cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return cfg, err
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	set := cmd.Flags().Changed
	if set("addr") {
		cfg.Addr = flags.Addr
	}
	if set("tables") {
		tbls, err := floorplan.ParseCSV(tables)
		if err != nil {
			return cfg, fmt.Errorf("--tables: %w", err)
		}
		cfg.Tables = make([]int, len(tbls))
		for i, t := range tbls {
			cfg.Tables[i] = t.Capacity
		}
	}
	if set("floor-plan") {
		cfg.FloorPlan = flags.FloorPlan
	}
	if set("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if set("log-pretty") {
		cfg.LogPretty = flags.LogPretty
	}
	if set("max-body-bytes") {
		cfg.MaxBodyBytes = flags.MaxBodyBytes
	}
	if set("cors") {
		cfg.CORSEnabled = flags.CORSEnabled
	}
	if set("cors-origins") {
		cfg.CORSOrigins = flags.CORSOrigins
	}
	if set("wait-timeout") {
		cfg.WaitTimeoutSeconds = flags.WaitTimeoutSeconds
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// loadTables prefers the floor plan file over inline capacities.
func loadTables(cfg config.Config) ([]types.Table, error) {
	if cfg.FloorPlan != "" {
		return floorplan.LoadFile(cfg.FloorPlan)
	}
	return floorplan.FromCapacities(cfg.Tables)
}

func serve(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	log := newLogger(os.Stderr, cfg.LogLevel, cfg.LogPretty)

	tbls, err := loadTables(cfg)
	if err != nil {
		return err
	}
	if len(tbls) == 0 {
		log.Warn().Msg("no tables configured; every arrival will be queued")
	}

	mgr := manager.New(tbls)
	mp, err := manager.NewMetricsPublisher(prometheus.DefaultRegisterer, mgr)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	mgr.SetEventPublisher(manager.MultiPublisher{mp, manager.NewLogPublisher(log)})

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(httpLogLevel(log.GetLevel()))
	httpapi.SetBaseContext(ctx)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetWaitTimeout(time.Duration(cfg.WaitTimeoutSeconds) * time.Second)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins,
		[]string{http.MethodGet, http.MethodPost, http.MethodOptions},
		[]string{"Content-Type", "X-Log-Level"})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(mgr),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Int("tables", len(tbls)).Str("capacities", capacities(tbls)).Msg("seatd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown error")
		}
		log.Info().Msg("seatd stopped")
		return nil
	})
	return g.Wait()
}

// httpLogLevel maps the process log level onto the per-request levels.
func httpLogLevel(l zerolog.Level) string {
	switch {
	case l <= zerolog.DebugLevel:
		return "debug"
	case l == zerolog.InfoLevel:
		return "info"
	case l < zerolog.Disabled:
		return "error"
	default:
		return "off"
	}
}

func capacities(tbls []types.Table) string {
	parts := make([]string, len(tbls))
	for i, t := range tbls {
		parts[i] = fmt.Sprint(t.Capacity)
	}
	return strings.Join(parts, ",")
}
