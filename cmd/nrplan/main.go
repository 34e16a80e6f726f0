package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/mkrugly/nr-frequency/pkg/config"
	"github.com/mkrugly/nr-frequency/pkg/database"
	"github.com/mkrugly/nr-frequency/pkg/logger"
	"github.com/mkrugly/nr-frequency/pkg/metrics"
	"github.com/mkrugly/nr-frequency/pkg/resolver"
	"github.com/mkrugly/nr-frequency/pkg/ssb"
	"github.com/mkrugly/nr-frequency/pkg/web"
)

var (
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

func main() {
	// Parse command line flags
	configFile := flag.String("config", "config.yaml", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version information")
	validate := flag.Bool("validate", false, "Validate configuration and exit")
	flag.Parse()

	// Show version
	if *showVersion {
		fmt.Printf("nrplan %s\n", version)
		fmt.Printf("Git Commit: %s\n", gitCommit)
		fmt.Printf("Built: %s\n", buildTime)
		os.Exit(0)
	}

	// Initialize basic logger for startup
	log := logger.New(logger.Config{
		Level:  "info",
		Format: "text",
	})

	log.Info("Starting nrplan",
		logger.String("version", version),
		logger.String("build_time", buildTime))

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Error("Failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	// Validate only mode
	if *validate {
		log.Info("Configuration is valid")
		os.Exit(0)
	}

	log.Info("Configuration loaded successfully",
		logger.String("config_file", *configFile))

	// Reinitialize logger with config settings
	log = logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	web.SetVersionInfo(version, gitCommit, buildTime)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize wait group for goroutines
	var wg sync.WaitGroup

	// Open the cell plan database
	db, err := database.NewDB(database.Config{Path: cfg.Database.Path}, log.WithComponent("database"))
	if err != nil {
		log.Error("Failed to open database", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	plans := database.NewCellPlanRepository(db.GetDB())

	// Initialize metrics collector
	metricsCollector := metrics.NewCollector()
	metricsCollector.SetConfiguredCells(len(cfg.Cells))

	// Start Prometheus metrics server if enabled
	if cfg.Metrics.Enabled && cfg.Metrics.Prometheus.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			metricsServer := metrics.NewPrometheusServer(
				metrics.PrometheusConfig{
					Enabled: cfg.Metrics.Prometheus.Enabled,
					Port:    cfg.Metrics.Prometheus.Port,
					Path:    cfg.Metrics.Prometheus.Path,
				},
				metricsCollector,
				log.WithComponent("metrics"),
			)
			if err := metricsServer.Start(ctx); err != nil && err != context.Canceled {
				log.Error("Prometheus metrics server error", logger.Error(err))
			}
		}()
	}

	// Expire old plans before writing this run's batch
	if cfg.Database.RetentionDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -cfg.Database.RetentionDays)
		deleted, err := plans.DeleteOlderThan(cutoff)
		if err != nil {
			log.Error("Failed to expire old cell plans", logger.Error(err))
		} else if deleted > 0 {
			log.Info("Expired old cell plans",
				logger.Int64("deleted", deleted),
				logger.Int("retention_days", cfg.Database.RetentionDays))
		}
	}

	// Resolve the configured cells and persist their plans
	resolveCells(cfg, plans, metricsCollector, log)

	// Start web server if enabled
	if cfg.Web.Enabled {
		srv := web.NewServer(cfg.Web, web.APIDeps{
			Plans:   plans,
			Metrics: metricsCollector,
		}, log.WithComponent("web"))

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Start(ctx); err != nil && err != context.Canceled {
				log.Error("Web server error", logger.Error(err))
			}
		}()
		log.Info("Web server started",
			logger.String("host", cfg.Web.Host),
			logger.Int("port", cfg.Web.Port))
	}

	log.Info("nrplan initialized",
		logger.String("server_name", cfg.Server.Name),
		logger.Int("cells", len(cfg.Cells)))

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info("Received shutdown signal",
		logger.String("signal", sig.String()))

	// Cancel context to trigger graceful shutdown
	cancel()

	// Wait for all components to stop
	wg.Wait()

	log.Info("nrplan stopped")
}

// resolveCells derives the frequency plan for every configured cell,
// stores it and logs the headline parameters. A failing cell is logged
// and skipped so the remaining cells still come up.
func resolveCells(cfg *config.Config, plans *database.CellPlanRepository, collector *metrics.Collector, log *logger.Logger) {
	names := make([]string, 0, len(cfg.Cells))
	for name := range cfg.Cells {
		names = append(names, name)
	}
	sort.Strings(names)

	reslog := log.WithComponent("resolver")
	r := resolver.New(reslog)

	for _, name := range names {
		cell := cfg.Cells[name]
		res, err := r.Resolve(inputFromCell(cell))
		if err != nil {
			collector.ResolutionFailed()
			log.Error("Failed to resolve cell",
				logger.String("cell", name), logger.Error(err))
			continue
		}
		collector.ResolutionCompleted(res.Band, res.Duplex, res.InputParamError)

		log.Info("Cell resolved",
			logger.String("cell", name),
			logger.Int("band", res.Band),
			logger.String("duplex", res.Duplex),
			logger.Int("fc_channel_dl", res.FcChannelDL),
			logger.Int("gscn", res.Gscn),
			logger.Int("arfcn_ssb", res.ArfcnSSB),
			logger.Int("k_ssb", res.KSSB),
			logger.Bool("input_param_error", res.InputParamError))

		logBurst(cell, res, log)

		plan, err := database.NewCellPlan(name, res)
		if err == nil {
			err = plans.Create(plan)
		}
		if err != nil {
			log.Error("Failed to store cell plan",
				logger.String("cell", name), logger.Error(err))
			continue
		}
		collector.PlanStored()
	}
}

// logBurst reports the SSB burst layout for a resolved cell.
func logBurst(cell config.CellConfig, res *resolver.Resolution, log *logger.Logger) {
	if res.SSBPattern == "" {
		return
	}

	inOneGroup := cell.SSBInOneGroup
	if inOneGroup == "" {
		inOneGroup = "10000000"
	}
	periodicity := cell.SSBPeriodicity
	if periodicity == 0 {
		periodicity = 20
	}

	burst := ssb.Burst{
		Band:          res.Band,
		ScsCommon:     res.ScsCommon,
		ScsSSB:        res.ScsSSB,
		InOneGroup:    inOneGroup,
		GroupPresence: cell.SSBGroupPresence,
		Periodicity:   periodicity,
	}

	log.Info("SSB burst layout",
		logger.String("pattern", burst.Pattern()),
		logger.Any("indices", burst.Indices()),
		logger.Any("start_symbols", burst.StartSymbols()),
		logger.Any("subframes", burst.Subframes()),
		logger.Int("periodicity_ms", burst.Periodicity))
}

// inputFromCell maps a configured cell onto resolver input parameters.
func inputFromCell(cell config.CellConfig) resolver.Input {
	return resolver.Input{
		Band:            cell.Band,
		Bw:              cell.Bw,
		BwUL:            cell.BwUL,
		ScsCarrier:      cell.ScsCarrier,
		ScsCommon:       cell.ScsCommon,
		ScsSSB:          cell.ScsSSB,
		FcChannel:       cell.FcChannel,
		FcChannelUL:     cell.FcChannelUL,
		PdcchConfigSib1: cell.PdcchConfigSib1,
		OffsetToCarrier: cell.OffsetToCarrier,
		FFcToPointA:     cell.FFcToPointA,
		UseSyncRaster:   cell.UseSyncRaster,
		SSBTransmission: cell.SSBTransmission,
	}
}
