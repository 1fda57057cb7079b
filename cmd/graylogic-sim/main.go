// Gray Logic Sim - Smart Home Device Simulator
//
// This is the main entry point for the simulator console. It registers a
// set of simulated devices (lights, thermostats, security cameras), reads
// commands from an interactive prompt, and records every command and state
// change to a plain-text log.
//
// Optional integrations:
//   - SQLite archive of the command history across sessions
//   - MQTT publication of device state (retained, one topic per device)
//   - InfluxDB metrics for device settings
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/nerrad567/gray-logic-sim/internal/command"
	"github.com/nerrad567/gray-logic-sim/internal/device"
	"github.com/nerrad567/gray-logic-sim/internal/history"
	"github.com/nerrad567/gray-logic-sim/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-sim/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-sim/internal/infrastructure/influxdb"
	"github.com/nerrad567/gray-logic-sim/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-sim/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-sim/internal/repl"
	"github.com/nerrad567/gray-logic-sim/internal/telemetry"
	"github.com/nerrad567/gray-logic-sim/migrations"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// configEnv names the environment variable consulted when -config is not given.
const configEnv = "GRAYLOGIC_SIM_CONFIG"

// healthCheckTimeout bounds the startup connectivity check.
const healthCheckTimeout = 5 * time.Second

func main() {
	// Cancel on Ctrl+C outside the prompt and on SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flags holds the parsed command line.
type flags struct {
	configPath  string
	logLevel    string
	noColor     bool
	showVersion bool
}

// parseFlags parses args (without the program name). Usage goes to out.
func parseFlags(args []string, out io.Writer) (flags, error) {
	var f flags

	fs := flag.NewFlagSet("graylogic-sim", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&f.configPath, "config", "", "path to YAML config file (env "+configEnv+")")
	fs.StringVar(&f.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	fs.BoolVar(&f.noColor, "no-color", false, "disable coloured console output")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	if fs.NArg() > 0 {
		return flags{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if f.configPath == "" {
		f.configPath = os.Getenv(configEnv)
	}
	return f, nil
}

// run is the application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//   - args: Command line arguments without the program name
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context, args []string) error {
	f, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if f.showVersion {
		fmt.Printf("graylogic-sim %s (commit %s, built %s)\n", version, commit, date)
		return nil
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	noColor := f.noColor || !cfg.REPL.Color
	if noColor {
		color.NoColor = true
	}

	registry := device.NewRegistry()

	term, err := repl.NewTerminal(cfg.REPL.Prompt, registry.Names)
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer term.Close() //nolint:errcheck // Session.Run closes it first

	// Route diagnostics through readline so they do not corrupt the prompt.
	logOut := term.Stderr()
	if cfg.Logging.Output == "stdout" {
		logOut = term.Stdout()
	}
	log := logging.NewWithWriter(cfg.Logging, version, logOut)
	log.Info("starting Gray Logic Sim",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	sim, err := newSimulator(ctx, cfg, registry, log)
	if err != nil {
		return err
	}
	defer sim.Close()

	session := repl.NewSession(term, registry, sim.dispatcher, sim.history, repl.Options{
		SiteName: cfg.Site.Name,
		NoColor:  noColor,
		Stdout:   term.Stdout(),
		Stderr:   term.Stderr(),
	})
	session.SetLogger(log)

	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("running console: %w", err)
	}
	log.Info("shutdown complete")
	return nil
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig(f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	return cfg, nil
}

// simulator holds the wired core and the resources to release on shutdown.
type simulator struct {
	registry   *device.Registry
	history    *history.Log
	dispatcher *command.Dispatcher

	db           *database.DB
	mqttClient   *mqtt.Client
	influxClient *influxdb.Client

	closers []func()
}

// newSimulator opens the history log and optional integrations, registers
// the configured devices in registry, and builds the dispatcher.
//
// Only a failure to open the history log, the archive, or an enabled
// integration is fatal; a failed restore is logged and startup continues.
func newSimulator(ctx context.Context, cfg *config.Config, registry *device.Registry, log *logging.Logger) (*simulator, error) {
	sim := &simulator{registry: registry}
	registry.SetLogger(log)

	var store history.Store
	if cfg.History.Database.Enabled {
		db, err := database.Open(cfg.History.Database)
		if err != nil {
			return nil, fmt.Errorf("opening history archive: %w", err)
		}
		sim.db = db
		sim.onClose(func() {
			if closeErr := db.Close(); closeErr != nil {
				log.Error("error closing database", "error", closeErr)
			}
		})

		if err := db.Migrate(ctx, migrations.FS); err != nil {
			sim.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}

		archive := history.NewSQLiteStore(db.DB)
		store = archive
		log.Info("history archive ready", "path", db.Path(), "session_id", archive.SessionID())
	}

	hist, err := history.Open(history.Options{
		Path:     cfg.History.LogFile,
		Capacity: cfg.History.Capacity,
		Store:    store,
		Logger:   log,
	})
	if err != nil {
		sim.Close()
		return nil, fmt.Errorf("opening history log: %w", err)
	}
	sim.history = hist
	sim.onClose(func() {
		if closeErr := hist.Close(); closeErr != nil {
			log.Error("error closing history log", "error", closeErr)
		}
	})

	if cfg.History.Restore {
		n, restoreErr := hist.Restore(ctx, cfg.History.Capacity)
		if restoreErr != nil {
			log.Warn("history restore failed", "error", restoreErr)
		} else {
			log.Info("history restored", "entries", n)
		}
	}

	if err := registerDevices(registry, hist, cfg.DeviceList()); err != nil {
		sim.Close()
		return nil, err
	}
	log.Info("device registry initialised", "devices", registry.Len())

	sim.dispatcher = command.NewDispatcher(registry, hist)
	sim.dispatcher.SetLogger(log)

	publishers, err := sim.connectTelemetry(cfg, log)
	if err != nil {
		sim.Close()
		return nil, err
	}
	if len(publishers) > 0 {
		sim.dispatcher.SetPublisher(publishers)
	}

	hcCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	if hcErr := sim.healthCheck(hcCtx); hcErr != nil {
		log.Warn("startup health check failed", "error", hcErr)
	}

	return sim, nil
}

// connectTelemetry connects the enabled state publishers.
func (s *simulator) connectTelemetry(cfg *config.Config, log *logging.Logger) (telemetry.Fanout, error) {
	var publishers telemetry.Fanout

	if cfg.MQTT.Enabled {
		client, err := mqtt.Connect(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("connecting to MQTT: %w", err)
		}
		client.SetLogger(log)
		s.mqttClient = client
		s.onClose(func() {
			log.Info("disconnecting from MQTT")
			if closeErr := client.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		})
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)
		publishers = append(publishers, telemetry.NewMQTTPublisher(client))
	} else {
		log.Info("MQTT disabled")
	}

	if cfg.InfluxDB.Enabled {
		client, err := influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return nil, fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		client.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		s.influxClient = client
		s.onClose(func() {
			log.Info("closing InfluxDB connection")
			if closeErr := client.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		})
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)
		publishers = append(publishers, telemetry.NewInfluxPublisher(client))
	} else {
		log.Info("InfluxDB disabled")
	}

	return publishers, nil
}

// registerDevices creates each configured device, adds it to registry, and
// logs a "Device added" state change for it.
func registerDevices(registry *device.Registry, rec command.Recorder, devices []config.DeviceConfig) error {
	for _, dc := range devices {
		kind, err := device.ParseKind(dc.Type)
		if err != nil {
			return fmt.Errorf("registering %q: %w", dc.Name, err)
		}
		dev, err := device.New(kind, dc.Name)
		if err != nil {
			return fmt.Errorf("registering %q: %w", dc.Name, err)
		}
		if err := registry.Add(dev); err != nil {
			return fmt.Errorf("registering %q: %w", dc.Name, err)
		}
		rec.RecordStateChange(dev.Name(), "Device added")
	}
	return nil
}

// healthCheck verifies the enabled integrations are reachable.
//
// Returns:
//   - error: First health check failure, or nil if all healthy
func (s *simulator) healthCheck(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.HealthCheck(ctx); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if s.mqttClient != nil {
		if err := s.mqttClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
	}
	if s.influxClient != nil {
		if err := s.influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}
	return nil
}

func (s *simulator) onClose(fn func()) {
	s.closers = append(s.closers, fn)
}

// Close releases resources in reverse order of acquisition. It is safe to
// call more than once.
func (s *simulator) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
