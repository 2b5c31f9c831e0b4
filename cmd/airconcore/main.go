// Aircon Core - air conditioner controller daemon
//
// This is the main entry point for the aircon-core application: a
// single-unit AC controller that encodes vendor IR protocols, keeps
// connected clients synchronised over WebSocket and MQTT, persists
// user preferences across restarts and records room telemetry.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/aircon-core/internal/api"
	"github.com/nerrad567/aircon-core/internal/engine"
	"github.com/nerrad567/aircon-core/internal/infrastructure/config"
	"github.com/nerrad567/aircon-core/internal/infrastructure/database"
	"github.com/nerrad567/aircon-core/internal/infrastructure/influxdb"
	"github.com/nerrad567/aircon-core/internal/infrastructure/logging"
	"github.com/nerrad567/aircon-core/internal/infrastructure/mqtt"
	"github.com/nerrad567/aircon-core/internal/remote"
	"github.com/nerrad567/aircon-core/internal/sensor"
	"github.com/nerrad567/aircon-core/internal/settings"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting aircon-core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Settings store
	store, err := settings.NewSQLiteStore(ctx, db)
	if err != nil {
		return fmt.Errorf("opening settings store: %w", err)
	}
	defer store.Close() //nolint:errcheck // Close only marks the store closed

	// Protocol backend
	transmitter := remote.NewDeviceTransmitter(cfg.Remote.Device)
	rmt, err := remote.New(remote.Vendor(cfg.Remote.Vendor), transmitter)
	if err != nil {
		return fmt.Errorf("creating remote: %w", err)
	}
	log.Info("remote backend ready", "vendor", rmt.Vendor(), "device", cfg.Remote.Device)

	// Ambient sensor
	reader := sensor.NewIIOReader(cfg.Sensor.TemperaturePath, cfg.Sensor.HumidityPath)

	// Transmit indicator LED (optional)
	var indicator engine.Indicator = engine.NopIndicator{}
	if cfg.Remote.LEDPath != "" {
		indicator = engine.NewLEDIndicator(cfg.Remote.LEDPath)
	}

	// Connect to MQTT broker (optional)
	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		mqttClient.SetLogger(log)
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)
	} else {
		log.Info("MQTT disabled")
	}

	// Connect to InfluxDB (optional)
	var telemetry engine.Telemetry = engine.NopTelemetry{}
	var influxClient *influxdb.Client
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		telemetry = influxClient
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)
	} else {
		log.Info("InfluxDB disabled")
	}

	// The hub is created before the engine so both the engine (as its
	// broadcast target) and the API server (as its WebSocket core) can
	// share it.
	hub := api.NewHub(cfg.WebSocket, log)

	eng := engine.New(engine.Options{
		Remote:          rmt,
		Settings:        store,
		Sensor:          reader,
		Broadcaster:     &broadcastFanout{hub: hub, mqtt: mqttClient, log: log},
		Indicator:       indicator,
		Telemetry:       telemetry,
		Logger:          log,
		DeviceID:        cfg.Device.ID,
		RefreshInterval: cfg.GetRefreshInterval(),
	})

	// Restore persisted preferences and take an initial reading before
	// anything connects.
	if err := eng.Restore(); err != nil {
		return fmt.Errorf("restoring settings: %w", err)
	}
	eng.RefreshReading()

	go eng.Run(ctx)

	// Commands arrive over MQTT as well as WebSocket.
	if mqttClient != nil {
		if err := mqttClient.Subscribe(mqtt.TopicCommand, byte(cfg.MQTT.QoS), func(_ string, payload []byte) error {
			eng.Submit(payload)
			return nil
		}); err != nil {
			return fmt.Errorf("subscribing to command topic: %w", err)
		}
		log.Info("subscribed to command topic", "topic", mqtt.TopicCommand)
	}

	// HTTP + WebSocket server
	server, err := api.New(api.Deps{
		Config:     cfg.API,
		WS:         cfg.WebSocket,
		Logger:     log,
		Controller: eng,
		Hub:        hub,
		Version:    version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	if err := healthCheck(ctx, db, mqttClient, influxClient, server); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls run in reverse order:
	// 1. API server
	// 2. InfluxDB (if enabled)
	// 3. MQTT (if enabled)
	// 4. Settings store, database

	log.Info("aircon-core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses AIRCON_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("AIRCON_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies all infrastructure connections are healthy.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - db: Database connection to check
//   - mqttClient: MQTT client to check (may be nil if disabled)
//   - influxClient: InfluxDB client to check (may be nil if disabled)
//   - server: API server to check
//
// Returns:
//   - error: First health check failure, or nil if all healthy
func healthCheck(ctx context.Context, db *database.DB, mqttClient *mqtt.Client, influxClient *influxdb.Client, server *api.Server) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if mqttClient != nil {
		if err := mqttClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
	}

	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}

	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	return nil
}

// broadcastFanout delivers state payloads to every transport: the
// WebSocket hub always, and the MQTT state topic when a broker is
// configured. Satisfies the engine's Broadcaster interface.
type broadcastFanout struct {
	hub  *api.Hub
	mqtt *mqtt.Client
	log  *logging.Logger
}

// Broadcast implements engine.Broadcaster.
func (b *broadcastFanout) Broadcast(state []byte) {
	b.hub.Broadcast(state)

	if b.mqtt != nil {
		if err := b.mqtt.PublishState(state); err != nil {
			b.log.Warn("MQTT state publish failed", "error", err)
		}
	}
}
