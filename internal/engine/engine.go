package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/nerrad567/aircon-core/internal/infrastructure/logging"
	"github.com/nerrad567/aircon-core/internal/remote"
	"github.com/nerrad567/aircon-core/internal/sensor"
	"github.com/nerrad567/aircon-core/internal/settings"
)

// eventQueueSize bounds the inbound event channel. Commands arriving
// while the queue is full are dropped with a warning; a human mashing a
// UI button recovers, a wedged control loop does not get worse.
const eventQueueSize = 16

// Broadcaster delivers a state payload to every connected client.
// Implementations must not block; the engine calls it from its control
// loop.
type Broadcaster interface {
	Broadcast(state []byte)
}

// Telemetry records numeric device metrics. The InfluxDB client
// satisfies this; NopTelemetry stands in when telemetry is disabled.
type Telemetry interface {
	WriteDeviceMetric(deviceID string, measurement string, value float64)
}

// NopTelemetry is a Telemetry that discards every metric.
type NopTelemetry struct{}

func (NopTelemetry) WriteDeviceMetric(string, string, float64) {}

// nopBroadcaster is used when no transport is wired up, mainly in tests.
type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast([]byte) {}

type eventKind int

const (
	eventCommand eventKind = iota
	eventConnect
)

type event struct {
	kind    eventKind
	payload []byte
}

// Engine owns the device state and drives the remote control backend.
//
// All state transitions happen on the goroutine running Run; transports
// hand work in through Submit and NotifyConnect. Because a single
// goroutine owns everything, the engine itself needs no locks.
type Engine struct {
	remote      remote.Remote
	store       settings.Store
	sensor      sensor.Reader
	broadcaster Broadcaster
	indicator   Indicator
	telemetry   Telemetry
	logger      *logging.Logger

	deviceID        string
	refreshInterval time.Duration

	state State

	// dirty is set when a persisted preference changed since the last
	// flush. One flush per command cycle, and only when needed.
	dirty bool

	lastRefresh time.Time
	events      chan event
}

// Options configures a new Engine. Remote, Settings and Sensor are
// required; the rest default to no-op implementations.
type Options struct {
	Remote          remote.Remote
	Settings        settings.Store
	Sensor          sensor.Reader
	Broadcaster     Broadcaster
	Indicator       Indicator
	Telemetry       Telemetry
	Logger          *logging.Logger
	DeviceID        string
	RefreshInterval time.Duration
}

// New creates an Engine in the default power-on state. Call Restore
// before Run to overlay persisted preferences.
func New(opts Options) *Engine {
	if opts.Broadcaster == nil {
		opts.Broadcaster = nopBroadcaster{}
	}
	if opts.Indicator == nil {
		opts.Indicator = NopIndicator{}
	}
	if opts.Telemetry == nil {
		opts.Telemetry = NopTelemetry{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = 30 * time.Second
	}

	return &Engine{
		remote:          opts.Remote,
		store:           opts.Settings,
		sensor:          opts.Sensor,
		broadcaster:     opts.Broadcaster,
		indicator:       opts.Indicator,
		telemetry:       opts.Telemetry,
		logger:          opts.Logger.With("component", "engine"),
		deviceID:        opts.DeviceID,
		refreshInterval: opts.RefreshInterval,
		state:           defaultState(),
		events:          make(chan event, eventQueueSize),
	}
}

// Run drives the control loop until ctx is cancelled. It processes
// submitted commands, greets new connections with the current state and
// refreshes the environment reading on its own clock.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	e.logger.Info("control loop started",
		"device_id", e.deviceID,
		"refresh_interval", e.refreshInterval.String(),
	)

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("control loop stopped")
			return
		case ev := <-e.events:
			switch ev.kind {
			case eventCommand:
				e.IncomingRequest(ev.payload)
			case eventConnect:
				e.broadcast()
			}
		case now := <-ticker.C:
			e.Tick(now)
		}
	}
}

// Submit queues a command payload for the control loop. If the queue is
// full the payload is dropped and a warning logged.
func (e *Engine) Submit(payload []byte) {
	select {
	case e.events <- event{kind: eventCommand, payload: payload}:
	default:
		e.logger.Warn("command queue full, dropping request", "size", len(payload))
	}
}

// NotifyConnect asks the control loop to rebroadcast the current state,
// bringing a newly connected client up to date.
func (e *Engine) NotifyConnect() {
	select {
	case e.events <- event{kind: eventConnect}:
	default:
		e.logger.Warn("command queue full, dropping connect notification")
	}
}

// Restore loads the persisted preferences and primes the remote backend
// with the full current state. Nothing is transmitted; the unit keeps
// whatever it was doing, but the next Send carries a frame consistent
// with what clients see.
func (e *Engine) Restore() error {
	loadBool := func(field settings.Field, dst *bool) error {
		raw, err := e.store.Get(field)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrRestoreFailed, field, err)
		}
		*dst = settings.DecodeBool(raw)
		return nil
	}

	if err := loadBool(settings.FieldVerticalSwing, &e.state.VerticalSwing); err != nil {
		return err
	}
	if err := loadBool(settings.FieldHorizontalSwing, &e.state.HorizontalSwing); err != nil {
		return err
	}
	if err := loadBool(settings.FieldQuietMode, &e.state.QuietMode); err != nil {
		return err
	}
	if err := loadBool(settings.FieldPowerfulMode, &e.state.PowerfulMode); err != nil {
		return err
	}

	// Replaying the state through the setters pushes every value into
	// the remote encoder. The values already match, so nothing is
	// re-persisted and nothing is logged as a change.
	e.SetMode(e.state.TargetMode)
	e.SetFanSpeed(e.state.TargetFanSpeed)
	e.SetTargetTemperature(e.state.TargetTemperature)
	e.SetVerticalSwing(e.state.VerticalSwing)
	e.SetHorizontalSwing(e.state.HorizontalSwing)
	e.SetQuietMode(e.state.QuietMode)
	e.SetPowerfulMode(e.state.PowerfulMode)

	e.logger.Info("settings restored",
		"vertical_swing", e.state.VerticalSwing,
		"horizontal_swing", e.state.HorizontalSwing,
		"quiet_mode", e.state.QuietMode,
		"powerful_mode", e.state.PowerfulMode,
	)

	return nil
}

// SetMode requests an operating mode. Unknown values are coerced to off
// with a warning. The remote backend is always updated, even when the
// value matches the current state.
func (e *Engine) SetMode(value string) {
	mode, ok := remote.ParseMode(value)
	if !ok {
		e.logger.Warn("unknown mode, coercing to off", "value", value)
	}

	if mode == remote.ModeOff {
		e.remote.Off()
	} else {
		e.remote.On()
		e.remote.SetMode(mode)
	}

	if string(mode) != e.state.TargetMode {
		e.logger.Info("mode changed", "from", e.state.TargetMode, "to", string(mode))
		e.state.TargetMode = string(mode)
	}
}

// SetFanSpeed requests a fan speed. Unknown values are coerced to auto
// with a warning.
func (e *Engine) SetFanSpeed(value string) {
	fan, ok := remote.ParseFanSpeed(value)
	if !ok {
		e.logger.Warn("unknown fan speed, coercing to auto", "value", value)
	}

	e.remote.SetFan(fan)

	if string(fan) != e.state.TargetFanSpeed {
		e.logger.Info("fan speed changed", "from", e.state.TargetFanSpeed, "to", string(fan))
		e.state.TargetFanSpeed = string(fan)
	}
}

// SetTargetTemperature requests a setpoint in degrees Celsius. The
// remote encoder clamps to whatever its protocol supports.
func (e *Engine) SetTargetTemperature(value int) {
	e.remote.SetTemp(value)

	if value != e.state.TargetTemperature {
		e.logger.Info("target temperature changed", "from", e.state.TargetTemperature, "to", value)
		e.state.TargetTemperature = value
	}
}

// SetVerticalSwing toggles vertical louvre oscillation. The preference
// is persisted on change.
func (e *Engine) SetVerticalSwing(on bool) {
	e.remote.SetSwingVertical(on)

	if on != e.state.VerticalSwing {
		e.logger.Info("vertical swing changed", "to", on)
		e.state.VerticalSwing = on
		e.persist(settings.FieldVerticalSwing, settings.EncodeBool(on))
	}
}

// SetHorizontalSwing toggles horizontal louvre oscillation. The
// preference is persisted on change.
func (e *Engine) SetHorizontalSwing(on bool) {
	e.remote.SetSwingHorizontal(on)

	if on != e.state.HorizontalSwing {
		e.logger.Info("horizontal swing changed", "to", on)
		e.state.HorizontalSwing = on
		e.persist(settings.FieldHorizontalSwing, settings.EncodeBool(on))
	}
}

// SetQuietMode toggles quiet mode. Enabling it forces powerful mode off
// first; the two never hold simultaneously.
func (e *Engine) SetQuietMode(on bool) {
	if on {
		e.applyPowerful(false)
	}
	e.applyQuiet(on)
}

// SetPowerfulMode toggles powerful mode. Enabling it forces quiet mode
// off first; the two never hold simultaneously.
func (e *Engine) SetPowerfulMode(on bool) {
	if on {
		e.applyQuiet(false)
	}
	e.applyPowerful(on)
}

// applyQuiet and applyPowerful are the single write paths for the two
// exclusive flags. The public setters sequence them; neither calls the
// other, so there is no recursion to reason about.
func (e *Engine) applyQuiet(on bool) {
	e.remote.SetQuiet(on)

	if on != e.state.QuietMode {
		e.logger.Info("quiet mode changed", "to", on)
		e.state.QuietMode = on
		e.persist(settings.FieldQuietMode, settings.EncodeBool(on))
	}
}

func (e *Engine) applyPowerful(on bool) {
	e.remote.SetPowerful(on)

	if on != e.state.PowerfulMode {
		e.logger.Info("powerful mode changed", "to", on)
		e.state.PowerfulMode = on
		e.persist(settings.FieldPowerfulMode, settings.EncodeBool(on))
	}
}

// persist buffers a settings write and marks the cycle dirty. Failures
// are logged and the flag stays clean; better a lost preference than a
// controller that stops responding.
func (e *Engine) persist(field settings.Field, value byte) {
	if err := e.store.Set(field, value); err != nil {
		e.logger.Error("buffering setting failed", "field", string(field), "error", err)
		return
	}
	e.dirty = true
}

// IncomingRequest applies a client command payload and runs one command
// cycle. Each known key is parsed independently; a malformed or missing
// key leaves that setting untouched while the rest still apply. The
// cycle always ends with a transmission so the unit converges on
// whatever was accepted.
func (e *Engine) IncomingRequest(payload []byte) {
	e.logger.Debug("incoming request", "payload", string(payload))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		e.logger.Warn("malformed request payload", "error", err)
	}

	if raw, ok := fields["targetMode"]; ok {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			e.logger.Warn("ignoring targetMode", "error", err)
		} else {
			e.SetMode(v)
		}
	}
	if raw, ok := fields["targetFanSpeed"]; ok {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			e.logger.Warn("ignoring targetFanSpeed", "error", err)
		} else {
			e.SetFanSpeed(v)
		}
	}
	if raw, ok := fields["targetTemperature"]; ok {
		var v int
		if err := json.Unmarshal(raw, &v); err != nil {
			e.logger.Warn("ignoring targetTemperature", "error", err)
		} else {
			e.SetTargetTemperature(v)
		}
	}
	if raw, ok := fields["verticalSwing"]; ok {
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			e.logger.Warn("ignoring verticalSwing", "error", err)
		} else {
			e.SetVerticalSwing(v)
		}
	}
	if raw, ok := fields["horizontalSwing"]; ok {
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			e.logger.Warn("ignoring horizontalSwing", "error", err)
		} else {
			e.SetHorizontalSwing(v)
		}
	}
	if raw, ok := fields["quietMode"]; ok {
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			e.logger.Warn("ignoring quietMode", "error", err)
		} else {
			e.SetQuietMode(v)
		}
	}
	if raw, ok := fields["powerfulMode"]; ok {
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			e.logger.Warn("ignoring powerfulMode", "error", err)
		} else {
			e.SetPowerfulMode(v)
		}
	}

	e.Send()
}

// Send runs one command cycle: transmit the current frame, broadcast
// the resulting state and flush persisted settings when something
// changed. Transmission failures are logged, not fatal; clients still
// see the intended state and the next cycle retries implicitly.
func (e *Engine) Send() {
	e.indicator.TransmitStart()
	if err := e.remote.Send(); err != nil {
		e.logger.Warn("transmission failed", "error", err)
	}
	e.indicator.TransmitEnd()

	e.broadcast()

	if e.dirty {
		if err := e.store.Flush(); err != nil {
			e.logger.Error("flushing settings failed", "error", err)
			return
		}
		e.dirty = false
	}
}

// RefreshReading samples the environment sensor. Errors and NaN samples
// keep the previous values so clients never see a bogus spike.
func (e *Engine) RefreshReading() {
	reading, err := e.sensor.Read()
	if err != nil {
		e.logger.Warn("sensor read failed, keeping previous reading", "error", err)
		return
	}
	if math.IsNaN(reading.Temperature) || math.IsNaN(reading.Humidity) {
		e.logger.Warn("sensor returned NaN, keeping previous reading")
		return
	}

	e.state.CurrentTemperature = reading.Temperature
	e.state.CurrentHumidity = reading.Humidity

	e.telemetry.WriteDeviceMetric(e.deviceID, "temperature_c", reading.Temperature)
	e.telemetry.WriteDeviceMetric(e.deviceID, "humidity_pct", reading.Humidity)
}

// Tick refreshes the environment reading and rebroadcasts once the
// refresh interval has elapsed. Called every second by the control
// loop; cheap when there is nothing to do.
func (e *Engine) Tick(now time.Time) {
	if now.Sub(e.lastRefresh) < e.refreshInterval {
		return
	}
	e.lastRefresh = now

	e.RefreshReading()
	e.broadcast()
}

// Snapshot returns a copy of the current state. Safe only from the
// control goroutine or before Run starts.
func (e *Engine) Snapshot() State {
	return e.state
}

// MarshalState serialises the current state as the wire payload.
func (e *Engine) MarshalState() ([]byte, error) {
	b, err := json.Marshal(e.state)
	if err != nil {
		return nil, fmt.Errorf("marshalling state: %w", err)
	}
	return b, nil
}

func (e *Engine) broadcast() {
	b, err := e.MarshalState()
	if err != nil {
		e.logger.Error("broadcast skipped", "error", err)
		return
	}
	e.broadcaster.Broadcast(b)
}
