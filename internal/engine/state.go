package engine

import "github.com/nerrad567/aircon-core/internal/remote"

// State is the controller's view of the air conditioner plus the latest
// environment sample. It is what goes over the wire to every client, so
// the JSON field names are part of the external contract.
type State struct {
	// CurrentTemperature is the last room temperature sample in
	// degrees Celsius.
	CurrentTemperature float64 `json:"currentTemperature"`

	// CurrentHumidity is the last relative humidity sample in percent.
	CurrentHumidity float64 `json:"currentHumidity"`

	// TargetMode is the requested operating mode (off, cool, heat,
	// fan, auto, dry).
	TargetMode string `json:"targetMode"`

	// TargetFanSpeed is the requested fan speed (auto, min, max).
	TargetFanSpeed string `json:"targetFanSpeed"`

	// TargetTemperature is the requested setpoint in degrees Celsius.
	TargetTemperature int `json:"targetTemperature"`

	// VerticalSwing enables vertical louvre oscillation.
	VerticalSwing bool `json:"verticalSwing"`

	// HorizontalSwing enables horizontal louvre oscillation.
	HorizontalSwing bool `json:"horizontalSwing"`

	// QuietMode trades airflow for lower noise. Mutually exclusive
	// with PowerfulMode.
	QuietMode bool `json:"quietMode"`

	// PowerfulMode runs the unit at maximum output. Mutually exclusive
	// with QuietMode.
	PowerfulMode bool `json:"powerfulMode"`
}

// defaultState is the state of a freshly started controller before
// Restore overlays the persisted preferences.
func defaultState() State {
	return State{
		TargetMode:        string(remote.ModeOff),
		TargetFanSpeed:    string(remote.FanAuto),
		TargetTemperature: 23,
		VerticalSwing:     true,
		HorizontalSwing:   true,
		QuietMode:         false,
		PowerfulMode:      false,
	}
}
