package remote

import "fmt"

// Daikin protocol constants.
const (
	daikinModeAuto = 0x0
	daikinModeDry  = 0x2
	daikinModeCool = 0x3
	daikinModeHeat = 0x4
	daikinModeFan  = 0x6

	daikinFanAuto = 0xA
	daikinFanMin  = 0x1
	daikinFanMax  = 0x5

	// Vertical/horizontal swing use the "full sweep" nibble when enabled.
	daikinSwingOn  = 0xF
	daikinSwingOff = 0x0

	daikinMinTemp = 10
	daikinMaxTemp = 32
)

// daikinHeader is the fixed frame preamble.
var daikinHeader = []byte{0x11, 0xDA, 0x27}

// daikin encodes commands for Daikin split units.
type daikin struct {
	tx Transmitter

	power    bool
	mode     byte
	temp     int
	fan      byte
	swingV   bool
	swingH   bool
	quiet    bool
	powerful bool
}

func newDaikin(tx Transmitter) *daikin {
	return &daikin{
		tx:   tx,
		mode: daikinModeAuto,
		temp: 25,
		fan:  daikinFanAuto,
	}
}

func (d *daikin) Vendor() Vendor { return VendorDaikin }

func (d *daikin) On()  { d.power = true }
func (d *daikin) Off() { d.power = false }

func (d *daikin) SetMode(mode Mode) {
	switch mode {
	case ModeCool:
		d.mode = daikinModeCool
	case ModeHeat:
		d.mode = daikinModeHeat
	case ModeFan:
		d.mode = daikinModeFan
	case ModeDry:
		d.mode = daikinModeDry
	case ModeAuto:
		d.mode = daikinModeAuto
	case ModeOff:
		d.power = false
	}
}

func (d *daikin) SetFan(speed FanSpeed) {
	switch speed {
	case FanMin:
		d.fan = daikinFanMin
	case FanMax:
		d.fan = daikinFanMax
	default:
		d.fan = daikinFanAuto
	}
}

func (d *daikin) SetTemp(celsius int) {
	if celsius < daikinMinTemp {
		celsius = daikinMinTemp
	}
	if celsius > daikinMaxTemp {
		celsius = daikinMaxTemp
	}
	d.temp = celsius
}

func (d *daikin) SetSwingVertical(on bool)   { d.swingV = on }
func (d *daikin) SetSwingHorizontal(on bool) { d.swingH = on }
func (d *daikin) SetQuiet(on bool)           { d.quiet = on }
func (d *daikin) SetPowerful(on bool)        { d.powerful = on }

// frame builds the command frame: header, power/mode, temperature in
// half-degree units, fan+swing nibbles, feature bits, checksum.
func (d *daikin) frame() []byte {
	f := make([]byte, 0, 10)
	f = append(f, daikinHeader...)
	f = append(f, boolByte(d.power)|d.mode<<4)
	f = append(f, byte(d.temp*2)) //nolint:gosec // temp clamped to 10..32
	swingV, swingH := byte(daikinSwingOff), byte(daikinSwingOff)
	if d.swingV {
		swingV = daikinSwingOn
	}
	if d.swingH {
		swingH = daikinSwingOn
	}
	f = append(f, d.fan<<4|swingV)
	f = append(f, swingH)
	f = append(f, boolByte(d.powerful)|boolByte(d.quiet)<<5)
	f = append(f, checksum(f))
	return f
}

func (d *daikin) Send() error {
	return d.tx.Transmit(d.frame())
}

func (d *daikin) String() string {
	return fmt.Sprintf("daikin: power=%t mode=%#x temp=%d fan=%#x swingV=%t swingH=%t quiet=%t powerful=%t",
		d.power, d.mode, d.temp, d.fan, d.swingV, d.swingH, d.quiet, d.powerful)
}
