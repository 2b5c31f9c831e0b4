package remote

import "fmt"

// Panasonic protocol constants (RKR model).
const (
	panasonicModeAuto = 0x0
	panasonicModeDry  = 0x2
	panasonicModeCool = 0x3
	panasonicModeHeat = 0x4
	panasonicModeFan  = 0x6

	panasonicFanAuto = 0xA
	panasonicFanMin  = 0x3
	panasonicFanMax  = 0x7

	// The RKR remote has no plain on/off swing toggle; "on" maps to the
	// automatic sweep position and "off" parks the louvre.
	panasonicSwingVAuto    = 0xF
	panasonicSwingVHighest = 0x1
	panasonicSwingHAuto    = 0xD
	panasonicSwingHMiddle  = 0x6

	panasonicMinTemp = 16
	panasonicMaxTemp = 30
)

// panasonicHeader is the fixed frame preamble.
var panasonicHeader = []byte{0x02, 0x20, 0xE0, 0x04}

// panasonic encodes commands for Panasonic RKR-series units.
type panasonic struct {
	tx Transmitter

	power    bool
	mode     byte
	temp     int
	fan      byte
	swingV   byte
	swingH   byte
	quiet    bool
	powerful bool
}

func newPanasonic(tx Transmitter) *panasonic {
	return &panasonic{
		tx:     tx,
		mode:   panasonicModeAuto,
		temp:   25,
		fan:    panasonicFanAuto,
		swingV: panasonicSwingVAuto,
		swingH: panasonicSwingHAuto,
	}
}

func (p *panasonic) Vendor() Vendor { return VendorPanasonic }

func (p *panasonic) On()  { p.power = true }
func (p *panasonic) Off() { p.power = false }

func (p *panasonic) SetMode(mode Mode) {
	switch mode {
	case ModeCool:
		p.mode = panasonicModeCool
	case ModeHeat:
		p.mode = panasonicModeHeat
	case ModeFan:
		p.mode = panasonicModeFan
	case ModeDry:
		p.mode = panasonicModeDry
	case ModeAuto:
		p.mode = panasonicModeAuto
	case ModeOff:
		p.power = false
	}
}

func (p *panasonic) SetFan(speed FanSpeed) {
	switch speed {
	case FanMin:
		p.fan = panasonicFanMin
	case FanMax:
		p.fan = panasonicFanMax
	default:
		p.fan = panasonicFanAuto
	}
}

func (p *panasonic) SetTemp(celsius int) {
	if celsius < panasonicMinTemp {
		celsius = panasonicMinTemp
	}
	if celsius > panasonicMaxTemp {
		celsius = panasonicMaxTemp
	}
	p.temp = celsius
}

func (p *panasonic) SetSwingVertical(on bool) {
	if on {
		p.swingV = panasonicSwingVAuto
	} else {
		p.swingV = panasonicSwingVHighest
	}
}

func (p *panasonic) SetSwingHorizontal(on bool) {
	if on {
		p.swingH = panasonicSwingHAuto
	} else {
		p.swingH = panasonicSwingHMiddle
	}
}

func (p *panasonic) SetQuiet(on bool)    { p.quiet = on }
func (p *panasonic) SetPowerful(on bool) { p.powerful = on }

// frame builds the command frame: header, power/mode, temperature, fan and
// swing nibbles, feature bits, checksum.
func (p *panasonic) frame() []byte {
	f := make([]byte, 0, 10)
	f = append(f, panasonicHeader...)
	f = append(f, boolByte(p.power)|p.mode<<4)
	f = append(f, byte(p.temp)<<1) //nolint:gosec // temp clamped to 16..30
	f = append(f, p.fan<<4|p.swingV)
	f = append(f, p.swingH)
	f = append(f, boolByte(p.powerful)|boolByte(p.quiet)<<5)
	f = append(f, checksum(f))
	return f
}

func (p *panasonic) Send() error {
	return p.tx.Transmit(p.frame())
}

func (p *panasonic) String() string {
	return fmt.Sprintf("panasonic: power=%t mode=%#x temp=%d fan=%#x swingV=%#x swingH=%#x quiet=%t powerful=%t",
		p.power, p.mode, p.temp, p.fan, p.swingV, p.swingH, p.quiet, p.powerful)
}
