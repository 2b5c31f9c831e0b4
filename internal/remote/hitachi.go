package remote

import "fmt"

// Hitachi protocol constants.
const (
	hitachiModeAuto = 0x2
	hitachiModeHeat = 0x3
	hitachiModeCool = 0x4
	hitachiModeDry  = 0x5
	hitachiModeFan  = 0xC

	hitachiFanAuto = 0x1
	hitachiFanLow  = 0x2
	hitachiFanHigh = 0x5

	hitachiMinTemp = 16
	hitachiMaxTemp = 32
)

// hitachiHeader is the fixed frame preamble.
var hitachiHeader = []byte{0x80, 0x08, 0x00, 0x02}

// hitachi encodes commands for Hitachi units.
//
// The protocol has no quiet or powerful feature; those setters are no-ops
// so the controller can treat all vendors uniformly.
type hitachi struct {
	tx Transmitter

	power  bool
	mode   byte
	temp   int
	fan    byte
	swingV bool
	swingH bool
}

func newHitachi(tx Transmitter) *hitachi {
	return &hitachi{
		tx:   tx,
		mode: hitachiModeAuto,
		temp: 23,
		fan:  hitachiFanAuto,
	}
}

func (h *hitachi) Vendor() Vendor { return VendorHitachi }

func (h *hitachi) On()  { h.power = true }
func (h *hitachi) Off() { h.power = false }

func (h *hitachi) SetMode(mode Mode) {
	switch mode {
	case ModeCool:
		h.mode = hitachiModeCool
	case ModeHeat:
		h.mode = hitachiModeHeat
	case ModeFan:
		h.mode = hitachiModeFan
	case ModeDry:
		h.mode = hitachiModeDry
	case ModeAuto:
		h.mode = hitachiModeAuto
	case ModeOff:
		h.power = false
	}
}

func (h *hitachi) SetFan(speed FanSpeed) {
	switch speed {
	case FanMin:
		h.fan = hitachiFanLow
	case FanMax:
		h.fan = hitachiFanHigh
	default:
		h.fan = hitachiFanAuto
	}
}

func (h *hitachi) SetTemp(celsius int) {
	if celsius < hitachiMinTemp {
		celsius = hitachiMinTemp
	}
	if celsius > hitachiMaxTemp {
		celsius = hitachiMaxTemp
	}
	h.temp = celsius
}

func (h *hitachi) SetSwingVertical(on bool)   { h.swingV = on }
func (h *hitachi) SetSwingHorizontal(on bool) { h.swingH = on }

// SetQuiet is a no-op; the Hitachi protocol has no quiet mode.
func (h *hitachi) SetQuiet(bool) {}

// SetPowerful is a no-op; the Hitachi protocol has no powerful mode.
func (h *hitachi) SetPowerful(bool) {}

// frame builds the command frame: header, power/mode, temperature, fan,
// swing bits, checksum.
func (h *hitachi) frame() []byte {
	f := make([]byte, 0, 10)
	f = append(f, hitachiHeader...)
	f = append(f, boolByte(h.power)|h.mode<<4)
	f = append(f, byte(h.temp)) //nolint:gosec // temp clamped to 16..32
	f = append(f, h.fan)
	f = append(f, boolByte(h.swingV)|boolByte(h.swingH)<<1)
	f = append(f, checksum(f))
	return f
}

func (h *hitachi) Send() error {
	return h.tx.Transmit(h.frame())
}

func (h *hitachi) String() string {
	return fmt.Sprintf("hitachi: power=%t mode=%#x temp=%d fan=%#x swingV=%t swingH=%t",
		h.power, h.mode, h.temp, h.fan, h.swingV, h.swingH)
}
