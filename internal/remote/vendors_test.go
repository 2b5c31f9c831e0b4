package remote

import "testing"

func TestDaikin_TempClamping(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{name: "below range", input: 5, want: daikinMinTemp},
		{name: "above range", input: 40, want: daikinMaxTemp},
		{name: "in range", input: 22, want: 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDaikin(&recordingTransmitter{})
			d.SetTemp(tt.input)
			if d.temp != tt.want {
				t.Errorf("SetTemp(%d): temp = %d, want %d", tt.input, d.temp, tt.want)
			}
		})
	}
}

func TestDaikin_ModeOffClearsPower(t *testing.T) {
	d := newDaikin(&recordingTransmitter{})
	d.On()
	d.SetMode(ModeOff)
	if d.power {
		t.Error("SetMode(ModeOff) should clear power")
	}
}

func TestPanasonic_SwingPositions(t *testing.T) {
	p := newPanasonic(&recordingTransmitter{})

	p.SetSwingVertical(true)
	if p.swingV != panasonicSwingVAuto {
		t.Errorf("swingV on = %#x, want auto %#x", p.swingV, panasonicSwingVAuto)
	}
	p.SetSwingVertical(false)
	if p.swingV != panasonicSwingVHighest {
		t.Errorf("swingV off = %#x, want highest %#x", p.swingV, panasonicSwingVHighest)
	}

	p.SetSwingHorizontal(true)
	if p.swingH != panasonicSwingHAuto {
		t.Errorf("swingH on = %#x, want auto %#x", p.swingH, panasonicSwingHAuto)
	}
	p.SetSwingHorizontal(false)
	if p.swingH != panasonicSwingHMiddle {
		t.Errorf("swingH off = %#x, want middle %#x", p.swingH, panasonicSwingHMiddle)
	}
}

func TestPanasonic_TempClamping(t *testing.T) {
	p := newPanasonic(&recordingTransmitter{})

	p.SetTemp(10)
	if p.temp != panasonicMinTemp {
		t.Errorf("SetTemp(10): temp = %d, want %d", p.temp, panasonicMinTemp)
	}
	p.SetTemp(35)
	if p.temp != panasonicMaxTemp {
		t.Errorf("SetTemp(35): temp = %d, want %d", p.temp, panasonicMaxTemp)
	}
}

func TestHitachi_QuietPowerfulAreNoOps(t *testing.T) {
	h := newHitachi(&recordingTransmitter{})
	tx := &recordingTransmitter{}
	h.tx = tx

	h.On()
	h.SetMode(ModeCool)
	if err := h.Send(); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	h.SetQuiet(true)
	h.SetPowerful(true)
	if err := h.Send(); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if string(tx.frames[0]) != string(tx.frames[1]) {
		t.Error("quiet/powerful changed the Hitachi frame; protocol has no such feature")
	}
}

func TestHitachi_FanMapping(t *testing.T) {
	h := newHitachi(&recordingTransmitter{})

	h.SetFan(FanMin)
	if h.fan != hitachiFanLow {
		t.Errorf("FanMin: fan = %#x, want low %#x", h.fan, hitachiFanLow)
	}
	h.SetFan(FanMax)
	if h.fan != hitachiFanHigh {
		t.Errorf("FanMax: fan = %#x, want high %#x", h.fan, hitachiFanHigh)
	}
	h.SetFan(FanAuto)
	if h.fan != hitachiFanAuto {
		t.Errorf("FanAuto: fan = %#x, want auto %#x", h.fan, hitachiFanAuto)
	}
}
