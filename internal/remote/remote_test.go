package remote

import (
	"errors"
	"testing"
)

// recordingTransmitter captures transmitted frames for assertions.
type recordingTransmitter struct {
	frames [][]byte
	err    error
}

func (r *recordingTransmitter) Transmit(frame []byte) error {
	if r.err != nil {
		return r.err
	}
	cp := make([]byte, len(frame))
	copy(cp, frame)
	r.frames = append(r.frames, cp)
	return nil
}

func TestNew_VendorSelection(t *testing.T) {
	tests := []struct {
		name    string
		vendor  Vendor
		want    Vendor
		wantErr bool
	}{
		{name: "daikin", vendor: VendorDaikin, want: VendorDaikin},
		{name: "panasonic", vendor: VendorPanasonic, want: VendorPanasonic},
		{name: "hitachi", vendor: VendorHitachi, want: VendorHitachi},
		{name: "case insensitive", vendor: Vendor("Daikin"), want: VendorDaikin},
		{name: "unknown", vendor: Vendor("toshiba"), wantErr: true},
		{name: "empty", vendor: Vendor(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.vendor, &recordingTransmitter{})
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownVendor) {
					t.Fatalf("New(%q) error = %v, want ErrUnknownVendor", tt.vendor, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.vendor, err)
			}
			if r.Vendor() != tt.want {
				t.Errorf("Vendor() = %q, want %q", r.Vendor(), tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input  string
		want   Mode
		wantOK bool
	}{
		{"off", ModeOff, true},
		{"cool", ModeCool, true},
		{"heat", ModeHeat, true},
		{"fan", ModeFan, true},
		{"auto", ModeAuto, true},
		{"dry", ModeDry, true},
		{"COOL", ModeCool, true},
		{"Heat", ModeHeat, true},
		{"bogus", ModeOff, false},
		{"", ModeOff, false},
	}

	for _, tt := range tests {
		got, ok := ParseMode(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMode(%q) = (%q, %t), want (%q, %t)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseFanSpeed(t *testing.T) {
	tests := []struct {
		input  string
		want   FanSpeed
		wantOK bool
	}{
		{"auto", FanAuto, true},
		{"min", FanMin, true},
		{"max", FanMax, true},
		{"MAX", FanMax, true},
		{"medium", FanAuto, false},
		{"", FanAuto, false},
	}

	for _, tt := range tests {
		got, ok := ParseFanSpeed(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseFanSpeed(%q) = (%q, %t), want (%q, %t)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSend_EmitsSingleFrame(t *testing.T) {
	for _, vendor := range []Vendor{VendorDaikin, VendorPanasonic, VendorHitachi} {
		t.Run(string(vendor), func(t *testing.T) {
			tx := &recordingTransmitter{}
			r, err := New(vendor, tx)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			r.On()
			r.SetMode(ModeCool)
			r.SetTemp(22)
			if err := r.Send(); err != nil {
				t.Fatalf("Send() error = %v", err)
			}

			if len(tx.frames) != 1 {
				t.Fatalf("transmitted %d frames, want 1", len(tx.frames))
			}
		})
	}
}

func TestSend_PropagatesTransmitError(t *testing.T) {
	tx := &recordingTransmitter{err: ErrTransmitFailed}
	r, err := New(VendorDaikin, tx)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := r.Send(); !errors.Is(err, ErrTransmitFailed) {
		t.Errorf("Send() error = %v, want ErrTransmitFailed", err)
	}
}

func TestFrame_ChecksumIsLowByteSum(t *testing.T) {
	for _, vendor := range []Vendor{VendorDaikin, VendorPanasonic, VendorHitachi} {
		t.Run(string(vendor), func(t *testing.T) {
			tx := &recordingTransmitter{}
			r, err := New(vendor, tx)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			r.On()
			r.SetMode(ModeHeat)
			r.SetFan(FanMax)
			r.SetTemp(20)
			if err := r.Send(); err != nil {
				t.Fatalf("Send() error = %v", err)
			}

			frame := tx.frames[0]
			body, sum := frame[:len(frame)-1], frame[len(frame)-1]
			if got := checksum(body); got != sum {
				t.Errorf("frame checksum = %#x, want %#x", sum, got)
			}
		})
	}
}

func TestFrame_ChangesWithState(t *testing.T) {
	tx := &recordingTransmitter{}
	r, err := New(VendorDaikin, tx)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	r.On()
	r.SetMode(ModeCool)
	if err := r.Send(); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	r.SetMode(ModeHeat)
	if err := r.Send(); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if string(tx.frames[0]) == string(tx.frames[1]) {
		t.Error("frames identical after mode change")
	}
}
