// Package remote provides the AC protocol command encoders.
//
// Each supported vendor (Daikin, Panasonic, Hitachi) has one encoder
// implementing the Remote interface: a method per semantic command plus
// Send, which packs the accumulated protocol state into a single frame and
// emits it through a Transmitter. The state engine holds exactly one
// encoder, chosen at startup via New, and never branches on the vendor
// itself - vendor quirks (Panasonic swing positions, Hitachi's missing
// quiet/powerful modes, per-vendor temperature ranges) live entirely in
// the encoders.
//
// Frame layout is vendor-specific but follows a common shape: fixed
// header, packed power/mode/temperature/fan/swing fields, feature bits,
// and a trailing low-byte-sum checksum. Pulse timing and carrier
// modulation are out of scope; the Transmitter (normally a character
// device like /dev/lirc0) owns the physical layer.
package remote
