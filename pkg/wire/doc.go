// Package wire implements the ASCII command frame protocol spoken on
// the rover's control link.
package wire

// A frame is `<` MNEMONIC [`,` PARAM]* `>` with a mnemonic of exactly
// two uppercase letters and up to three signed decimal parameters of at
// most six digits each. Bytes outside a frame are ignored. Any
// unexpected byte inside a frame silently discards the frame and the
// next `<` always starts over, so a garbled or truncated frame simply
// produces no command and no reply; the sender is expected to time out
// and retry.
//
// Producer: host controller
// Consumer: rover firmware core
