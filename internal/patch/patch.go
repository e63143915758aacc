// Package patch applies decoded cheat codes to a ROM image.
package patch

import "io"

// Patch is a single byte replacement in the image.
type Patch struct {
	Code    string // code the patch was decoded from
	Address uint16 // address as encoded in the code, before the base offset
	Offset  int64  // file offset the value is written to
	Value   byte   // byte to write

	// Compare is set for codes that only apply when the stored byte
	// matches their compare value.
	Compare bool
	// Matched reports whether the compare value matched. A compare code
	// that did not match writes back the stored byte unchanged.
	Matched bool
}

// Decoder converts a code into a patch. The base offset is added to the
// decoded address. Decoders that support compare codes read the currently
// stored byte from the image.
type Decoder interface {
	Decode(code string, image io.ReaderAt, base int64) (Patch, error)
}

// Layout describes how decoded addresses map onto the image file.
type Layout struct {
	HeaderSize int64 // bytes preceding the first bank
	BankSize   int64 // base offset advance after every code
}

// NESLayout is the iNES file layout: a 16 byte header followed by 32 KiB banks.
var NESLayout = Layout{
	HeaderSize: 0x10,
	BankSize:   0x8000,
}
