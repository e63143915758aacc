package genie

import (
	"errors"
	"fmt"
)

// MaxAddress is the highest address a code can encode.
const MaxAddress = 0x7FFF

var errAddressRange = errors.New("address out of range")

// Encode returns the code for the given address and value. Codes with
// HasCompare set encode to 8 letters, all others to 6 letters. The high bit
// of the third letter is set for 8 letter codes.
func Encode(c Code) (string, error) {
	if c.Address > MaxAddress {
		return "", fmt.Errorf("%w: 0x%04X exceeds 0x%04X", errAddressRange, c.Address, MaxAddress)
	}

	a0 := byte(c.Address>>12) & 0xF
	a1 := byte(c.Address>>8) & 0xF
	a2 := byte(c.Address>>4) & 0xF
	a3 := byte(c.Address) & 0xF
	v0 := c.Value >> 4
	v1 := c.Value & 0xF

	length := ShortLength
	if c.HasCompare {
		length = LongLength
	}

	d := make([]byte, length)
	d[0] = v1&0x7 | v0&0x8
	d[1] = v0&0x7 | a2&0x8
	d[2] = a2 & 0x7
	d[3] = a0&0x7 | a3&0x8
	d[4] = a3&0x7 | a1&0x8

	if c.HasCompare {
		c0 := c.Compare >> 4
		c1 := c.Compare & 0xF
		d[2] |= 0x8
		d[5] = a1&0x7 | c1&0x8
		d[6] = c1&0x7 | c0&0x8
		d[7] = c0&0x7 | v1&0x8
	} else {
		d[5] = a1&0x7 | v1&0x8
	}

	letters := make([]byte, length)
	for i, n := range d {
		letters[i] = Alphabet[n]
	}
	return string(letters), nil
}
