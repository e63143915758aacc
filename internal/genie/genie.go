// Package genie implements the NES Game Genie code format.
//
// A code is 6 or 8 letters from a 16 letter alphabet, each letter carrying
// 4 bits. The bits are scrambled across the letters; unscrambled they form a
// 15 bit address, a replacement value and, for 8 letter codes, a compare
// value that has to match the stored byte for the code to take effect.
package genie

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/nesgenie/internal/patch"
)

// Alphabet lists the code letters, the index of a letter is its value.
const Alphabet = "APZLGITYEOXUKSVN"

// Code lengths.
const (
	ShortLength = 6
	LongLength  = 8
)

var (
	// ErrInvalidCharacter is returned for a letter outside of the alphabet.
	ErrInvalidCharacter = errors.New("invalid code character")
	// ErrInvalidLength is returned for codes that are not 6 or 8 letters long.
	ErrInvalidLength = errors.New("invalid code length")
)

// DecodeError describes a code that could not be decoded.
type DecodeError struct {
	Code     string
	Position int // letter position for invalid characters, -1 otherwise
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("code '%s': %s '%c' at position %d", e.Code, e.Err, e.Code[e.Position], e.Position+1)
	}
	return fmt.Sprintf("code '%s': %s %d", e.Code, e.Err, len(e.Code))
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Code is a decoded Game Genie code.
type Code struct {
	Address uint16
	Value   byte
	Compare byte
	// HasCompare is set for 8 letter codes.
	HasCompare bool
}

// Decoder decodes NES Game Genie codes into patches.
type Decoder struct{}

var _ patch.Decoder = Decoder{}

// Decode decodes the code and resolves it against the image. The base
// offset is added to the decoded address. For compare codes the byte stored
// at the resulting offset is read: if it differs from the compare value the
// patch writes that stored byte back unchanged.
func (Decoder) Decode(code string, image io.ReaderAt, base int64) (patch.Patch, error) {
	c, err := Parse(code)
	if err != nil {
		return patch.Patch{}, err
	}

	p := patch.Patch{
		Code:    code,
		Address: c.Address,
		Offset:  int64(c.Address) + base,
		Value:   c.Value,
		Compare: c.HasCompare,
	}
	if !c.HasCompare {
		return p, nil
	}

	var stored [1]byte
	if _, err := image.ReadAt(stored[:], p.Offset); err != nil {
		return patch.Patch{}, fmt.Errorf("reading compare byte at offset 0x%X: %w", p.Offset, err)
	}

	if stored[0] == c.Compare {
		p.Matched = true
	} else {
		p.Value = stored[0]
	}
	return p, nil
}

// Parse decodes the letters of a code without touching any image.
func Parse(code string) (Code, error) {
	if len(code) != ShortLength && len(code) != LongLength {
		return Code{}, &DecodeError{Code: code, Position: -1, Err: ErrInvalidLength}
	}

	d, err := nibbles(code)
	if err != nil {
		return Code{}, err
	}

	r := rearrange(d)
	c := Code{
		Address: uint16(r[0])<<12 | uint16(r[1])<<8 | uint16(r[2])<<4 | uint16(r[3]),
		Value:   r[4]<<4 | r[5],
	}
	if len(r) == LongLength {
		c.Compare = r[6]<<4 | r[7]
		c.HasCompare = true
	}
	return c, nil
}

// nibbles maps every letter of the code to its 4 bit value.
func nibbles(code string) ([]byte, error) {
	d := make([]byte, len(code))
	for i := range len(code) {
		idx := strings.IndexByte(Alphabet, code[i])
		if idx < 0 {
			return nil, &DecodeError{Code: code, Position: i, Err: ErrInvalidCharacter}
		}
		d[i] = byte(idx)
	}
	return d, nil
}

// rearrange unscrambles the letter values into address, value and compare
// nibbles:
//
//	r0 = d3&7        r1 = d5&7|d4&8   r2 = d2&7|d1&8   r3 = d4&7|d3&8
//	r4 = d1&7|d0&8   r5 = d0&7|dN&8   r6 = d7&7|d6&8   r7 = d6&7|d5&8
//
// where dN is d5 for 6 letter and d7 for 8 letter codes.
// The high bit of d2 is not part of any value.
func rearrange(d []byte) []byte {
	r := make([]byte, len(d))
	r[0] = d[3] & 0x7
	r[1] = d[5]&0x7 | d[4]&0x8
	r[2] = d[2]&0x7 | d[1]&0x8
	r[3] = d[4]&0x7 | d[3]&0x8
	r[4] = d[1]&0x7 | d[0]&0x8

	if len(d) == ShortLength {
		r[5] = d[0]&0x7 | d[5]&0x8
		return r
	}

	r[5] = d[0]&0x7 | d[7]&0x8
	r[6] = d[7]&0x7 | d[6]&0x8
	r[7] = d[6]&0x7 | d[5]&0x8
	return r
}
