package patch

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
)

// Image is the writable target image.
type Image interface {
	io.ReaderAt
	io.WriterAt
}

// Applier applies codes to an image in order, moving the base offset one
// bank forward after every code.
type Applier struct {
	logger  *log.Logger
	decoder Decoder
	layout  Layout
}

// NewApplier returns an applier using the given decoder and file layout.
func NewApplier(logger *log.Logger, decoder Decoder, layout Layout) *Applier {
	return &Applier{
		logger:  logger,
		decoder: decoder,
		layout:  layout,
	}
}

// Apply decodes and writes every code in the given order. It stops at the
// first failing code; patches written before the failure are returned.
func (a *Applier) Apply(ctx context.Context, image Image, codes []string) ([]Patch, error) {
	patches := make([]Patch, 0, len(codes))
	base := a.layout.HeaderSize

	for i, code := range codes {
		if err := ctx.Err(); err != nil {
			return patches, fmt.Errorf("applying code %d: %w", i+1, err)
		}

		p, err := a.decoder.Decode(code, image, base)
		if err != nil {
			return patches, fmt.Errorf("decoding code %d: %w", i+1, err)
		}

		if _, err := image.WriteAt([]byte{p.Value}, p.Offset); err != nil {
			return patches, fmt.Errorf("writing code '%s' at offset 0x%X: %w", code, p.Offset, err)
		}

		a.report(p, base)
		patches = append(patches, p)
		base += a.layout.BankSize
	}

	return patches, nil
}

func (a *Applier) report(p Patch, base int64) {
	msg := "Applied code"
	if p.Compare && !p.Matched {
		msg = "Compare value did not match, byte left unchanged"
	}

	a.logger.Info(msg,
		log.String("code", p.Code),
		log.Hex("address", p.Address),
		log.Hex("offset", p.Offset),
		log.Hex("value", p.Value))
	a.logger.Debug("Bank base", log.Hex("base", base))
}
