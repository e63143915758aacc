// Package pipeline orchestrates a patching run.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/nesgenie/internal/detector"
	"github.com/retroenv/nesgenie/internal/options"
	"github.com/retroenv/nesgenie/internal/patch"
	"github.com/retroenv/nesgenie/internal/rom"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete patching workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
}

// New creates a new patching pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
	}
}

// Execute copies the input image to the output path and applies all codes
// to the copy. On any failure the output file is removed. In dry run mode
// the output file is removed after all codes were applied.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (patches []patch.Patch, err error) {
	plat, err := p.detector.Detect(opts)
	if err != nil {
		return nil, err
	}

	decoder, layout, err := plat.Decoder()
	if err != nil {
		return nil, err
	}

	p.logger.Info("Patching ROM",
		log.String("platform", plat.String()),
		log.String("input", opts.Input),
		log.String("output", opts.Output))

	img, err := rom.Prepare(opts.Input, opts.Output)
	if err != nil {
		return nil, fmt.Errorf("preparing output file: %w", err)
	}
	p.logger.Debug("Opened output file", log.String("file", img.Path()), log.Hex("size", img.Size()))

	defer func() {
		if err == nil && !opts.DryRun {
			err = img.Commit()
			return
		}
		if discardErr := img.Discard(); discardErr != nil {
			err = errors.Join(err, discardErr)
			return
		}
		p.logger.Debug("Removed output file", log.String("file", img.Path()))
	}()

	applier := patch.NewApplier(p.logger, decoder, layout)
	patches, err = applier.Apply(ctx, img, opts.CodeList())
	if err != nil {
		return patches, fmt.Errorf("applying codes: %w", err)
	}
	return patches, nil
}
