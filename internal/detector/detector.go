// Package detector handles platform detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/nesgenie/internal/options"
	"github.com/retroenv/nesgenie/internal/platform"
	"github.com/retroenv/retrogolib/log"
)

// AutoMode selects the platform based on the input file extension.
const AutoMode = "auto"

var extensions = map[string]platform.Kind{
	".nes": platform.NES,
	".unf": platform.NES,
	".sfc": platform.SNES,
	".smc": platform.SNES,
	".gb":  platform.GameBoy,
	".gbc": platform.GameBoy,
	".gg":  platform.GameGear,
	".sms": platform.MasterSystem,
	".md":  platform.Genesis,
	".gen": platform.Genesis,
}

// Detector resolves the platform of a run.
type Detector struct {
	logger *log.Logger
}

// New creates a new platform detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns the platform named by the mode option. For the auto mode
// the platform is detected from the input filename extension.
func (d *Detector) Detect(opts options.Program) (platform.Platform, error) {
	if !strings.EqualFold(opts.Mode, AutoMode) {
		return platform.FromString(opts.Mode)
	}

	plat, err := d.detectFromFile(opts.Input)
	if err != nil {
		return platform.Platform{}, err
	}
	d.logger.Debug("Auto-detected platform",
		log.Stringer("platform", plat),
		log.String("file", opts.Input))
	return plat, nil
}

// detectFromFile determines the platform based on the file extension.
func (d *Detector) detectFromFile(filename string) (platform.Platform, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	kind, ok := extensions[ext]
	if !ok {
		return platform.Platform{}, fmt.Errorf("%w: can not detect platform of file '%s'", platform.ErrUnknown, filename)
	}
	return platform.Get(kind), nil
}
