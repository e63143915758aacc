package detector

import (
	"errors"
	"testing"

	"github.com/retroenv/nesgenie/internal/options"
	"github.com/retroenv/nesgenie/internal/platform"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name      string
		mode      string
		inputFile string
		want      platform.Kind
	}{
		{
			name:      "explicit NES mode",
			mode:      "nes",
			inputFile: "game.bin",
			want:      platform.NES,
		},
		{
			name:      "explicit mode wins over extension",
			mode:      "snes",
			inputFile: "game.nes",
			want:      platform.SNES,
		},
		{
			name:      "auto detect from .nes extension",
			mode:      "auto",
			inputFile: "game.nes",
			want:      platform.NES,
		},
		{
			name:      "auto detect upper case",
			mode:      "AUTO",
			inputFile: "ZELDA.NES",
			want:      platform.NES,
		},
		{
			name:      "auto detect from .sfc extension",
			mode:      "auto",
			inputFile: "game.sfc",
			want:      platform.SNES,
		},
		{
			name:      "auto detect from .md extension",
			mode:      "auto",
			inputFile: "game.md",
			want:      platform.Genesis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Positional: options.Positional{Mode: tt.mode, Input: tt.inputFile},
			}

			got, err := d.Detect(opts)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestDetectUnknownExtension(t *testing.T) {
	d := New(log.NewTestLogger(t))

	for _, filename := range []string{"game", "game.bin", "game.rom"} {
		t.Run(filename, func(t *testing.T) {
			opts := options.Program{
				Positional: options.Positional{Mode: AutoMode, Input: filename},
			}

			_, err := d.Detect(opts)
			assert.True(t, errors.Is(err, platform.ErrUnknown))
		})
	}
}
