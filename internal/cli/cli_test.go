package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/nesgenie/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "positional arguments",
			args: []string{"prog", "SXIOPO+ZEXPYGLA", "nes", "in.nes", "out.nes"},
			want: options.Program{
				Positional: options.Positional{Codes: "SXIOPO+ZEXPYGLA", Mode: "nes", Input: "in.nes", Output: "out.nes"},
			},
		},
		{
			name: "all flags",
			args: []string{"prog", "-n", "-debug", "-q", "SXIOPO", "NES", "in.nes", "out.nes"},
			want: options.Program{
				Positional: options.Positional{Codes: "SXIOPO", Mode: "NES", Input: "in.nes", Output: "out.nes"},
				Flags:      options.Flags{DryRun: true, Debug: true, Quiet: true},
			},
		},
		{
			name: "version without positional arguments",
			args: []string{"prog", "-version"},
			want: options.Program{
				Flags: options.Flags{Version: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsUsageError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{"prog"}},
		{name: "missing output", args: []string{"prog", "SXIOPO", "nes", "in.nes"}},
		{name: "too many arguments", args: []string{"prog", "SXIOPO", "nes", "in.nes", "out.nes", "extra"}},
		{name: "flag after codes", args: []string{"prog", "SXIOPO", "nes", "in.nes", "out.nes", "-q"}},
		{name: "unknown flag", args: []string{"prog", "-x", "SXIOPO", "nes", "in.nes", "out.nes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}
