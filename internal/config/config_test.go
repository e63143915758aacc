package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/retroenv/nesgenie/internal/genie"
	"github.com/retroenv/nesgenie/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestExitStatus(t *testing.T) {
	_, invalidChar := genie.Parse("AAAAAB")
	_, invalidLength := genie.Parse("AAAAA")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: ExitOK},
		{name: "invalid character", err: invalidChar, want: ExitInvalidCharacter},
		{name: "wrapped invalid character", err: fmt.Errorf("applying codes: %w", invalidChar), want: ExitInvalidCharacter},
		{name: "invalid length", err: invalidLength, want: ExitFailure},
		{name: "other error", err: errors.New("disk full"), want: ExitFailure}, //nolint:err113 // test error
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitStatus(tt.err))
		})
	}
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(options.Flags{}))
	assert.NotNil(t, CreateLogger(options.Flags{Debug: true}))
	assert.NotNil(t, CreateLogger(options.Flags{Quiet: true}))
}
