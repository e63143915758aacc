// Package platform maps the selectable cheat code platforms to their
// code decoders.
package platform

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/retroenv/nesgenie/internal/genie"
	"github.com/retroenv/nesgenie/internal/patch"
	"github.com/retroenv/retrogolib/arch"
)

var (
	// ErrUnknown is returned for a mode name that does not name a platform.
	ErrUnknown = errors.New("unknown platform")
	// ErrNotImplemented is returned when requesting the decoder of a
	// platform whose code format is not supported.
	ErrNotImplemented = errors.New("platform code format not implemented")
)

// Kind identifies a platform.
type Kind int

// Platform kinds.
const (
	GameBoy Kind = iota + 1
	GameGear
	MasterSystem
	Genesis
	NES
	SNES
)

// Platform is a selectable platform. Only platforms with a supported code
// format carry a decoder.
type Platform struct {
	Kind Kind
	Name string

	codec *codec
}

// codec is the capability of a supported platform.
type codec struct {
	decoder patch.Decoder
	layout  patch.Layout
}

var platforms = []Platform{
	{Kind: GameBoy, Name: "Game Boy"},
	{Kind: GameGear, Name: "Game Gear"},
	{Kind: MasterSystem, Name: "Master System"},
	{Kind: Genesis, Name: "Genesis"},
	{
		Kind: NES,
		Name: arch.NES.String(),
		codec: &codec{
			decoder: genie.Decoder{},
			layout:  patch.NESLayout,
		},
	},
	{Kind: SNES, Name: "SNES"},
}

var aliases = map[string]Kind{
	"gameboy":       GameBoy,
	"gb":            GameBoy,
	"gamegear":      GameGear,
	"gg":            GameGear,
	"mastersystem":  MasterSystem,
	"sms":           MasterSystem,
	"genesis":       Genesis,
	"sg":            Genesis,
	"megadrive":     Genesis,
	"md":            Genesis,
	"nintendo":      NES,
	"nes":           NES,
	"supernintendo": SNES,
	"snes":          SNES,
}

// FromString returns the platform for a mode name. Names are case
// insensitive, dashes and underscores are ignored.
func FromString(name string) (Platform, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "").Replace(key)

	kind, ok := aliases[key]
	if !ok {
		return Platform{}, fmt.Errorf("%w '%s', valid modes: %s", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return Get(kind), nil
}

// Get returns the platform of the given kind.
func Get(kind Kind) Platform {
	for _, p := range platforms {
		if p.Kind == kind {
			return p
		}
	}
	return Platform{}
}

// Names returns all accepted mode names in sorted order.
func Names() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported returns whether codes of this platform can be decoded.
func (p Platform) Supported() bool {
	return p.codec != nil
}

// Decoder returns the code decoder and file layout of the platform.
func (p Platform) Decoder() (patch.Decoder, patch.Layout, error) {
	if p.codec == nil {
		return nil, patch.Layout{}, fmt.Errorf("%s: %w", p, ErrNotImplemented)
	}
	return p.codec.decoder, p.codec.layout, nil
}

func (p Platform) String() string {
	if p.Name == "" {
		return "unknown"
	}
	return p.Name
}
