// Package options contains the program options.
package options

import "strings"

// CodeSeparator separates multiple codes in the codes argument.
const CodeSeparator = "+"

// Positional contains the positional arguments.
type Positional struct {
	Codes  string `arg:"positional" usage:"codes to apply, joined by +"`
	Mode   string `arg:"positional" usage:"platform of the codes (nes, snes, gb, gg, sms, md)"`
	Input  string `arg:"positional" usage:"input ROM file"`
	Output string `arg:"positional" usage:"output ROM file"`
}

// Flags contains behavior options.
type Flags struct {
	DryRun  bool `flag:"n" usage:"report the patches without keeping the output file"`
	Debug   bool `flag:"debug" usage:"enable debug logging"`
	Quiet   bool `flag:"q" usage:"quiet mode"`
	Version bool `flag:"version" usage:"print the version and exit"`
}

// Program options of the patcher.
type Program struct {
	Positional
	Flags
}

// CodeList returns the codes in the order they were given.
func (p Program) CodeList() []string {
	return strings.Split(p.Codes, CodeSeparator)
}
