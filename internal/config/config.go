// Package config loads the optional TOML file that tunes the two
// things the reference compiler hard-codes: the prologue's frame size
// and (documented, not overridable) that comparisons zero-extend.
//
// Grounded on lookbusy1344-arm_emulator/config, which loads an
// emulator's tunables from a TOML file the same way.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/ysakasin/ninecc/compiler"
)

// Config is the on-disk shape of a ninecc config file.
type Config struct {
	Frame struct {
		// Mode is "fixed" (the default 208-byte a..z frame) or "fit"
		// (size the frame to the symbol table actually bound).
		Mode string `toml:"mode"`
	} `toml:"frame"`

	Codegen struct {
		// ZeroExtendComparisons documents that comparison results are
		// always zero-extended to 64 bits in rax; it exists so the
		// schema has a place to assert the invariant, and loading a
		// config that sets it to false is rejected.
		ZeroExtendComparisons bool `toml:"zero_extend_comparisons"`
	} `toml:"codegen"`

	Debug bool `toml:"debug"`
}

// Default returns the configuration that matches the compiler's
// built-in defaults exactly.
func Default() *Config {
	c := &Config{}
	c.Frame.Mode = "fixed"
	c.Codegen.ZeroExtendComparisons = true
	return c
}

// Load reads and decodes a TOML config file at path. A missing field
// falls back to Default's value for it.
func Load(path string) (*Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, err
	}
	if !c.Codegen.ZeroExtendComparisons {
		return nil, errors.New("codegen.zero_extend_comparisons is not overridable")
	}
	return c, nil
}

// FrameMode translates the on-disk string into a compiler.FrameMode,
// defaulting to compiler.FixedFrame for anything but "fit".
func (c *Config) FrameMode() compiler.FrameMode {
	if c.Frame.Mode == "fit" {
		return compiler.FitFrame
	}
	return compiler.FixedFrame
}

// Options builds the compiler.Option slice this configuration implies.
func (c *Config) Options() []compiler.Option {
	return []compiler.Option{
		compiler.WithFrameMode(c.FrameMode()),
		compiler.WithDebug(c.Debug),
	}
}
