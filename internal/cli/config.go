package cli

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/quietzone/ean13/pkg/errors"
	"github.com/quietzone/ean13/pkg/render"
)

// Profile is a named set of render options loaded from the config file.
// Pointer fields distinguish "not set" from an explicit zero, so a
// profile only overrides the options it mentions.
type Profile struct {
	ModuleWidth   *float64 `toml:"module_width"`
	Height        *float64 `toml:"height"`
	GuardExtend   *float64 `toml:"guard_extend"`
	FontSize      *float64 `toml:"font_size"`
	TextMargin    *float64 `toml:"text_margin"`
	QuietZone     *float64 `toml:"quiet_zone"`
	SideDigitGap  *float64 `toml:"side_digit_gap"`
	PaddingTop    *float64 `toml:"padding_top"`
	PaddingRight  *float64 `toml:"padding_right"`
	PaddingBottom *float64 `toml:"padding_bottom"`
	PaddingLeft   *float64 `toml:"padding_left"`
	Background    *string  `toml:"background"`
	Foreground    *string  `toml:"foreground"`
	ISBN          *bool    `toml:"isbn"`
	ISBNFontSize  *float64 `toml:"isbn_font_size"`
}

// configFile is the on-disk shape:
//
//	[profile.retail]
//	module_width = 3
//	height = 80
type configFile struct {
	Profile map[string]Profile `toml:"profile"`
}

// loadProfile reads the named profile from the TOML file at path.
func loadProfile(path, name string) (Profile, error) {
	var cfg configFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Profile{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "read config %s", path)
	}
	p, ok := cfg.Profile[name]
	if !ok {
		return Profile{}, errors.New(errors.ErrCodeInvalidProfile, "profile %q not found in %s", name, path)
	}
	return p, nil
}

// defaultConfigPath returns the config file location using the XDG
// standard (~/.config/ean13/config.toml).
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// apply copies the profile's set fields into o. isSet reports whether a
// field was already fixed by a higher-precedence source (a command-line
// flag); such fields are left alone.
func (p Profile) apply(o *render.Options, isSet func(flag string) bool) error {
	setF := func(flag string, dst *float64, src *float64) {
		if src != nil && !isSet(flag) {
			*dst = *src
		}
	}
	setF("module-width", &o.ModuleWidth, p.ModuleWidth)
	setF("height", &o.Height, p.Height)
	setF("guard-extend", &o.GuardExtend, p.GuardExtend)
	setF("font-size", &o.FontSize, p.FontSize)
	setF("text-margin", &o.TextMargin, p.TextMargin)
	setF("quiet-zone", &o.QuietZone, p.QuietZone)
	setF("side-digit-gap", &o.SideDigitGap, p.SideDigitGap)
	setF("padding-top", &o.PaddingTop, p.PaddingTop)
	setF("padding-right", &o.PaddingRight, p.PaddingRight)
	setF("padding-bottom", &o.PaddingBottom, p.PaddingBottom)
	setF("padding-left", &o.PaddingLeft, p.PaddingLeft)
	setF("isbn-font-size", &o.ISBNFontSize, p.ISBNFontSize)

	if p.ISBN != nil && !isSet("isbn") {
		o.ISBNMode = *p.ISBN
	}
	if p.Background != nil && !isSet("background") {
		c, err := parseHexColor(*p.Background)
		if err != nil {
			return err
		}
		o.Background = c
	}
	if p.Foreground != nil && !isSet("foreground") {
		c, err := parseHexColor(*p.Foreground)
		if err != nil {
			return err
		}
		o.Foreground = c
	}
	return nil
}

// parseHexColor parses "#rgb" or "#rrggbb" into a color.
func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = fmt.Sprintf("%c%c%c%c%c%c", hex[0], hex[0], hex[1], hex[1], hex[2], hex[2])
	case 6:
	default:
		return nil, errors.New(errors.ErrCodeInvalidOption, "invalid color %q, want #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidOption, "invalid color %q, want #rgb or #rrggbb", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
